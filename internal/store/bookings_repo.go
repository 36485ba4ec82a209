package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayvista/stayvista-api/internal/domain"
	"github.com/stayvista/stayvista-api/internal/reporting"
)

type BookingsRepo interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.InsertResult, error)
	ListByGuest(ctx context.Context, email string) ([]domain.Booking, error)
	ListByHost(ctx context.Context, email string) ([]domain.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
	// Sales projections feed the reporting aggregator; order is the
	// collection's natural order.
	SalesAll(ctx context.Context) ([]reporting.Sale, error)
	SalesByHost(ctx context.Context, email string) ([]reporting.Sale, error)
	SalesByGuest(ctx context.Context, email string) ([]reporting.Sale, error)
}

type BookingsRepoImpl struct {
	bookings *mongo.Collection
}

func NewBookingsRepo(client *mongo.Client, database string) *BookingsRepoImpl {
	return &BookingsRepoImpl{bookings: client.Database(database).Collection("bookings")}
}

func (r *BookingsRepoImpl) Create(ctx context.Context, booking *domain.Booking) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	booking.ID = primitive.NewObjectID()
	res, err := r.bookings.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return &domain.InsertResult{InsertedID: oid.Hex()}, nil
}

func (r *BookingsRepoImpl) ListByGuest(ctx context.Context, email string) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{"guest.email": email})
}

func (r *BookingsRepoImpl) ListByHost(ctx context.Context, email string) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{"host.email": email})
}

func (r *BookingsRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.bookings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *BookingsRepoImpl) SalesAll(ctx context.Context) ([]reporting.Sale, error) {
	return r.sales(ctx, bson.M{})
}

func (r *BookingsRepoImpl) SalesByHost(ctx context.Context, email string) ([]reporting.Sale, error) {
	return r.sales(ctx, bson.M{"host.email": email})
}

func (r *BookingsRepoImpl) SalesByGuest(ctx context.Context, email string) ([]reporting.Sale, error) {
	return r.sales(ctx, bson.M{"guest.email": email})
}

func (r *BookingsRepoImpl) list(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cursor, err := r.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bs := make([]domain.Booking, 0)
	for cursor.Next(ctx) {
		var b domain.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, err
		}
		bs = append(bs, b)
	}
	return bs, cursor.Err()
}

func (r *BookingsRepoImpl) sales(ctx context.Context, filter bson.M) ([]reporting.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"totalPrice": 1, "time": 1})
	cursor, err := r.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sales := make([]reporting.Sale, 0)
	for cursor.Next(ctx) {
		var s reporting.Sale
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, cursor.Err()
}

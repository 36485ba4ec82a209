package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayvista/stayvista-api/internal/domain"
)

// pageSize is fixed for the rooms listing; the page index maps to an
// offset of pageSize*(page-1).
const pageSize = 10

type RoomsRepo interface {
	List(ctx context.Context, category string, page int) (*domain.RoomPage, error)
	ListFirst(ctx context.Context, n int64) ([]domain.Room, error)
	// Get returns (nil, nil) when no room matches.
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) (*domain.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
	ListByHost(ctx context.Context, email string) ([]domain.Room, error)
	SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) (*domain.UpdateResult, error)
	Gallery(ctx context.Context) ([]domain.RoomImage, error)
	Count(ctx context.Context) (int64, error)
	CountByHost(ctx context.Context, email string) (int64, error)
}

type RoomsRepoImpl struct {
	rooms *mongo.Collection
}

func NewRoomsRepo(client *mongo.Client, database string) *RoomsRepoImpl {
	return &RoomsRepoImpl{rooms: client.Database(database).Collection("rooms")}
}

func (r *RoomsRepoImpl) List(ctx context.Context, category string, page int) (*domain.RoomPage, error) {
	if page < 1 {
		page = 1
	}
	filter := bson.M{}
	if category != "" && category != "null" {
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	opts := options.Find().
		SetLimit(pageSize).
		SetSkip(int64(pageSize * (page - 1)))
	cursor, err := r.rooms.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	result, err := decodeRooms(ctx, cursor)
	if err != nil {
		return nil, err
	}

	total, err := r.rooms.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.RoomPage{Result: result, TotalResult: total}, nil
}

func (r *RoomsRepoImpl) ListFirst(ctx context.Context, n int64) ([]domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cursor, err := r.rooms.Find(ctx, bson.M{}, options.Find().SetLimit(n))
	if err != nil {
		return nil, err
	}
	return decodeRooms(ctx, cursor)
}

func (r *RoomsRepoImpl) Get(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var room domain.Room
	err := r.rooms.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomsRepoImpl) Create(ctx context.Context, room *domain.Room) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	room.ID = primitive.NewObjectID()
	res, err := r.rooms.InsertOne(ctx, room)
	if err != nil {
		return nil, err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return &domain.InsertResult{InsertedID: oid.Hex()}, nil
}

func (r *RoomsRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.rooms.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *RoomsRepoImpl) ListByHost(ctx context.Context, email string) ([]domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cursor, err := r.rooms.Find(ctx, bson.M{"host.email": email})
	if err != nil {
		return nil, err
	}
	return decodeRooms(ctx, cursor)
}

// SetBooked upserts the booked flag. A stale id quietly creates a stub
// document; the frontend relies on the upsert.
func (r *RoomsRepoImpl) SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) (*domain.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"booked": booked}}
	res, err := r.rooms.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	out := &domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		hex := oid.Hex()
		out.UpsertedID = &hex
	}
	return out, nil
}

func (r *RoomsRepoImpl) Gallery(ctx context.Context) ([]domain.RoomImage, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"image": 1})
	cursor, err := r.rooms.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	images := make([]domain.RoomImage, 0)
	for cursor.Next(ctx) {
		var img domain.RoomImage
		if err := cursor.Decode(&img); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, cursor.Err()
}

func (r *RoomsRepoImpl) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.rooms.CountDocuments(ctx, bson.M{})
}

func (r *RoomsRepoImpl) CountByHost(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.rooms.CountDocuments(ctx, bson.M{"host.email": email})
}

func decodeRooms(ctx context.Context, cursor *mongo.Cursor) ([]domain.Room, error) {
	defer cursor.Close(ctx)

	rooms := make([]domain.Room, 0)
	for cursor.Next(ctx) {
		var room domain.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, cursor.Err()
}

package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayvista/stayvista-api/internal/domain"
)

type UsersRepo interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	// GetByEmail returns (nil, nil) when no user record exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	UpdateRole(ctx context.Context, email string, role domain.Role, ts time.Time) (*domain.UpdateResult, error)
	MarkRoleRequested(ctx context.Context, email string) (*domain.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

type UsersRepoImpl struct {
	users *mongo.Collection
}

func NewUsersRepo(client *mongo.Client, database string) *UsersRepoImpl {
	return &UsersRepoImpl{users: client.Database(database).Collection("users")}
}

func (r *UsersRepoImpl) GetAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	us := make([]domain.User, 0)
	for cursor.Next(ctx) {
		var u domain.User
		if err := cursor.Decode(&u); err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	return us, cursor.Err()
}

func (r *UsersRepoImpl) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u domain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsersRepoImpl) Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	user.ID = primitive.NewObjectID()
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return &domain.InsertResult{InsertedID: oid.Hex()}, nil
}

func (r *UsersRepoImpl) UpdateRole(ctx context.Context, email string, role domain.Role, ts time.Time) (*domain.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role, "time": ts}}
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return nil, err
	}
	return &domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *UsersRepoImpl) MarkRoleRequested(ctx context.Context, email string) (*domain.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": domain.StatusRequested}}
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return nil, err
	}
	return &domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *UsersRepoImpl) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.users.CountDocuments(ctx, bson.M{})
}

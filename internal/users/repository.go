package users

import (
	"context"
	"time"

	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listLimit caps collection listings.
const listLimit = 50

// UserRepository defines persistence operations for users
type UserRepository interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// MongoUserRepository implements UserRepository using MongoDB
type MongoUserRepository struct {
	col *mongo.Collection
}

// NewMongoUserRepository creates a new repository for the given collection
func NewMongoUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.User{}
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, cur.Err()
}

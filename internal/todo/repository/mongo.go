package repository

import (
	"context"
	"time"

	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/todo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements a MongoDB-backed repository for todos.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	res, err := m.col.InsertOne(ctx, t)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return t, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*todo.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Todo not found")
	}
	var t todo.Todo
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Todo not found")
		}
		return nil, err
	}
	return &t, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*todo.Todo, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*todo.Todo{}
	for cur.Next(ctx) {
		var t todo.Todo
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Update(ctx context.Context, id string, p todo.Patch) (*todo.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Todo not found")
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Completed != nil {
		set["completed"] = *p.Completed
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NotFound("Todo not found")
	}
	return m.Get(ctx, id)
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// unconditional delete: an unknown id resolves to success
		return nil
	}
	// DeletedCount is deliberately ignored so repeated deletes stay idempotent
	_, err = m.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

package repository

import (
	"context"
	"errors"
	"log"

	"github.com/contempsico/portal-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type TaskRepo interface {
	CreateTask(ctx context.Context, task *types.Task) error
	GetTask(ctx context.Context, id string) (*types.Task, error)
	ListTasks(ctx context.Context) ([]*types.Task, error)
	UpdateTask(ctx context.Context, task *types.Task) error
	DeleteTask(ctx context.Context, id string) error
}

type taskRepo struct {
	collection *mongo.Collection
}

func NewTaskRepo(db *mongo.Database) TaskRepo {
	collection := db.Collection("tasks")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_to", Value: 1}}},
		{Keys: bson.D{{Key: "creation_date", Value: -1}}},
	}
	if _, err := collection.Indexes().CreateMany(context.Background(), indexes); err != nil {
		log.Printf("Error creating task indexes: %v", err)
	}
	return &taskRepo{collection: collection}
}

func (r *taskRepo) CreateTask(ctx context.Context, task *types.Task) error {
	_, err := r.collection.InsertOne(ctx, task)
	return err
}

func (r *taskRepo) GetTask(ctx context.Context, id string) (*types.Task, error) {
	var task types.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	return &task, err
}

func (r *taskRepo) ListTasks(ctx context.Context) ([]*types.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*types.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) UpdateTask(ctx context.Context, task *types.Task) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err == nil && res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return err
}

func (r *taskRepo) DeleteTask(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err == nil && res.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return err
}

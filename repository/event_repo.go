package repository

import (
	"context"
	"errors"
	"log"

	"github.com/contempsico/portal-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *types.CalendarEvent) error
	GetEvent(ctx context.Context, id string) (*types.CalendarEvent, error)
	ListEvents(ctx context.Context) ([]types.CalendarEvent, error)
	UpdateEvent(ctx context.Context, event *types.CalendarEvent) error
	DeleteEvent(ctx context.Context, id string) error
}

type eventRepo struct {
	collection *mongo.Collection
}

func NewEventRepo(db *mongo.Database) EventRepo {
	collection := db.Collection("calendar_events")
	index := mongo.IndexModel{Keys: bson.D{{Key: "date", Value: 1}}}
	if _, err := collection.Indexes().CreateOne(context.Background(), index); err != nil {
		log.Printf("Error creating calendar index: %v", err)
	}
	return &eventRepo{collection: collection}
}

func (r *eventRepo) CreateEvent(ctx context.Context, event *types.CalendarEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *eventRepo) GetEvent(ctx context.Context, id string) (*types.CalendarEvent, error) {
	var event types.CalendarEvent
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	return &event, err
}

func (r *eventRepo) ListEvents(ctx context.Context) ([]types.CalendarEvent, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []types.CalendarEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepo) UpdateEvent(ctx context.Context, event *types.CalendarEvent) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err == nil && res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return err
}

func (r *eventRepo) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err == nil && res.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return err
}

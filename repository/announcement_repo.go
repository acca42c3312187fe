package repository

import (
	"context"
	"errors"
	"log"

	"github.com/contempsico/portal-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type AnnouncementRepo interface {
	CreateAnnouncement(ctx context.Context, announcement *types.Announcement) error
	GetAnnouncement(ctx context.Context, id string) (*types.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]types.Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcement *types.Announcement) error
	DeleteAnnouncement(ctx context.Context, id string) error
}

type announcementRepo struct {
	collection *mongo.Collection
}

func NewAnnouncementRepo(db *mongo.Database) AnnouncementRepo {
	collection := db.Collection("announcements")
	index := mongo.IndexModel{Keys: bson.D{{Key: "date", Value: -1}}}
	if _, err := collection.Indexes().CreateOne(context.Background(), index); err != nil {
		log.Printf("Error creating announcement index: %v", err)
	}
	return &announcementRepo{collection: collection}
}

func (r *announcementRepo) CreateAnnouncement(ctx context.Context, announcement *types.Announcement) error {
	_, err := r.collection.InsertOne(ctx, announcement)
	return err
}

func (r *announcementRepo) GetAnnouncement(ctx context.Context, id string) (*types.Announcement, error) {
	var announcement types.Announcement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&announcement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	return &announcement, err
}

func (r *announcementRepo) ListAnnouncements(ctx context.Context) ([]types.Announcement, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var announcements []types.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepo) UpdateAnnouncement(ctx context.Context, announcement *types.Announcement) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": announcement.ID}, announcement)
	if err == nil && res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return err
}

func (r *announcementRepo) DeleteAnnouncement(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err == nil && res.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return err
}

package repository

import (
	"context"
	"errors"

	"github.com/contempsico/portal-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// The resource library is five flat catalogs with the same CRUD contract.
// The shared helpers below keep the per-entity repos small.

func findAll[T any](ctx context.Context, collection *mongo.Collection) ([]T, error) {
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []T
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func findByID[T any](ctx context.Context, collection *mongo.Collection, id string) (*T, error) {
	var record T
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	return &record, err
}

func replaceByID(ctx context.Context, collection *mongo.Collection, id string, record any) error {
	res, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, record)
	if err == nil && res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return err
}

func deleteByID(ctx context.Context, collection *mongo.Collection, id string) error {
	res, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err == nil && res.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return err
}

type TrainingRepo interface {
	CreateTraining(ctx context.Context, training *types.TrainingMaterial) error
	ListTrainings(ctx context.Context) ([]types.TrainingMaterial, error)
	UpdateTraining(ctx context.Context, training *types.TrainingMaterial) error
	DeleteTraining(ctx context.Context, id string) error
}

type trainingRepo struct {
	collection *mongo.Collection
}

func NewTrainingRepo(db *mongo.Database) TrainingRepo {
	return &trainingRepo{collection: db.Collection("trainings")}
}

func (r *trainingRepo) CreateTraining(ctx context.Context, training *types.TrainingMaterial) error {
	_, err := r.collection.InsertOne(ctx, training)
	return err
}

func (r *trainingRepo) ListTrainings(ctx context.Context) ([]types.TrainingMaterial, error) {
	return findAll[types.TrainingMaterial](ctx, r.collection)
}

func (r *trainingRepo) UpdateTraining(ctx context.Context, training *types.TrainingMaterial) error {
	return replaceByID(ctx, r.collection, training.ID, training)
}

func (r *trainingRepo) DeleteTraining(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

type RegulationRepo interface {
	CreateRegulation(ctx context.Context, section *types.RegulationSection) error
	ListRegulations(ctx context.Context) ([]types.RegulationSection, error)
	UpdateRegulation(ctx context.Context, section *types.RegulationSection) error
	DeleteRegulation(ctx context.Context, id string) error
}

type regulationRepo struct {
	collection *mongo.Collection
}

func NewRegulationRepo(db *mongo.Database) RegulationRepo {
	return &regulationRepo{collection: db.Collection("regulations")}
}

func (r *regulationRepo) CreateRegulation(ctx context.Context, section *types.RegulationSection) error {
	_, err := r.collection.InsertOne(ctx, section)
	return err
}

func (r *regulationRepo) ListRegulations(ctx context.Context) ([]types.RegulationSection, error) {
	return findAll[types.RegulationSection](ctx, r.collection)
}

func (r *regulationRepo) UpdateRegulation(ctx context.Context, section *types.RegulationSection) error {
	return replaceByID(ctx, r.collection, section.ID, section)
}

func (r *regulationRepo) DeleteRegulation(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

type LinkRepo interface {
	CreateLink(ctx context.Context, link *types.UsefulLink) error
	ListLinks(ctx context.Context) ([]types.UsefulLink, error)
	UpdateLink(ctx context.Context, link *types.UsefulLink) error
	DeleteLink(ctx context.Context, id string) error
}

type linkRepo struct {
	collection *mongo.Collection
}

func NewLinkRepo(db *mongo.Database) LinkRepo {
	return &linkRepo{collection: db.Collection("links")}
}

func (r *linkRepo) CreateLink(ctx context.Context, link *types.UsefulLink) error {
	_, err := r.collection.InsertOne(ctx, link)
	return err
}

func (r *linkRepo) ListLinks(ctx context.Context) ([]types.UsefulLink, error) {
	return findAll[types.UsefulLink](ctx, r.collection)
}

func (r *linkRepo) UpdateLink(ctx context.Context, link *types.UsefulLink) error {
	return replaceByID(ctx, r.collection, link.ID, link)
}

func (r *linkRepo) DeleteLink(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

type ServicePriceRepo interface {
	CreateService(ctx context.Context, service *types.ServicePrice) error
	ListServices(ctx context.Context) ([]types.ServicePrice, error)
	UpdateService(ctx context.Context, service *types.ServicePrice) error
	DeleteService(ctx context.Context, id string) error
}

type servicePriceRepo struct {
	collection *mongo.Collection
}

func NewServicePriceRepo(db *mongo.Database) ServicePriceRepo {
	return &servicePriceRepo{collection: db.Collection("service_prices")}
}

func (r *servicePriceRepo) CreateService(ctx context.Context, service *types.ServicePrice) error {
	_, err := r.collection.InsertOne(ctx, service)
	return err
}

func (r *servicePriceRepo) ListServices(ctx context.Context) ([]types.ServicePrice, error) {
	return findAll[types.ServicePrice](ctx, r.collection)
}

func (r *servicePriceRepo) UpdateService(ctx context.Context, service *types.ServicePrice) error {
	return replaceByID(ctx, r.collection, service.ID, service)
}

func (r *servicePriceRepo) DeleteService(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

type PsychologistRepo interface {
	CreatePsychologist(ctx context.Context, psychologist *types.Psychologist) error
	GetPsychologist(ctx context.Context, id string) (*types.Psychologist, error)
	ListPsychologists(ctx context.Context) ([]types.Psychologist, error)
	UpdatePsychologist(ctx context.Context, psychologist *types.Psychologist) error
	DeletePsychologist(ctx context.Context, id string) error
}

type psychologistRepo struct {
	collection *mongo.Collection
}

func NewPsychologistRepo(db *mongo.Database) PsychologistRepo {
	return &psychologistRepo{collection: db.Collection("psychologists")}
}

func (r *psychologistRepo) CreatePsychologist(ctx context.Context, psychologist *types.Psychologist) error {
	_, err := r.collection.InsertOne(ctx, psychologist)
	return err
}

func (r *psychologistRepo) GetPsychologist(ctx context.Context, id string) (*types.Psychologist, error) {
	return findByID[types.Psychologist](ctx, r.collection, id)
}

func (r *psychologistRepo) ListPsychologists(ctx context.Context) ([]types.Psychologist, error) {
	return findAll[types.Psychologist](ctx, r.collection)
}

func (r *psychologistRepo) UpdatePsychologist(ctx context.Context, psychologist *types.Psychologist) error {
	return replaceByID(ctx, r.collection, psychologist.ID, psychologist)
}

func (r *psychologistRepo) DeletePsychologist(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

package service

import (
	"context"

	"github.com/contempsico/portal-be/repository"
	"github.com/contempsico/portal-be/types"
	"github.com/google/uuid"
)

// ResourceService covers the resource library: trainings, internal
// regulations, useful links, the price table and the psychologist
// directory. Trainings and the directory carry no visibility sets; the
// others are filtered per viewer like announcements.
type ResourceService interface {
	ListTrainings(ctx context.Context) ([]types.TrainingMaterial, error)
	CreateTraining(ctx context.Context, training *types.TrainingMaterial) error
	UpdateTraining(ctx context.Context, training *types.TrainingMaterial) error
	DeleteTraining(ctx context.Context, id string) error

	ListRegulations(ctx context.Context, viewer *types.User) ([]types.RegulationSection, error)
	CreateRegulation(ctx context.Context, section *types.RegulationSection) error
	UpdateRegulation(ctx context.Context, section *types.RegulationSection) error
	DeleteRegulation(ctx context.Context, id string) error

	ListLinks(ctx context.Context, viewer *types.User) ([]types.UsefulLink, error)
	CreateLink(ctx context.Context, link *types.UsefulLink) error
	UpdateLink(ctx context.Context, link *types.UsefulLink) error
	DeleteLink(ctx context.Context, id string) error

	ListServices(ctx context.Context, viewer *types.User) ([]types.ServicePrice, error)
	CreateService(ctx context.Context, service *types.ServicePrice) error
	UpdateService(ctx context.Context, service *types.ServicePrice) error
	DeleteService(ctx context.Context, id string) error

	ListPsychologists(ctx context.Context) ([]types.Psychologist, error)
	CreatePsychologist(ctx context.Context, psychologist *types.Psychologist) error
	UpdatePsychologist(ctx context.Context, psychologist *types.Psychologist) error
	DeletePsychologist(ctx context.Context, id string) error
}

type resourceService struct {
	trainings     repository.TrainingRepo
	regulations   repository.RegulationRepo
	links         repository.LinkRepo
	services      repository.ServicePriceRepo
	psychologists repository.PsychologistRepo
}

func NewResourceService(
	trainings repository.TrainingRepo,
	regulations repository.RegulationRepo,
	links repository.LinkRepo,
	services repository.ServicePriceRepo,
	psychologists repository.PsychologistRepo,
) ResourceService {
	return &resourceService{
		trainings:     trainings,
		regulations:   regulations,
		links:         links,
		services:      services,
		psychologists: psychologists,
	}
}

func (s *resourceService) ListTrainings(ctx context.Context) ([]types.TrainingMaterial, error) {
	return s.trainings.ListTrainings(ctx)
}

func (s *resourceService) CreateTraining(ctx context.Context, training *types.TrainingMaterial) error {
	training.ID = uuid.NewString()
	return s.trainings.CreateTraining(ctx, training)
}

func (s *resourceService) UpdateTraining(ctx context.Context, training *types.TrainingMaterial) error {
	return s.trainings.UpdateTraining(ctx, training)
}

func (s *resourceService) DeleteTraining(ctx context.Context, id string) error {
	return s.trainings.DeleteTraining(ctx, id)
}

func (s *resourceService) ListRegulations(ctx context.Context, viewer *types.User) ([]types.RegulationSection, error) {
	sections, err := s.regulations.ListRegulations(ctx)
	if err != nil {
		return nil, err
	}
	return types.FilterVisible(sections, viewer), nil
}

func (s *resourceService) CreateRegulation(ctx context.Context, section *types.RegulationSection) error {
	section.ID = uuid.NewString()
	return s.regulations.CreateRegulation(ctx, section)
}

func (s *resourceService) UpdateRegulation(ctx context.Context, section *types.RegulationSection) error {
	return s.regulations.UpdateRegulation(ctx, section)
}

func (s *resourceService) DeleteRegulation(ctx context.Context, id string) error {
	return s.regulations.DeleteRegulation(ctx, id)
}

func (s *resourceService) ListLinks(ctx context.Context, viewer *types.User) ([]types.UsefulLink, error) {
	links, err := s.links.ListLinks(ctx)
	if err != nil {
		return nil, err
	}
	return types.FilterVisible(links, viewer), nil
}

func (s *resourceService) CreateLink(ctx context.Context, link *types.UsefulLink) error {
	link.ID = uuid.NewString()
	return s.links.CreateLink(ctx, link)
}

func (s *resourceService) UpdateLink(ctx context.Context, link *types.UsefulLink) error {
	return s.links.UpdateLink(ctx, link)
}

func (s *resourceService) DeleteLink(ctx context.Context, id string) error {
	return s.links.DeleteLink(ctx, id)
}

func (s *resourceService) ListServices(ctx context.Context, viewer *types.User) ([]types.ServicePrice, error) {
	services, err := s.services.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return types.FilterVisible(services, viewer), nil
}

func (s *resourceService) CreateService(ctx context.Context, service *types.ServicePrice) error {
	service.ID = uuid.NewString()
	return s.services.CreateService(ctx, service)
}

func (s *resourceService) UpdateService(ctx context.Context, service *types.ServicePrice) error {
	return s.services.UpdateService(ctx, service)
}

func (s *resourceService) DeleteService(ctx context.Context, id string) error {
	return s.services.DeleteService(ctx, id)
}

func (s *resourceService) ListPsychologists(ctx context.Context) ([]types.Psychologist, error) {
	return s.psychologists.ListPsychologists(ctx)
}

func (s *resourceService) CreatePsychologist(ctx context.Context, psychologist *types.Psychologist) error {
	psychologist.ID = uuid.NewString()
	return s.psychologists.CreatePsychologist(ctx, psychologist)
}

func (s *resourceService) UpdatePsychologist(ctx context.Context, psychologist *types.Psychologist) error {
	return s.psychologists.UpdatePsychologist(ctx, psychologist)
}

func (s *resourceService) DeletePsychologist(ctx context.Context, id string) error {
	return s.psychologists.DeletePsychologist(ctx, id)
}

package memory

import (
	"context"

	"github.com/contempsico/portal-be/types"
)

// Generic helpers for the five resource catalogs, which share the same
// CRUD shape. New records go first, as the portal lists them.

func catalogCreate[T any](s *Store, ctx context.Context, table *[]*T, record T) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	*table = append([]*T{&record}, *table...)
	return nil
}

func catalogList[T any](s *Store, ctx context.Context, table *[]*T) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]T, 0, len(*table))
	for _, record := range *table {
		records = append(records, *record)
	}
	return records, nil
}

func catalogUpdate[T any](s *Store, ctx context.Context, table *[]*T, id string, record T, getID func(*T) string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range *table {
		if getID(existing) == id {
			(*table)[i] = &record
			return nil
		}
	}
	return types.ErrNotFound
}

func catalogDelete[T any](s *Store, ctx context.Context, table *[]*T, id string, getID func(*T) string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range *table {
		if getID(existing) == id {
			*table = append((*table)[:i], (*table)[i+1:]...)
			return nil
		}
	}
	return types.ErrNotFound
}

func (s *Store) CreateTraining(ctx context.Context, training *types.TrainingMaterial) error {
	return catalogCreate(s, ctx, &s.trainings, *training)
}

func (s *Store) ListTrainings(ctx context.Context) ([]types.TrainingMaterial, error) {
	return catalogList(s, ctx, &s.trainings)
}

func (s *Store) UpdateTraining(ctx context.Context, training *types.TrainingMaterial) error {
	return catalogUpdate(s, ctx, &s.trainings, training.ID, *training,
		func(t *types.TrainingMaterial) string { return t.ID })
}

func (s *Store) DeleteTraining(ctx context.Context, id string) error {
	return catalogDelete(s, ctx, &s.trainings, id,
		func(t *types.TrainingMaterial) string { return t.ID })
}

func (s *Store) CreateRegulation(ctx context.Context, section *types.RegulationSection) error {
	clone := *section
	clone.Visibility = append([]string(nil), section.Visibility...)
	return catalogCreate(s, ctx, &s.regulations, clone)
}

func (s *Store) ListRegulations(ctx context.Context) ([]types.RegulationSection, error) {
	return catalogList(s, ctx, &s.regulations)
}

func (s *Store) UpdateRegulation(ctx context.Context, section *types.RegulationSection) error {
	clone := *section
	clone.Visibility = append([]string(nil), section.Visibility...)
	return catalogUpdate(s, ctx, &s.regulations, section.ID, clone,
		func(r *types.RegulationSection) string { return r.ID })
}

func (s *Store) DeleteRegulation(ctx context.Context, id string) error {
	return catalogDelete(s, ctx, &s.regulations, id,
		func(r *types.RegulationSection) string { return r.ID })
}

func (s *Store) CreateLink(ctx context.Context, link *types.UsefulLink) error {
	clone := *link
	clone.Visibility = append([]string(nil), link.Visibility...)
	return catalogCreate(s, ctx, &s.links, clone)
}

func (s *Store) ListLinks(ctx context.Context) ([]types.UsefulLink, error) {
	return catalogList(s, ctx, &s.links)
}

func (s *Store) UpdateLink(ctx context.Context, link *types.UsefulLink) error {
	clone := *link
	clone.Visibility = append([]string(nil), link.Visibility...)
	return catalogUpdate(s, ctx, &s.links, link.ID, clone,
		func(l *types.UsefulLink) string { return l.ID })
}

func (s *Store) DeleteLink(ctx context.Context, id string) error {
	return catalogDelete(s, ctx, &s.links, id,
		func(l *types.UsefulLink) string { return l.ID })
}

func (s *Store) CreateService(ctx context.Context, service *types.ServicePrice) error {
	clone := *service
	clone.Visibility = append([]string(nil), service.Visibility...)
	return catalogCreate(s, ctx, &s.services, clone)
}

func (s *Store) ListServices(ctx context.Context) ([]types.ServicePrice, error) {
	return catalogList(s, ctx, &s.services)
}

func (s *Store) UpdateService(ctx context.Context, service *types.ServicePrice) error {
	clone := *service
	clone.Visibility = append([]string(nil), service.Visibility...)
	return catalogUpdate(s, ctx, &s.services, service.ID, clone,
		func(p *types.ServicePrice) string { return p.ID })
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	return catalogDelete(s, ctx, &s.services, id,
		func(p *types.ServicePrice) string { return p.ID })
}

func (s *Store) CreatePsychologist(ctx context.Context, psychologist *types.Psychologist) error {
	return catalogCreate(s, ctx, &s.psychologists, *psychologist)
}

func (s *Store) GetPsychologist(ctx context.Context, id string) (*types.Psychologist, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, psychologist := range s.psychologists {
		if psychologist.ID == id {
			clone := *psychologist
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (s *Store) ListPsychologists(ctx context.Context) ([]types.Psychologist, error) {
	return catalogList(s, ctx, &s.psychologists)
}

func (s *Store) UpdatePsychologist(ctx context.Context, psychologist *types.Psychologist) error {
	return catalogUpdate(s, ctx, &s.psychologists, psychologist.ID, *psychologist,
		func(p *types.Psychologist) string { return p.ID })
}

func (s *Store) DeletePsychologist(ctx context.Context, id string) error {
	return catalogDelete(s, ctx, &s.psychologists, id,
		func(p *types.Psychologist) string { return p.ID })
}

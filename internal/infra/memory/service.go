package memory

import (
	"context"
	"sort"
	"strings"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ServiceRepository struct {
	s *Store
}

func (r *ServiceRepository) nameInUse(name string, excludeID uint) bool {
	for id, svc := range r.s.services {
		if id != excludeID && svc.Name == name {
			return true
		}
	}
	return false
}

// checkDuration mirrors the table check, which is looser than the catalog
// rule.
func checkDuration(minutes int) error {
	if minutes < domain.MinDurationStore || minutes > domain.MaxDuration {
		return httperr.ErrValidation(map[string]string{
			"DuracionMinutos": "La duración debe estar entre 5 y 480 minutos",
		})
	}
	return nil
}

func (r *ServiceRepository) Create(_ context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nameInUse(svc.Name, 0) {
		return domain.DuplicateName()
	}
	if err := checkDuration(svc.DurationMinutes); err != nil {
		return err
	}

	now := r.s.now()
	svc.ID = r.s.next("services")
	svc.CreatedAt = now
	svc.UpdatedAt = now
	r.s.services[svc.ID] = *svc
	return nil
}

func (r *ServiceRepository) GetByID(_ context.Context, id uint) (*models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	svc, ok := r.s.services[id]
	if !ok {
		return nil, domain.NotFound()
	}
	return &svc, nil
}

func (r *ServiceRepository) List(_ context.Context, f domain.Filter) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	term := strings.TrimSpace(f.Search)
	out := []models.Service{}
	for _, id := range sortedKeys(r.s.services) {
		svc := r.s.services[id]
		switch {
		case term != "" && !containsFold(svc.Name, term) && !containsFold(svc.Description, term):
			continue
		case f.Category != "" && svc.Category != f.Category:
			continue
		case f.MinPrice != nil && svc.Price.LessThan(*f.MinPrice):
			continue
		case f.MaxPrice != nil && svc.Price.GreaterThan(*f.MaxPrice):
			continue
		case f.Active != nil && svc.Active != *f.Active:
			continue
		}
		out = append(out, svc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *ServiceRepository) Update(_ context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.services[svc.ID]
	if !ok {
		return domain.NotFound()
	}
	if r.nameInUse(svc.Name, svc.ID) {
		return domain.DuplicateName()
	}
	if err := checkDuration(svc.DurationMinutes); err != nil {
		return err
	}

	current.Name = svc.Name
	current.Description = svc.Description
	current.Price = svc.Price
	current.DurationMinutes = svc.DurationMinutes
	current.Category = svc.Category
	current.Active = svc.Active
	current.UpdatedAt = r.s.now()

	r.s.services[svc.ID] = current
	*svc = current
	return nil
}

func (r *ServiceRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[id]; !ok {
		return domain.NotFound()
	}
	for _, ap := range r.s.appointments {
		if ap.ServiceID == id {
			return httperr.ErrConflict("No se puede eliminar el servicio porque tiene citas asociadas")
		}
	}

	delete(r.s.services, id)
	return nil
}

func (r *ServiceRepository) NameTaken(_ context.Context, name string, excludeID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameInUse(name, excludeID), nil
}

func (r *ServiceRepository) Exists(_ context.Context, id uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.services[id]
	return ok, nil
}

var _ domain.Repository = (*ServiceRepository)(nil)

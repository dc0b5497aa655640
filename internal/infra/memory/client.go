package memory

import (
	"context"
	"sort"
	"strings"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/client"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ClientRepository struct {
	s *Store
}

func (r *ClientRepository) emailInUse(email string, excludeID uint) bool {
	for id, c := range r.s.clients {
		if id != excludeID && c.Email == email {
			return true
		}
	}
	return false
}

func (r *ClientRepository) Create(_ context.Context, c *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailInUse(c.Email, 0) {
		return domain.DuplicateEmail()
	}

	c.ID = r.s.next("clients")
	c.UpdatedAt = r.s.now()
	r.s.clients[c.ID] = *c
	return nil
}

func (r *ClientRepository) GetByID(_ context.Context, id uint) (*models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return nil, domain.NotFound()
	}
	return &c, nil
}

func (r *ClientRepository) List(_ context.Context, f domain.Filter) ([]models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	term := strings.TrimSpace(f.Search)
	out := []models.Client{}
	for _, id := range sortedKeys(r.s.clients) {
		c := r.s.clients[id]
		if term != "" &&
			!containsFold(c.FirstName, term) &&
			!containsFold(c.LastName, term) &&
			!strings.Contains(c.Phone, term) &&
			!containsFold(c.Email, term) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *ClientRepository) SearchNameOrPhone(_ context.Context, term string) ([]models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Client{}
	for _, id := range sortedKeys(r.s.clients) {
		c := r.s.clients[id]
		if containsFold(c.FirstName, term) || strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	return out, nil
}

func (r *ClientRepository) Update(_ context.Context, c *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.clients[c.ID]
	if !ok {
		return domain.NotFound()
	}
	if r.emailInUse(c.Email, c.ID) {
		return domain.DuplicateEmail()
	}

	current.FirstName = c.FirstName
	current.LastName = c.LastName
	current.Phone = c.Phone
	current.Email = c.Email
	current.Address = c.Address
	current.BirthDate = c.BirthDate
	current.UpdatedAt = r.s.now()

	r.s.clients[c.ID] = current
	*c = current
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[id]; !ok {
		return domain.NotFound()
	}
	for _, ap := range r.s.appointments {
		if ap.ClientID == id {
			return httperr.ErrConflict("No se puede eliminar el cliente porque tiene citas registradas")
		}
	}

	delete(r.s.clients, id)
	return nil
}

func (r *ClientRepository) EmailTaken(_ context.Context, email string, excludeID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.emailInUse(email, excludeID), nil
}

func (r *ClientRepository) Exists(_ context.Context, id uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.clients[id]
	return ok, nil
}

var _ domain.Repository = (*ClientRepository)(nil)

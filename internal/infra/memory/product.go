package memory

import (
	"context"
	"sort"
	"strings"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/product"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ProductRepository struct {
	s *Store
}

func (r *ProductRepository) Create(_ context.Context, p *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.Stock < 0 || p.Stock > domain.MaxStock {
		return domain.StockOutOfRange()
	}

	p.ID = r.s.next("products")
	p.UpdatedAt = r.s.now()
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id uint) (*models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.NotFound()
	}
	return &p, nil
}

func (r *ProductRepository) List(_ context.Context, f domain.Filter) ([]models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	term := strings.TrimSpace(f.Search)
	out := []models.Product{}
	for _, id := range sortedKeys(r.s.products) {
		p := r.s.products[id]
		switch {
		case term != "" && !containsFold(p.Name, term) && !containsFold(deref(p.Brand), term):
			continue
		case f.Category != "" && deref(p.Category) != f.Category:
			continue
		case f.Active != nil && p.Active != *f.Active:
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepository) ListStockBelow(_ context.Context, limit int) ([]models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Product{}
	for _, id := range sortedKeys(r.s.products) {
		if p := r.s.products[id]; p.Stock < limit {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Stock != out[j].Stock {
			return out[i].Stock < out[j].Stock
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, p *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.products[p.ID]
	if !ok {
		return domain.NotFound()
	}
	if p.Stock < 0 || p.Stock > domain.MaxStock {
		return domain.StockOutOfRange()
	}

	current.Name = p.Name
	current.Description = p.Description
	current.Price = p.Price
	current.Stock = p.Stock
	current.MinStock = p.MinStock
	current.Brand = p.Brand
	current.Category = p.Category
	current.Active = p.Active
	current.UpdatedAt = r.s.now()

	r.s.products[p.ID] = current
	*p = current
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return domain.NotFound()
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepository) AdjustStock(_ context.Context, id uint, delta int) (*models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.NotFound()
	}
	next := p.Stock + delta
	if next < 0 || next > domain.MaxStock {
		return nil, domain.StockOutOfRange()
	}

	p.Stock = next
	p.UpdatedAt = r.s.now()
	r.s.products[id] = p
	return &p, nil
}

func (r *ProductRepository) SetImageURL(_ context.Context, id uint, url string) (*models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.NotFound()
	}
	p.ImageURL = &url
	p.UpdatedAt = r.s.now()
	r.s.products[id] = p
	return &p, nil
}

var _ domain.Repository = (*ProductRepository)(nil)

package product

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/product"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

const Entity = "producto"

// ======================================================
// WRITES
// ======================================================

type ManageProducts struct {
	repo  domain.Repository
	clock timezone.Clock
	audit audit.Recorder
}

func NewManageProducts(repo domain.Repository, clock timezone.Clock, audit audit.Recorder) *ManageProducts {
	return &ManageProducts{repo: repo, clock: clock, audit: audit}
}

func (uc *ManageProducts) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	p.ID = 0
	p.ImageURL = nil
	p.RegisteredAt = uc.clock.Now()
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.record(ctx, audit.ActionCreate, p.ID, nil)
	return p, nil
}

// Update leaves the image and the registration date as they are.
func (uc *ManageProducts) Update(ctx context.Context, id uint, p *models.Product) (*models.Product, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	p.ID = id
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.record(ctx, audit.ActionUpdate, id, nil)
	return p, nil
}

func (uc *ManageProducts) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.record(ctx, audit.ActionDelete, id, nil)
	return nil
}

// AdjustStock adds a signed delta to the current stock.
func (uc *ManageProducts) AdjustStock(ctx context.Context, id uint, delta int) (*models.Product, error) {
	p, err := uc.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	uc.record(ctx, audit.ActionAdjustStock, id, map[string]int{"delta": delta, "stock": p.Stock})
	return p, nil
}

func (uc *ManageProducts) record(ctx context.Context, action string, id uint, meta any) {
	uc.audit.Dispatch(audit.Event{
		Action:    action,
		Entity:    Entity,
		EntityID:  audit.ID(id),
		Metadata:  meta,
		RequestID: audit.RequestID(ctx),
	})
}

// ======================================================
// QUERIES
// ======================================================

type QueryProducts struct {
	repo              domain.Repository
	lowStockThreshold int
}

func NewQueryProducts(repo domain.Repository, lowStockThreshold int) *QueryProducts {
	return &QueryProducts{repo: repo, lowStockThreshold: lowStockThreshold}
}

func (uc *QueryProducts) Get(ctx context.Context, id uint) (*models.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *QueryProducts) List(ctx context.Context, f domain.Filter) ([]models.Product, error) {
	return uc.repo.List(ctx, f)
}

// LowStock lists products below the salon-wide threshold. This is not the
// per-product minimum that drives models.Product.LowStock.
func (uc *QueryProducts) LowStock(ctx context.Context) ([]models.Product, error) {
	return uc.repo.ListStockBelow(ctx, uc.lowStockThreshold)
}

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/cache"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

const Entity = "servicio"

// ======================================================
// WRITES
// ======================================================

// Catalog writes bump the cache version so cached lists never outlive a
// change.
type ManageServices struct {
	repo  domain.Repository
	cache cache.Cache
	audit audit.Recorder
}

func NewManageServices(repo domain.Repository, c cache.Cache, audit audit.Recorder) *ManageServices {
	return &ManageServices{repo: repo, cache: c, audit: audit}
}

func (uc *ManageServices) Create(ctx context.Context, s *models.Service) (*models.Service, error) {
	if err := domain.Validate(s); err != nil {
		return nil, err
	}

	taken, err := uc.repo.NameTaken(ctx, s.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.DuplicateName()
	}

	s.ID = 0
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.changed(ctx, audit.ActionCreate, s.ID)
	return s, nil
}

func (uc *ManageServices) Update(ctx context.Context, id uint, s *models.Service) (*models.Service, error) {
	if err := domain.Validate(s); err != nil {
		return nil, err
	}

	taken, err := uc.repo.NameTaken(ctx, s.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.DuplicateName()
	}

	s.ID = id
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.changed(ctx, audit.ActionUpdate, id)
	return s, nil
}

// Delete is refused with a conflict while appointments book the service.
func (uc *ManageServices) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.changed(ctx, audit.ActionDelete, id)
	return nil
}

func (uc *ManageServices) changed(ctx context.Context, action string, id uint) {
	if err := uc.cache.Bump(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog cache bump failed")
	}

	uc.audit.Dispatch(audit.Event{
		Action:    action,
		Entity:    Entity,
		EntityID:  audit.ID(id),
		RequestID: audit.RequestID(ctx),
	})
}

// ======================================================
// QUERIES
// ======================================================

type QueryServices struct {
	repo  domain.Repository
	cache cache.Cache
}

func NewQueryServices(repo domain.Repository, c cache.Cache) *QueryServices {
	return &QueryServices{repo: repo, cache: c}
}

func (uc *QueryServices) Get(ctx context.Context, id uint) (*models.Service, error) {
	return uc.repo.GetByID(ctx, id)
}

// List serves from the cache when it can. Cache failures fall back to the
// store.
func (uc *QueryServices) List(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	key := cacheKey(f)

	var cached []models.Service
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
	}
	if hit {
		return cached, nil
	}

	out, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
	return out, nil
}

func (uc *QueryServices) ByCategory(ctx context.Context, category string) ([]models.Service, error) {
	return uc.List(ctx, domain.Filter{Category: category})
}

func cacheKey(f domain.Filter) string {
	var b strings.Builder
	b.WriteString("services")
	fmt.Fprintf(&b, "|q=%s|cat=%s", strings.ToLower(strings.TrimSpace(f.Search)), f.Category)
	if f.MinPrice != nil {
		fmt.Fprintf(&b, "|min=%s", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		fmt.Fprintf(&b, "|max=%s", f.MaxPrice.String())
	}
	if f.Active != nil {
		fmt.Fprintf(&b, "|active=%t", *f.Active)
	}
	return b.String()
}

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return translateWrite("create service", r.db.WithContext(ctx).Create(s).Error)
}

func (r *ServiceGormRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translateRead("get service", err, domain.NotFound)
	}
	return &s, nil
}

func (r *ServiceGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Model(&models.Service{})

	if term := strings.TrimSpace(f.Search); term != "" {
		like := likePattern(term)
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}

	var out []models.Service
	if err := q.Order("category ASC, name ASC").Find(&out).Error; err != nil {
		return nil, translateRead("list services", err, domain.NotFound)
	}
	return out, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":             s.Name,
			"description":      s.Description,
			"price":            s.Price,
			"duration_minutes": s.DurationMinutes,
			"category":         s.Category,
			"active":           s.Active,
		})
	if res.Error != nil {
		return translateWrite("update service", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}

	return translateRead("reload service", r.db.WithContext(ctx).First(s, s.ID).Error, domain.NotFound)
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return translateDelete("delete service", res.Error, "No se puede eliminar el servicio porque tiene citas asociadas")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}
	return nil
}

func (r *ServiceGormRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *ServiceGormRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Compile-time check
var _ domain.Repository = (*ServiceGormRepository)(nil)

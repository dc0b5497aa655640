package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/client"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	return translateWrite("create client", r.db.WithContext(ctx).Create(c).Error)
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translateRead("get client", err, domain.NotFound)
	}
	return &c, nil
}

func (r *ClientGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Client, error) {
	q := r.db.WithContext(ctx).Model(&models.Client{})

	if term := strings.TrimSpace(f.Search); term != "" {
		like := likePattern(term)
		q = q.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR phone LIKE ? OR email ILIKE ?",
			like, like, like, like,
		)
	}

	var out []models.Client
	if err := q.Order("last_name ASC, first_name ASC").Find(&out).Error; err != nil {
		return nil, translateRead("list clients", err, domain.NotFound)
	}
	return out, nil
}

func (r *ClientGormRepository) SearchNameOrPhone(ctx context.Context, term string) ([]models.Client, error) {
	like := likePattern(term)

	var out []models.Client
	if err := r.db.WithContext(ctx).
		Where("first_name ILIKE ? OR phone LIKE ?", like, like).
		Order("first_name ASC").
		Find(&out).Error; err != nil {
		return nil, translateRead("search clients", err, domain.NotFound)
	}
	return out, nil
}

// Update replaces the editable fields of the row with c.ID and reloads c.
// RegisteredAt is never overwritten.
func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"phone":      c.Phone,
			"email":      c.Email,
			"address":    c.Address,
			"birth_date": c.BirthDate,
		})
	if res.Error != nil {
		return translateWrite("update client", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}

	return translateRead("reload client", r.db.WithContext(ctx).First(c, c.ID).Error, domain.NotFound)
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return translateDelete("delete client", res.Error, "No se puede eliminar el cliente porque tiene citas registradas")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}
	return nil
}

func (r *ClientGormRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *ClientGormRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)

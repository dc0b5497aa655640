package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/product"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Create(ctx context.Context, p *models.Product) error {
	return translateWrite("create product", r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProductGormRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translateRead("get product", err, domain.NotFound)
	}
	return &p, nil
}

func (r *ProductGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if term := strings.TrimSpace(f.Search); term != "" {
		like := likePattern(term)
		q = q.Where("name ILIKE ? OR brand ILIKE ?", like, like)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}

	var out []models.Product
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, translateRead("list products", err, domain.NotFound)
	}
	return out, nil
}

func (r *ProductGormRepository) ListStockBelow(ctx context.Context, limit int) ([]models.Product, error) {
	var out []models.Product
	if err := r.db.WithContext(ctx).
		Where("stock < ?", limit).
		Order("stock ASC, name ASC").
		Find(&out).Error; err != nil {
		return nil, translateRead("list low stock", err, domain.NotFound)
	}
	return out, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p *models.Product) error {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"stock":       p.Stock,
			"min_stock":   p.MinStock,
			"brand":       p.Brand,
			"category":    p.Category,
			"active":      p.Active,
		})
	if res.Error != nil {
		return translateWrite("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}

	return translateRead("reload product", r.db.WithContext(ctx).First(p, p.ID).Error, domain.NotFound)
}

func (r *ProductGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return translateDelete("delete product", res.Error, "No se puede eliminar el producto porque tiene ventas registradas")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}
	return nil
}

// AdjustStock applies the delta only when the new value is in range, so
// two concurrent adjustments never push the stock out of bounds.
func (r *ProductGormRepository) AdjustStock(ctx context.Context, id uint, delta int) (*models.Product, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock + ? BETWEEN 0 AND ?", id, delta, domain.MaxStock).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return nil, translateWrite("adjust stock", res.Error)
	}

	if res.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, domain.StockOutOfRange()
	}

	return r.GetByID(ctx, id)
}

func (r *ProductGormRepository) SetImageURL(ctx context.Context, id uint, url string) (*models.Product, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("image_url", url)
	if res.Error != nil {
		return nil, translateWrite("set product image", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound()
	}
	return r.GetByID(ctx, id)
}

// Compile-time check
var _ domain.Repository = (*ProductGormRepository)(nil)

package repository

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComboRepository reads combos regardless of their validity window; callers
// decide whether a seasonal combo is currently offered.
type ComboRepository interface {
	Create(ctx context.Context, c *model.Combo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Combo, error)
	List(ctx context.Context) ([]model.Combo, error)
	// Update saves the combo fields and replaces its items atomically.
	Update(ctx context.Context, c *model.Combo) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type comboRepo struct{ db *gorm.DB }

func NewComboRepository(db *gorm.DB) ComboRepository { return &comboRepo{db: db} }

func conItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("orden asc") }).
		Preload("Items.Presentacion.Producto")
}

func (r *comboRepo) Create(ctx context.Context, c *model.Combo) error {
	return traducirError(r.db.WithContext(ctx).Create(c).Error)
}

func (r *comboRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Combo, error) {
	var c model.Combo
	if err := r.db.WithContext(ctx).Scopes(activos, conItems).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *comboRepo) List(ctx context.Context) ([]model.Combo, error) {
	var list []model.Combo
	err := r.db.WithContext(ctx).Scopes(activos, conItems).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *comboRepo) Update(ctx context.Context, c *model.Combo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(c).Error; err != nil {
			return traducirError(err)
		}
		if err := tx.Where("combo_id = ?", c.ID).Delete(&model.ComboItem{}).Error; err != nil {
			return err
		}
		if len(c.Items) == 0 {
			return nil
		}
		for i := range c.Items {
			c.Items[i].ID = uuid.Nil
			c.Items[i].ComboID = c.ID
		}
		return traducirError(tx.Omit("Presentacion").Create(&c.Items).Error)
	})
}

func (r *comboRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Combo{}).Where("id = ?", id).Update("activo", false).Error
}

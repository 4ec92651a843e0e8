package model

import (
	"time"

	"github.com/google/uuid"
)

// Producto is a menu item (e.g. "Tamal colorado"). It is never sold directly;
// its Presentaciones are.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoriaID uuid.UUID `gorm:"type:uuid;not null;index"`
	Codigo      *string   `gorm:"uniqueIndex"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	ImagenURL   *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria      *Categoria     `gorm:"foreignKey:CategoriaID"`
	Presentaciones []Presentacion `gorm:"foreignKey:ProductoID"`
}

func (Producto) TableName() string { return "productos" }

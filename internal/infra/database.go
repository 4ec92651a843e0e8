package infra

import (
	"fmt"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and, when migrate
// is set, brings the schema up to date.
func NewDatabase(dsn string, migrate bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if migrate {
		if err := RunMigrations(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// RunMigrations creates or updates every table and then applies the
// constraints GORM tags cannot express. Both steps are idempotent.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(
		&model.Sucursal{},
		&model.Categoria{},
		&model.Producto{},
		&model.Presentacion{},
		&model.Atributo{},
		&model.AtributoOpcion{},
		&model.Combo{},
		&model.ComboItem{},
		&model.MateriaPrima{},
		&model.MovimientoInventario{},
		&model.Venta{},
		&model.VentaItem{},
		&model.SecuenciaVenta{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// checkConstraint is a named CHECK added only when absent.
type checkConstraint struct{ tabla, nombre, expr string }

var checks = []checkConstraint{
	{"presentaciones", "chk_presentaciones_precio", "precio >= 0"},
	{"atributo_opciones", "chk_atributo_opciones_precio_extra", "precio_extra >= 0"},
	{"combos", "chk_combos_precio", "precio >= 0"},
	{"combos", "chk_combos_tipo", "tipo IN ('FIJO','ESTACIONAL')"},
	{"combos", "chk_combos_ventana", "tipo = 'FIJO' OR (fecha_inicio IS NOT NULL AND fecha_fin IS NOT NULL AND fecha_inicio <= fecha_fin)"},
	{"combo_items", "chk_combo_items_cantidad", "cantidad > 0"},
	{"materias_primas", "chk_materias_primas_stock", "stock_actual >= 0"},
	{"materias_primas", "chk_materias_primas_umbral", "punto_critico <= stock_minimo"},
	{"movimientos_inventario", "chk_movimientos_tipo", "tipo IN ('E','S','M')"},
	{"movimientos_inventario", "chk_movimientos_cantidad", "cantidad > 0"},
	{"ventas", "chk_ventas_estado", "estado IN ('COMPLETADA','ANULADA')"},
	{"ventas", "chk_ventas_total", "descuento >= 0 AND total >= 0"},
	{"venta_items", "chk_venta_items_cantidad", "cantidad > 0"},
	{"venta_items", "chk_venta_items_ref", "(tipo_item = 'PRODUCTO' AND presentacion_id IS NOT NULL AND combo_id IS NULL) OR " +
		"(tipo_item = 'COMBO' AND combo_id IS NOT NULL AND presentacion_id IS NULL)"},
}

func applySchemaPatches(db *gorm.DB) error {
	for _, c := range checks {
		sql := fmt.Sprintf(`
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint
                 WHERE conrelid = to_regclass('%s') AND conname = '%s') THEN
    ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s);
  END IF;
END $$`, c.tabla, c.nombre, c.tabla, c.nombre, c.expr)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", c.nombre, err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_ventas_fecha_estado ON ventas (fecha, estado)`,
		`CREATE INDEX IF NOT EXISTS idx_movimientos_inventario_fecha ON movimientos_inventario (materia_prima_id, fecha DESC)`,
	}
	for _, sql := range indexes {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

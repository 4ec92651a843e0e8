package infra

import (
	"fmt"
	"io"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type hojaXLSX struct {
	nombre      string
	encabezados []any
	filas       [][]any
}

// EscribirDashboardXLSX writes d as a workbook with one sheet per section.
func EscribirDashboardXLSX(w io.Writer, d *dto.DashboardResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: style: %w", err)
	}

	for i, h := range hojasDashboard(d) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", h.nombre); err != nil {
				return fmt.Errorf("xlsx: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(h.nombre); err != nil {
			return fmt.Errorf("xlsx: new sheet %s: %w", h.nombre, err)
		}
		if err := escribirHoja(f, h, negrita); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

func escribirHoja(f *excelize.File, h hojaXLSX, estiloEncabezado int) error {
	if err := f.SetSheetRow(h.nombre, "A1", &h.encabezados); err != nil {
		return fmt.Errorf("xlsx: %s header: %w", h.nombre, err)
	}
	ultima, err := excelize.CoordinatesToCellName(len(h.encabezados), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(h.nombre, "A1", ultima, estiloEncabezado); err != nil {
		return fmt.Errorf("xlsx: %s style: %w", h.nombre, err)
	}
	for i := range h.filas {
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(h.nombre, celda, &h.filas[i]); err != nil {
			return fmt.Errorf("xlsx: %s row %d: %w", h.nombre, i+2, err)
		}
	}
	return nil
}

func hojasDashboard(d *dto.DashboardResponse) []hojaXLSX {
	resumen := hojaXLSX{
		nombre:      "Resumen",
		encabezados: []any{"Indicador", "Valor"},
		filas: [][]any{
			{"Desde", d.Desde},
			{"Hasta", d.Hasta},
			{"Ventas hoy (Q)", num(d.VentasHoy)},
			{"Cantidad ventas hoy", d.TotalVentasHoy},
			{"Ventas mes (Q)", num(d.VentasMes)},
			{"Cantidad ventas mes", d.TotalVentasMes},
			{"Unidades con picante", d.ProporcionPicante.ConPicante},
			{"Unidades sin picante", d.ProporcionPicante.SinPicante},
			{"% con picante", num(d.ProporcionPicante.PorcentajeConPicante)},
			{"Desperdicio mes (Q)", num(d.DesperdicioMes)},
		},
	}

	top := hojaXLSX{nombre: "Top productos", encabezados: []any{"Producto", "Presentación", "Cantidad", "Total (Q)"}}
	for _, p := range d.ProductosMasVendidos {
		top.filas = append(top.filas, []any{p.Producto, p.Presentacion, p.CantidadVendida, num(p.TotalVendido)})
	}

	bebidas := hojaXLSX{nombre: "Bebidas", encabezados: []any{"Horario", "Bebida", "Cantidad"}}
	for _, b := range d.BebidasPorHorario {
		bebidas.filas = append(bebidas.filas, []any{b.Horario, b.Bebida, b.Cantidad})
	}

	utilidades := hojaXLSX{nombre: "Utilidades", encabezados: []any{"Línea", "Ventas (Q)", "Costo estimado (Q)", "Utilidad (Q)", "Margen %"}}
	for _, u := range d.UtilidadesPorLinea {
		utilidades.filas = append(utilidades.filas, []any{u.Linea, num(u.Ventas), num(u.CostoEstimado), num(u.Utilidad), num(u.MargenPorcentaje)})
	}

	alertas := hojaXLSX{nombre: "Alertas", encabezados: []any{"Materia prima", "Categoría", "Unidad", "Stock", "Mínimo", "Punto crítico", "Nivel"}}
	for _, a := range d.Alertas {
		alertas.filas = append(alertas.filas, []any{a.Nombre, a.Categoria, a.UnidadMedida, num(a.StockActual), num(a.StockMinimo), num(a.PuntoCritico), a.Nivel})
	}

	return []hojaXLSX{resumen, top, bebidas, utilidades, alertas}
}

func num(d decimal.Decimal) float64 { return d.InexactFloat64() }

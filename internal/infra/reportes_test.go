package infra

import (
	"bytes"
	"testing"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ventaDePrueba(estado string) *dto.VentaResponse {
	pid := uuid.New()
	return &dto.VentaResponse{
		ID:        uuid.New(),
		Codigo:    "V-20250314-0007",
		Sucursal:  "Zona 1",
		Fecha:     "2025-03-14T15:30:00-06:00",
		Subtotal:  d("47.50"),
		Descuento: d("2.50"),
		Total:     d("45.00"),
		Estado:    estado,
		Items: []dto.ItemVentaResponse{
			{
				TipoItem:       "PRODUCTO",
				PresentacionID: &pid,
				Descripcion:    "Tamal colorado - Unidad",
				Cantidad:       3,
				PrecioUnitario: d("10"),
				PrecioExtras:   d("2.50"),
				Subtotal:       d("37.50"),
				Personalizacion: map[string]dto.OpcionElegidaResponse{
					"relleno": {Nombre: "Loroco", PrecioExtra: d("2.50")},
					"picante": {Nombre: "Sin chile"},
				},
			},
			{TipoItem: "COMBO", Descripcion: "Combo pequeño", Cantidad: 1, PrecioUnitario: d("10"), Subtotal: d("10")},
		},
	}
}

func TestGenerarTicketPDF(t *testing.T) {
	for _, estado := range []string{"COMPLETADA", "ANULADA"} {
		var buf bytes.Buffer
		require.NoError(t, GenerarTicketPDF(&buf, "La Cazuela Chapina", ventaDePrueba(estado)))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), estado)
		assert.Greater(t, buf.Len(), 500)
	}
}

func TestEscribirDashboardXLSX(t *testing.T) {
	dash := &dto.DashboardResponse{
		Desde:          "2025-03-01",
		Hasta:          "2025-03-14",
		VentasHoy:      d("150"),
		TotalVentasHoy: 4,
		ProductosMasVendidos: []dto.ProductoVendidoResponse{
			{Producto: "Tamal negro", Presentacion: "Unidad", CantidadVendida: 6, TotalVendido: d("66")},
		},
		UtilidadesPorLinea: []dto.UtilidadLineaResponse{
			{Linea: "Tamales", Ventas: d("126"), CostoEstimado: d("50.4"), Utilidad: d("75.6"), MargenPorcentaje: d("60")},
		},
		Alertas: []dto.AlertaStockResponse{{Nombre: "Masa", Nivel: "CRITICO", StockActual: d("1")}},
	}

	var buf bytes.Buffer
	require.NoError(t, EscribirDashboardXLSX(&buf, dash))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumen", "Top productos", "Bebidas", "Utilidades", "Alertas"}, f.GetSheetList())

	v, err := f.GetCellValue("Resumen", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", v)

	v, err = f.GetCellValue("Top productos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Tamal negro", v)

	v, err = f.GetCellValue("Alertas", "G2")
	require.NoError(t, err)
	assert.Equal(t, "CRITICO", v)
}

package dto

import "github.com/shopspring/decimal"

// DashboardFilter is bound from the query string of GET /v1/dashboard.
// An empty window means month to date.
type DashboardFilter struct {
	SucursalID string `form:"sucursal_id"`
	Desde      string `form:"desde"` // YYYY-MM-DD, inclusive
	Hasta      string `form:"hasta"` // YYYY-MM-DD, inclusive
}

type ProductoVendidoResponse struct {
	Producto        string          `json:"producto"`
	Presentacion    string          `json:"presentacion"`
	CantidadVendida int             `json:"cantidad_vendida"`
	TotalVendido    decimal.Decimal `json:"total_vendido"`
}

type BebidaHorarioResponse struct {
	Horario  string `json:"horario"` // Mañana | Tarde | Noche
	Bebida   string `json:"bebida"`
	Cantidad int    `json:"cantidad"`
}

type ProporcionPicanteResponse struct {
	ConPicante           int             `json:"con_picante"`
	SinPicante           int             `json:"sin_picante"`
	PorcentajeConPicante decimal.Decimal `json:"porcentaje_con_picante"`
}

type UtilidadLineaResponse struct {
	Linea            string          `json:"linea"`
	Ventas           decimal.Decimal `json:"ventas"`
	CostoEstimado    decimal.Decimal `json:"costo_estimado"`
	Utilidad         decimal.Decimal `json:"utilidad"`
	MargenPorcentaje decimal.Decimal `json:"margen_porcentaje"`
}

type DashboardResponse struct {
	VentasHoy            decimal.Decimal           `json:"ventas_hoy"`
	TotalVentasHoy       int64                     `json:"total_ventas_hoy"`
	VentasMes            decimal.Decimal           `json:"ventas_mes"`
	TotalVentasMes       int64                     `json:"total_ventas_mes"`
	Desde                string                    `json:"desde"`
	Hasta                string                    `json:"hasta"`
	ProductosMasVendidos []ProductoVendidoResponse `json:"productos_mas_vendidos"`
	BebidasPorHorario    []BebidaHorarioResponse   `json:"bebidas_por_horario"`
	ProporcionPicante    ProporcionPicanteResponse `json:"proporcion_picante"`
	UtilidadesPorLinea   []UtilidadLineaResponse   `json:"utilidades_por_linea"`
	DesperdicioMes       decimal.Decimal           `json:"desperdicio_mes"`
	Alertas              []AlertaStockResponse     `json:"alertas"`
}

package service

import (
	"context"
	"sort"
	"strings"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReglasDashboard holds the matching rules and cost assumptions of the
// dashboard. Costs are fractions of revenue, not actual material cost.
type ReglasDashboard struct {
	CategoriaBebidas string
	AtributoPicante  string
	OpcionSinPicante string
	CostoProductos   decimal.Decimal
	CostoCombos      decimal.Decimal
}

func ReglasPorDefecto() ReglasDashboard {
	return ReglasDashboard{
		CategoriaBebidas: "bebida",
		AtributoPicante:  "picante",
		OpcionSinPicante: "sin",
		CostoProductos:   decimal.RequireFromString("0.40"),
		CostoCombos:      decimal.RequireFromString("0.45"),
	}
}

type DashboardService interface {
	ObtenerDashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	ventas      repository.VentaRepository
	movimientos repository.MovimientoInventarioRepository
	inventario  InventarioService
	reglas      ReglasDashboard
	clock       Clock
}

func NewDashboardService(
	ventas repository.VentaRepository,
	movimientos repository.MovimientoInventarioRepository,
	inventario InventarioService,
	reglas ReglasDashboard,
	clock Clock,
) DashboardService {
	return &dashboardService{
		ventas:      ventas,
		movimientos: movimientos,
		inventario:  inventario,
		reglas:      reglas,
		clock:       clock,
	}
}

const (
	topProductos = 10
	lineaCombos  = "Combos"
)

var cien = decimal.NewFromInt(100)

type franjaHoraria struct {
	nombre      string
	desde, hasta int
}

var franjas = []franjaHoraria{
	{"Mañana", 6, 12},
	{"Tarde", 12, 18},
	{"Noche", 18, 24},
}

func (s *dashboardService) ObtenerDashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error) {
	var sucursalID *uuid.UUID
	if filter.SucursalID != "" {
		id, err := parseID(filter.SucursalID, "sucursal_id")
		if err != nil {
			return nil, err
		}
		sucursalID = &id
	}
	d, h, err := s.clock.Rango(filter.Desde, filter.Hasta)
	if err != nil {
		return nil, err
	}

	hoy := s.clock.Hoy()
	manana := hoy.AddDate(0, 0, 1)
	inicioMes := s.clock.InicioMes()
	desde, hasta := inicioMes, manana
	if d != nil {
		desde = *d
	}
	if h != nil {
		hasta = *h
	}

	resp := &dto.DashboardResponse{
		Desde: desde.Format(formatoDia),
		Hasta: hasta.AddDate(0, 0, -1).Format(formatoDia),
	}
	if resp.VentasHoy, resp.TotalVentasHoy, err = s.ventas.Resumen(ctx, sucursalID, hoy, manana); err != nil {
		return nil, err
	}
	if resp.VentasMes, resp.TotalVentasMes, err = s.ventas.Resumen(ctx, sucursalID, inicioMes, manana); err != nil {
		return nil, err
	}

	items, err := s.ventas.ItemsVendidos(ctx, sucursalID, desde, hasta)
	if err != nil {
		return nil, err
	}
	resp.ProductosMasVendidos = masVendidos(items, topProductos)
	resp.BebidasPorHorario = s.bebidasPorHorario(items)
	resp.ProporcionPicante = s.proporcionPicante(items)
	resp.UtilidadesPorLinea = s.utilidadesPorLinea(items)

	if resp.DesperdicioMes, err = s.movimientos.SumCosto(ctx, model.MovimientoMerma, inicioMes, manana); err != nil {
		return nil, err
	}
	if resp.Alertas, err = s.inventario.ObtenerAlertas(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}

// masVendidos ranks product lines by quantity, then revenue.
func masVendidos(items []model.VentaItem, n int) []dto.ProductoVendidoResponse {
	porPresentacion := make(map[uuid.UUID]*dto.ProductoVendidoResponse)
	for i := range items {
		it := &items[i]
		if it.TipoItem != model.ItemProducto || it.PresentacionID == nil || it.Presentacion == nil {
			continue
		}
		acc, ok := porPresentacion[*it.PresentacionID]
		if !ok {
			producto := ""
			if it.Presentacion.Producto != nil {
				producto = it.Presentacion.Producto.Nombre
			}
			acc = &dto.ProductoVendidoResponse{Producto: producto, Presentacion: it.Presentacion.Nombre}
			porPresentacion[*it.PresentacionID] = acc
		}
		acc.CantidadVendida += it.Cantidad
		acc.TotalVendido = acc.TotalVendido.Add(it.Subtotal)
	}

	out := make([]dto.ProductoVendidoResponse, 0, len(porPresentacion))
	for _, acc := range porPresentacion {
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CantidadVendida != out[j].CantidadVendida {
			return out[i].CantidadVendida > out[j].CantidadVendida
		}
		if c := out[i].TotalVendido.Cmp(out[j].TotalVendido); c != 0 {
			return c > 0
		}
		return out[i].Producto+out[i].Presentacion < out[j].Producto+out[j].Presentacion
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// bebidasPorHorario reports the best-selling beverage of each time bucket.
// Hours before 06:00 fall outside every bucket.
func (s *dashboardService) bebidasPorHorario(items []model.VentaItem) []dto.BebidaHorarioResponse {
	conteo := make([]map[string]int, len(franjas))
	for i := range conteo {
		conteo[i] = make(map[string]int)
	}
	for i := range items {
		it := &items[i]
		if !s.esBebida(it) || it.Venta == nil {
			continue
		}
		hora := it.Venta.Fecha.In(s.clock.location()).Hour()
		for f, franja := range franjas {
			if hora >= franja.desde && hora < franja.hasta {
				conteo[f][it.Presentacion.Producto.Nombre] += it.Cantidad
				break
			}
		}
	}

	out := make([]dto.BebidaHorarioResponse, 0, len(franjas))
	for f, franja := range franjas {
		mejor, cantidad := "", 0
		for nombre, n := range conteo[f] {
			if n > cantidad || (n == cantidad && nombre < mejor) {
				mejor, cantidad = nombre, n
			}
		}
		if cantidad > 0 {
			out = append(out, dto.BebidaHorarioResponse{Horario: franja.nombre, Bebida: mejor, Cantidad: cantidad})
		}
	}
	return out
}

func (s *dashboardService) esBebida(it *model.VentaItem) bool {
	if it.TipoItem != model.ItemProducto || it.Presentacion == nil || it.Presentacion.Producto == nil {
		return false
	}
	cat := it.Presentacion.Producto.Categoria
	return cat != nil && contieneSinMayusculas(cat.Nombre, s.reglas.CategoriaBebidas)
}

// proporcionPicante counts units of product lines that chose a spice option.
func (s *dashboardService) proporcionPicante(items []model.VentaItem) dto.ProporcionPicanteResponse {
	var resp dto.ProporcionPicanteResponse
	for i := range items {
		if items[i].TipoItem != model.ItemProducto {
			continue
		}
		opcion, ok := items[i].Personalizacion[s.reglas.AtributoPicante]
		if !ok {
			continue
		}
		if contieneSinMayusculas(opcion.Nombre, s.reglas.OpcionSinPicante) {
			resp.SinPicante += items[i].Cantidad
		} else {
			resp.ConPicante += items[i].Cantidad
		}
	}
	if total := resp.ConPicante + resp.SinPicante; total > 0 {
		resp.PorcentajeConPicante = decimal.NewFromInt(int64(resp.ConPicante)).
			Mul(cien).
			Div(decimal.NewFromInt(int64(total))).
			Round(2)
	}
	return resp
}

// utilidadesPorLinea groups revenue by product category, with all combos in
// one line, and applies the configured cost fraction to each.
func (s *dashboardService) utilidadesPorLinea(items []model.VentaItem) []dto.UtilidadLineaResponse {
	ventas := make(map[string]decimal.Decimal)
	costo := make(map[string]decimal.Decimal)
	for i := range items {
		it := &items[i]
		linea, fraccion := "", s.reglas.CostoProductos
		switch it.TipoItem {
		case model.ItemCombo:
			linea, fraccion = lineaCombos, s.reglas.CostoCombos
		case model.ItemProducto:
			linea = "Sin categoría"
			if it.Presentacion != nil && it.Presentacion.Producto != nil && it.Presentacion.Producto.Categoria != nil {
				linea = it.Presentacion.Producto.Categoria.Nombre
			}
		default:
			continue
		}
		ventas[linea] = ventas[linea].Add(it.Subtotal)
		costo[linea] = costo[linea].Add(it.Subtotal.Mul(fraccion))
	}

	out := make([]dto.UtilidadLineaResponse, 0, len(ventas))
	for linea, v := range ventas {
		c := costo[linea].Round(2)
		u := v.Sub(c)
		margen := decimal.Zero
		if v.IsPositive() {
			margen = u.Mul(cien).Div(v).Round(2)
		}
		out = append(out, dto.UtilidadLineaResponse{
			Linea:            linea,
			Ventas:           v,
			CostoEstimado:    c,
			Utilidad:         u,
			MargenPorcentaje: margen,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Ventas.Cmp(out[j].Ventas); c != 0 {
			return c > 0
		}
		return out[i].Linea < out[j].Linea
	})
	return out
}

func contieneSinMayusculas(s, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

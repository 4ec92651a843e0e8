package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	AnularVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo       repository.VentaRepository
	sucursales repository.SucursalRepository
	productos  repository.ProductoRepository
	atributos  repository.AtributoRepository
	combos     repository.ComboRepository
	clock      Clock
}

func NewVentaService(
	repo repository.VentaRepository,
	sucursales repository.SucursalRepository,
	productos repository.ProductoRepository,
	atributos repository.AtributoRepository,
	combos repository.ComboRepository,
	clock Clock,
) VentaService {
	return &ventaService{
		repo:       repo,
		sucursales: sucursales,
		productos:  productos,
		atributos:  atributos,
		combos:     combos,
		clock:      clock,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
//   1. Resolve branch, presentations, options and combos (outside TX)
//   2. Price every line and the sale
//   3. BEGIN TX: reserve the day's sequence number, insert venta + items
//   4. COMMIT

// lineaResuelta is a priced sale line plus the catalog rows it came from.
type lineaResuelta struct {
	item         model.VentaItem
	presentacion *model.Presentacion
	combo        *model.Combo
}

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	sucursalID, err := parseID(req.SucursalID, "sucursal_id")
	if err != nil {
		return nil, err
	}
	if req.Descuento.IsNegative() {
		return nil, invalid("el descuento no puede ser negativo")
	}
	if len(req.Items) == 0 {
		return nil, invalid("la venta debe tener al menos un item")
	}

	sucursal, err := s.sucursales.ObtenerPorID(ctx, sucursalID)
	if err != nil {
		return nil, lookupErr(err, "sucursal no encontrada")
	}

	hoy := s.clock.Hoy()
	lineas := make([]lineaResuelta, 0, len(req.Items))
	subtotal := decimal.Zero
	for i, item := range req.Items {
		l, err := s.resolverLinea(ctx, i+1, item, hoy)
		if err != nil {
			return nil, err
		}
		l.item.Orden = i + 1
		subtotal = subtotal.Add(l.item.Subtotal)
		lineas = append(lineas, l)
	}

	if req.Descuento.GreaterThan(subtotal) {
		return nil, invalid("el descuento (%s) no puede superar el subtotal (%s)",
			req.Descuento.StringFixed(2), subtotal.StringFixed(2))
	}

	venta := model.Venta{
		SucursalID: sucursalID,
		Fecha:      s.clock.Ahora(),
		Subtotal:   subtotal,
		Descuento:  req.Descuento,
		Total:      subtotal.Sub(req.Descuento),
		Estado:     model.VentaCompletada,
	}
	for _, l := range lineas {
		venta.Items = append(venta.Items, l.item)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		n, err := s.repo.SiguienteNumero(ctx, tx, hoy)
		if err != nil {
			return err
		}
		venta.Codigo = model.FormatearCodigoVenta(hoy, n)
		return s.repo.Create(ctx, tx, &venta)
	})
	if txErr != nil {
		return nil, writeErr(txErr, "el código de venta ya existe, intente de nuevo")
	}

	venta.Sucursal = sucursal
	for i := range venta.Items {
		venta.Items[i].Presentacion = lineas[i].presentacion
		venta.Items[i].Combo = lineas[i].combo
	}

	log.Info().
		Str("venta_id", venta.ID.String()).
		Str("codigo", venta.Codigo).
		Str("sucursal", sucursal.Nombre).
		Str("total", venta.Total.StringFixed(2)).
		Int("items", len(venta.Items)).
		Msg("venta registrada")

	return ventaToResponse(&venta, s.clock.location()), nil
}

// refSolicitada reads the tagged reference of a requested line.
func refSolicitada(n int, item dto.ItemVentaRequest) (model.ItemRef, error) {
	presentacion := item.PresentacionID != nil && *item.PresentacionID != ""
	combo := item.ComboID != nil && *item.ComboID != ""
	switch {
	case presentacion && combo:
		return nil, invalid("item %d: indique presentacion_id o combo_id, no ambos", n)
	case presentacion:
		id, err := parseID(*item.PresentacionID, "presentacion_id")
		if err != nil {
			return nil, err
		}
		return model.RefPresentacion{PresentacionID: id}, nil
	case combo:
		id, err := parseID(*item.ComboID, "combo_id")
		if err != nil {
			return nil, err
		}
		return model.RefCombo{ComboID: id}, nil
	}
	return nil, invalid("item %d: debe indicar presentacion_id o combo_id", n)
}

func (s *ventaService) resolverLinea(ctx context.Context, n int, item dto.ItemVentaRequest, hoy time.Time) (lineaResuelta, error) {
	ref, err := refSolicitada(n, item)
	if err != nil {
		return lineaResuelta{}, err
	}
	if item.Cantidad <= 0 {
		return lineaResuelta{}, invalid("item %d: la cantidad debe ser mayor a cero", n)
	}

	l := lineaResuelta{}
	l.item.SetRef(ref)
	l.item.Cantidad = item.Cantidad
	l.item.PrecioExtras = decimal.Zero

	switch r := ref.(type) {
	case model.RefPresentacion:
		p, err := s.productos.FindPresentacion(ctx, r.PresentacionID)
		if err != nil {
			return lineaResuelta{}, lookupErr(err, "presentación "+r.PresentacionID.String()+" no encontrada")
		}
		l.presentacion = p
		l.item.PrecioUnitario = p.Precio
		pers, extras, err := s.resolverPersonalizacion(ctx, item.Personalizacion)
		if err != nil {
			return lineaResuelta{}, err
		}
		l.item.Personalizacion = pers
		l.item.PrecioExtras = extras
	case model.RefCombo:
		c, err := s.combos.FindByID(ctx, r.ComboID)
		if err != nil {
			return lineaResuelta{}, lookupErr(err, "combo "+r.ComboID.String()+" no encontrado")
		}
		if !c.VigenteEn(hoy) {
			return lineaResuelta{}, invalid("el combo %s no está vigente", c.Nombre)
		}
		l.combo = c
		l.item.PrecioUnitario = c.Precio
	}

	cantidad := decimal.NewFromInt(int64(item.Cantidad))
	l.item.Subtotal = l.item.PrecioUnitario.Add(l.item.PrecioExtras).Mul(cantidad)
	return l, nil
}

// resolverPersonalizacion snapshots the chosen options. Entries whose option id
// is malformed or no longer resolves are skipped.
func (s *ventaService) resolverPersonalizacion(ctx context.Context, elegidas map[string]string) (model.Personalizacion, decimal.Decimal, error) {
	extras := decimal.Zero
	if len(elegidas) == 0 {
		return nil, extras, nil
	}

	codigos := make([]string, 0, len(elegidas))
	for codigo := range elegidas {
		codigos = append(codigos, codigo)
	}
	sort.Strings(codigos)

	pers := make(model.Personalizacion, len(elegidas))
	for _, codigo := range codigos {
		raw := elegidas[codigo]
		opcionID, err := uuid.Parse(raw)
		if err != nil {
			log.Warn().Str("atributo", codigo).Str("opcion_id", raw).Msg("personalizacion ignorada: opcion_id inválido")
			continue
		}
		opcion, err := s.atributos.ObtenerOpcion(ctx, opcionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn().Str("atributo", codigo).Str("opcion_id", raw).Msg("personalizacion ignorada: opción inexistente")
				continue
			}
			return nil, extras, err
		}
		pers[codigo] = model.OpcionElegida{
			OpcionID:    opcion.ID,
			Nombre:      opcion.Nombre,
			PrecioExtra: opcion.PrecioExtra,
		}
		extras = extras.Add(opcion.PrecioExtra)
	}
	if len(pers) == 0 {
		return nil, extras, nil
	}
	return pers, extras, nil
}

// ── AnularVenta ───────────────────────────────────────────────────────────────
// COMPLETADA → ANULADA is one-way. Voiding an already void sale succeeds
// without writing.

func (s *ventaService) AnularVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "venta no encontrada")
	}
	if venta.Estado != model.VentaAnulada {
		if err := s.repo.UpdateEstado(ctx, id, model.VentaAnulada); err != nil {
			return nil, err
		}
		venta.Estado = model.VentaAnulada
		log.Info().Str("venta_id", id.String()).Str("codigo", venta.Codigo).Msg("venta anulada")
	}
	return ventaToResponse(venta, s.clock.location()), nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "venta no encontrada")
	}
	return ventaToResponse(venta, s.clock.location()), nil
}

// ── ListVentas ────────────────────────────────────────────────────────────────

func (s *ventaService) ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 50
	}

	f := repository.VentaFilter{Page: filter.Page, Limit: filter.Limit}
	if filter.SucursalID != "" {
		id, err := parseID(filter.SucursalID, "sucursal_id")
		if err != nil {
			return nil, err
		}
		f.SucursalID = &id
	}
	desde, hasta, err := s.clock.Rango(filter.Desde, filter.Hasta)
	if err != nil {
		return nil, err
	}
	f.Desde, f.Hasta = desde, hasta

	switch estado := strings.ToUpper(strings.TrimSpace(filter.Estado)); estado {
	case "", model.VentaCompletada, model.VentaAnulada:
		f.Estado = estado
	default:
		return nil, invalid("estado inválido: %q", filter.Estado)
	}

	ventas, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	data := make([]dto.VentaResponse, len(ventas))
	for i := range ventas {
		data[i] = *ventaToResponse(&ventas[i], s.clock.location())
	}
	return &dto.VentaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ── Mapping helpers ───────────────────────────────────────────────────────────

func ventaToResponse(v *model.Venta, loc *time.Location) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:         v.ID,
		Codigo:     v.Codigo,
		SucursalID: v.SucursalID,
		Fecha:      v.Fecha.In(loc).Format(formatoFecha),
		Subtotal:   v.Subtotal,
		Descuento:  v.Descuento,
		Total:      v.Total,
		Estado:     v.Estado,
		Items:      make([]dto.ItemVentaResponse, 0, len(v.Items)),
	}
	if v.Sucursal != nil {
		resp.Sucursal = v.Sucursal.Nombre
	}
	for i := range v.Items {
		resp.Items = append(resp.Items, itemToResponse(&v.Items[i]))
	}
	return resp
}

func itemToResponse(it *model.VentaItem) dto.ItemVentaResponse {
	resp := dto.ItemVentaResponse{
		ID:             it.ID,
		TipoItem:       it.TipoItem,
		PresentacionID: it.PresentacionID,
		ComboID:        it.ComboID,
		Descripcion:    it.Descripcion(),
		Cantidad:       it.Cantidad,
		PrecioUnitario: it.PrecioUnitario,
		PrecioExtras:   it.PrecioExtras,
		Subtotal:       it.Subtotal,
	}
	if len(it.Personalizacion) > 0 {
		resp.Personalizacion = make(map[string]dto.OpcionElegidaResponse, len(it.Personalizacion))
		for codigo, o := range it.Personalizacion {
			resp.Personalizacion[codigo] = dto.OpcionElegidaResponse{
				OpcionID:    o.OpcionID,
				Nombre:      o.Nombre,
				PrecioExtra: o.PrecioExtra,
			}
		}
	}
	return resp
}

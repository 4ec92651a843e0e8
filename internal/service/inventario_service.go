package service

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventarioService interface {
	CrearMateriaPrima(ctx context.Context, req dto.CrearMateriaPrimaRequest) (*dto.MateriaPrimaResponse, error)
	ActualizarMateriaPrima(ctx context.Context, id uuid.UUID, req dto.ActualizarMateriaPrimaRequest) (*dto.MateriaPrimaResponse, error)
	ObtenerMateriaPrima(ctx context.Context, id uuid.UUID) (*dto.MateriaPrimaResponse, error)
	ListarMateriasPrimas(ctx context.Context) ([]dto.MateriaPrimaResponse, error)

	RegistrarMovimiento(ctx context.Context, req dto.MovimientoRequest) (*dto.RegistrarMovimientoResponse, error)
	ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error)
	ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error)
}

type inventarioService struct {
	materias    repository.MateriaPrimaRepository
	movimientos repository.MovimientoInventarioRepository
	clock       Clock
}

func NewInventarioService(
	materias repository.MateriaPrimaRepository,
	movimientos repository.MovimientoInventarioRepository,
	clock Clock,
) InventarioService {
	return &inventarioService{materias: materias, movimientos: movimientos, clock: clock}
}

// ── Materias primas ───────────────────────────────────────────────────────────

func (s *inventarioService) CrearMateriaPrima(ctx context.Context, req dto.CrearMateriaPrimaRequest) (*dto.MateriaPrimaResponse, error) {
	if req.PuntoCritico.GreaterThan(req.StockMinimo) {
		return nil, invalid("el punto crítico no puede superar el stock mínimo")
	}
	m := model.MateriaPrima{
		Categoria:    req.Categoria,
		Nombre:       req.Nombre,
		UnidadMedida: req.UnidadMedida,
		StockMinimo:  req.StockMinimo,
		PuntoCritico: req.PuntoCritico,
		Activo:       true,
	}

	err := runTx(ctx, s.materias.DB(), func(tx *gorm.DB) error {
		if err := s.materias.CrearTx(tx, &m); err != nil {
			return err
		}
		if req.StockInicial == nil || !req.StockInicial.IsPositive() {
			return nil
		}
		motivo := "Stock inicial"
		_, err := s.postear(tx, &m, model.MovimientoEntrada, *req.StockInicial, req.CostoInicial, &motivo)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapMateriaPrima(&m), nil
}

func (s *inventarioService) ActualizarMateriaPrima(ctx context.Context, id uuid.UUID, req dto.ActualizarMateriaPrimaRequest) (*dto.MateriaPrimaResponse, error) {
	m, err := s.materias.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "materia prima no encontrada")
	}
	if req.Categoria != nil {
		m.Categoria = *req.Categoria
	}
	if req.Nombre != nil {
		m.Nombre = *req.Nombre
	}
	if req.UnidadMedida != nil {
		m.UnidadMedida = *req.UnidadMedida
	}
	if req.StockMinimo != nil {
		m.StockMinimo = *req.StockMinimo
	}
	if req.PuntoCritico != nil {
		m.PuntoCritico = *req.PuntoCritico
	}
	if m.PuntoCritico.GreaterThan(m.StockMinimo) {
		return nil, invalid("el punto crítico no puede superar el stock mínimo")
	}
	if err := s.materias.Actualizar(ctx, m); err != nil {
		return nil, err
	}
	return mapMateriaPrima(m), nil
}

func (s *inventarioService) ObtenerMateriaPrima(ctx context.Context, id uuid.UUID) (*dto.MateriaPrimaResponse, error) {
	m, err := s.materias.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "materia prima no encontrada")
	}
	return mapMateriaPrima(m), nil
}

func (s *inventarioService) ListarMateriasPrimas(ctx context.Context) ([]dto.MateriaPrimaResponse, error) {
	list, err := s.materias.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MateriaPrimaResponse, len(list))
	for i := range list {
		out[i] = *mapMateriaPrima(&list[i])
	}
	return out, nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// RegistrarMovimiento locks the material row, applies the movement and appends
// the ledger entry in one transaction. A failure leaves no trace.
func (s *inventarioService) RegistrarMovimiento(ctx context.Context, req dto.MovimientoRequest) (*dto.RegistrarMovimientoResponse, error) {
	materiaID, err := parseID(req.MateriaPrimaID, "materia_prima_id")
	if err != nil {
		return nil, err
	}
	tipo, ok := model.ParseTipoMovimiento(req.Tipo)
	if !ok {
		return nil, invalid("tipo de movimiento inválido: %q (use E, S o M)", req.Tipo)
	}
	if !req.Cantidad.IsPositive() {
		return nil, invalid("la cantidad debe ser mayor a cero")
	}

	var materia model.MateriaPrima
	var mov *model.MovimientoInventario
	err = runTx(ctx, s.materias.DB(), func(tx *gorm.DB) error {
		actual, err := s.materias.ObtenerParaActualizarTx(tx, materiaID)
		if err != nil {
			return lookupErr(err, "materia prima no encontrada")
		}
		materia = *actual
		mov, err = s.postear(tx, &materia, tipo, req.Cantidad, req.CostoUnitario, req.Motivo)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("materia_prima_id", materia.ID.String()).
		Str("tipo", tipo).
		Str("cantidad", req.Cantidad.String()).
		Str("stock", materia.StockActual.String()).
		Str("costo_promedio", materia.CostoPromedio.String()).
		Msg("movimiento de inventario registrado")

	movResp := mapMovimiento(mov)
	movResp.MateriaPrima = materia.Nombre
	return &dto.RegistrarMovimientoResponse{
		Movimiento:   movResp,
		MateriaPrima: *mapMateriaPrima(&materia),
	}, nil
}

// postear mutates m in memory, persists its new stock and cost, and appends
// the movement. m must have been read inside tx.
func (s *inventarioService) postear(
	tx *gorm.DB,
	m *model.MateriaPrima,
	tipo string,
	cantidad decimal.Decimal,
	costo *decimal.Decimal,
	motivo *string,
) (*model.MovimientoInventario, error) {
	if err := aplicarMovimiento(m, tipo, cantidad, costo); err != nil {
		return nil, err
	}
	if err := s.materias.GuardarStockTx(tx, m); err != nil {
		return nil, err
	}
	mov := &model.MovimientoInventario{
		MateriaPrimaID:  m.ID,
		Tipo:            tipo,
		Cantidad:        cantidad,
		CostoUnitario:   costo,
		Motivo:          motivo,
		StockResultante: m.StockActual,
		CostoResultante: m.CostoPromedio,
		Fecha:           s.clock.Ahora(),
	}
	if err := s.movimientos.CreateTx(tx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// aplicarMovimiento applies the ledger rules to m. On error m is untouched.
func aplicarMovimiento(m *model.MateriaPrima, tipo string, cantidad decimal.Decimal, costo *decimal.Decimal) error {
	switch tipo {
	case model.MovimientoEntrada:
		if costo != nil && costo.IsPositive() {
			m.CostoPromedio = costoPromedioPonderado(m.StockActual, m.CostoPromedio, cantidad, *costo)
		}
		m.StockActual = m.StockActual.Add(cantidad)
	case model.MovimientoSalida, model.MovimientoMerma:
		if m.StockActual.LessThan(cantidad) {
			return newError(ErrInsufficientStock,
				"stock insuficiente de %s: disponible %s, solicitado %s",
				m.Nombre, m.StockActual.String(), cantidad.String())
		}
		m.StockActual = m.StockActual.Sub(cantidad)
	default:
		return invalid("tipo de movimiento inválido: %q", tipo)
	}
	return nil
}

// costoPromedioPonderado blends the value of the current stock with the
// incoming lot: (S·C + Q·U) / (S+Q). A zero denominator yields cost 0.
func costoPromedioPonderado(stock, costo, cantidad, costoUnitario decimal.Decimal) decimal.Decimal {
	total := stock.Add(cantidad)
	if total.IsZero() {
		return decimal.Zero
	}
	valor := stock.Mul(costo).Add(cantidad.Mul(costoUnitario))
	return valor.Div(total).Round(4)
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error) {
	f := repository.MovimientoInventarioFilter{Limit: filter.Limit}
	if filter.MateriaPrimaID != "" {
		id, err := parseID(filter.MateriaPrimaID, "materia_prima_id")
		if err != nil {
			return nil, err
		}
		f.MateriaPrimaID = &id
	}
	if filter.Tipo != "" {
		tipo, ok := model.ParseTipoMovimiento(filter.Tipo)
		if !ok {
			return nil, invalid("tipo de movimiento inválido: %q", filter.Tipo)
		}
		f.Tipo = tipo
	}
	desde, hasta, err := s.clock.Rango(filter.Desde, filter.Hasta)
	if err != nil {
		return nil, err
	}
	f.Desde, f.Hasta = desde, hasta

	list, err := s.movimientos.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, len(list))
	for i := range list {
		out[i] = mapMovimiento(&list[i])
	}
	return out, nil
}

func (s *inventarioService) ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error) {
	list, err := s.materias.ListarAlertas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertaStockResponse, 0, len(list))
	for i := range list {
		m := &list[i]
		nivel := m.NivelAlerta()
		if nivel == "" {
			continue
		}
		out = append(out, dto.AlertaStockResponse{
			MateriaPrimaID: m.ID,
			Nombre:         m.Nombre,
			Categoria:      m.Categoria,
			UnidadMedida:   m.UnidadMedida,
			StockActual:    m.StockActual,
			StockMinimo:    m.StockMinimo,
			PuntoCritico:   m.PuntoCritico,
			Nivel:          nivel,
		})
	}
	return out, nil
}

// ── Mapping helpers ───────────────────────────────────────────────────────────

func mapMateriaPrima(m *model.MateriaPrima) *dto.MateriaPrimaResponse {
	return &dto.MateriaPrimaResponse{
		ID:             m.ID,
		Categoria:      m.Categoria,
		Nombre:         m.Nombre,
		UnidadMedida:   m.UnidadMedida,
		StockActual:    m.StockActual,
		StockMinimo:    m.StockMinimo,
		PuntoCritico:   m.PuntoCritico,
		CostoPromedio:  m.CostoPromedio,
		EnPuntoCritico: m.EnPuntoCritico(),
		BajoMinimo:     m.BajoMinimo(),
	}
}

func mapMovimiento(m *model.MovimientoInventario) dto.MovimientoResponse {
	resp := dto.MovimientoResponse{
		ID:              m.ID,
		MateriaPrimaID:  m.MateriaPrimaID,
		Tipo:            m.Tipo,
		Cantidad:        m.Cantidad,
		CostoUnitario:   m.CostoUnitario,
		Motivo:          m.Motivo,
		StockResultante: m.StockResultante,
		CostoResultante: m.CostoResultante,
		Fecha:           m.Fecha.Format(formatoFecha),
	}
	if m.MateriaPrima != nil {
		resp.MateriaPrima = m.MateriaPrima.Nombre
	}
	return resp
}

package service

import (
	"context"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ComboService interface {
	// ListarCombos returns active combos. Seasonal combos outside their window
	// are left out unless filter.Todos is set.
	ListarCombos(ctx context.Context, filter dto.ComboFilter) ([]dto.ComboResponse, error)
	ObtenerCombo(ctx context.Context, id uuid.UUID) (*dto.ComboResponse, error)
	CrearCombo(ctx context.Context, req dto.ComboRequest) (*dto.ComboResponse, error)
	ActualizarCombo(ctx context.Context, id uuid.UUID, req dto.ComboRequest) (*dto.ComboResponse, error)
	DesactivarCombo(ctx context.Context, id uuid.UUID) error
}

type comboService struct {
	repo      repository.ComboRepository
	productos repository.ProductoRepository
	clock     Clock
}

func NewComboService(repo repository.ComboRepository, productos repository.ProductoRepository, clock Clock) ComboService {
	return &comboService{repo: repo, productos: productos, clock: clock}
}

const msgComboNoEncontrado = "combo no encontrado"

func (s *comboService) ListarCombos(ctx context.Context, filter dto.ComboFilter) ([]dto.ComboResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	hoy := s.clock.Ahora()
	out := make([]dto.ComboResponse, 0, len(list))
	for i := range list {
		if !filter.Todos && !list[i].VigenteEn(hoy) {
			continue
		}
		out = append(out, mapCombo(&list[i], hoy))
	}
	return out, nil
}

func (s *comboService) ObtenerCombo(ctx context.Context, id uuid.UUID) (*dto.ComboResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgComboNoEncontrado)
	}
	resp := mapCombo(c, s.clock.Ahora())
	return &resp, nil
}

func (s *comboService) CrearCombo(ctx context.Context, req dto.ComboRequest) (*dto.ComboResponse, error) {
	c := &model.Combo{Activo: true}
	presentaciones, err := s.aplicarRequest(ctx, c, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, writeErr(err, "ya existe un combo con ese nombre")
	}
	adjuntarPresentaciones(c, presentaciones)

	log.Info().Str("combo_id", c.ID.String()).Str("tipo", c.Tipo).Msg("combo creado")
	resp := mapCombo(c, s.clock.Ahora())
	return &resp, nil
}

func (s *comboService) ActualizarCombo(ctx context.Context, id uuid.UUID, req dto.ComboRequest) (*dto.ComboResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgComboNoEncontrado)
	}
	presentaciones, err := s.aplicarRequest(ctx, c, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, writeErr(err, "ya existe un combo con ese nombre")
	}
	adjuntarPresentaciones(c, presentaciones)

	resp := mapCombo(c, s.clock.Ahora())
	return &resp, nil
}

func (s *comboService) DesactivarCombo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return lookupErr(err, msgComboNoEncontrado)
	}
	return s.repo.SoftDelete(ctx, id)
}

// aplicarRequest validates req and copies it onto c, replacing its items.
// The resolved presentations are returned in item order so they can be
// attached after the write.
func (s *comboService) aplicarRequest(ctx context.Context, c *model.Combo, req dto.ComboRequest) ([]*model.Presentacion, error) {
	if req.Precio.IsNegative() {
		return nil, invalid("el precio del combo no puede ser negativo")
	}
	if len(req.Items) == 0 {
		return nil, invalid("el combo debe incluir al menos un producto")
	}

	c.Nombre = req.Nombre
	c.Descripcion = req.Descripcion
	c.Precio = req.Precio
	c.Tipo = req.Tipo
	c.FechaInicio, c.FechaFin = nil, nil

	switch req.Tipo {
	case model.ComboFijo:
	case model.ComboEstacional:
		if req.FechaInicio == nil || req.FechaFin == nil {
			return nil, invalid("un combo estacional requiere fecha_inicio y fecha_fin")
		}
		inicio, err := time.Parse(formatoDia, *req.FechaInicio)
		if err != nil {
			return nil, invalid("fecha_inicio inválida")
		}
		fin, err := time.Parse(formatoDia, *req.FechaFin)
		if err != nil {
			return nil, invalid("fecha_fin inválida")
		}
		if fin.Before(inicio) {
			return nil, invalid("fecha_fin no puede ser anterior a fecha_inicio")
		}
		c.FechaInicio, c.FechaFin = &inicio, &fin
	default:
		return nil, invalid("tipo de combo inválido: %s", req.Tipo)
	}

	items := make([]model.ComboItem, len(req.Items))
	presentaciones := make([]*model.Presentacion, len(req.Items))
	for i, it := range req.Items {
		if it.Cantidad <= 0 {
			return nil, invalid("la cantidad del item %d debe ser mayor a cero", i+1)
		}
		pid, err := parseID(it.PresentacionID, "presentacion_id")
		if err != nil {
			return nil, err
		}
		p, err := s.productos.FindPresentacion(ctx, pid)
		if err != nil {
			return nil, lookupErr(err, "presentación "+it.PresentacionID+" no encontrada")
		}
		items[i] = model.ComboItem{
			PresentacionID: pid,
			Cantidad:       it.Cantidad,
			Notas:          it.Notas,
			Orden:          i,
		}
		presentaciones[i] = p
	}
	c.Items = items
	return presentaciones, nil
}

func adjuntarPresentaciones(c *model.Combo, presentaciones []*model.Presentacion) {
	for i := range c.Items {
		if i < len(presentaciones) {
			c.Items[i].Presentacion = presentaciones[i]
		}
	}
}

func mapCombo(c *model.Combo, hoy time.Time) dto.ComboResponse {
	resp := dto.ComboResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Precio:      c.Precio,
		Tipo:        c.Tipo,
		Vigente:     c.VigenteEn(hoy),
		Items:       make([]dto.ComboItemResponse, len(c.Items)),
	}
	if c.FechaInicio != nil {
		f := c.FechaInicio.Format(formatoDia)
		resp.FechaInicio = &f
	}
	if c.FechaFin != nil {
		f := c.FechaFin.Format(formatoDia)
		resp.FechaFin = &f
	}
	for i, it := range c.Items {
		desc := ""
		if it.Presentacion != nil {
			desc = it.Presentacion.Descripcion()
		}
		resp.Items[i] = dto.ComboItemResponse{
			PresentacionID: it.PresentacionID,
			Descripcion:    desc,
			Cantidad:       it.Cantidad,
			Notas:          it.Notas,
		}
	}
	return resp
}

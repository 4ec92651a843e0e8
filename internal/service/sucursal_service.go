package service

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"

	"github.com/google/uuid"
)

type SucursalService interface {
	Listar(ctx context.Context) ([]dto.SucursalResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.SucursalResponse, error)
	Crear(ctx context.Context, req dto.CrearSucursalRequest) (*dto.SucursalResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSucursalRequest) (*dto.SucursalResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type sucursalService struct{ repo repository.SucursalRepository }

func NewSucursalService(repo repository.SucursalRepository) SucursalService {
	return &sucursalService{repo: repo}
}

const msgSucursalNoEncontrada = "sucursal no encontrada"

func (s *sucursalService) Listar(ctx context.Context) ([]dto.SucursalResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SucursalResponse, len(list))
	for i := range list {
		out[i] = mapSucursal(&list[i])
	}
	return out, nil
}

func (s *sucursalService) Obtener(ctx context.Context, id uuid.UUID) (*dto.SucursalResponse, error) {
	suc, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgSucursalNoEncontrada)
	}
	resp := mapSucursal(suc)
	return &resp, nil
}

func (s *sucursalService) Crear(ctx context.Context, req dto.CrearSucursalRequest) (*dto.SucursalResponse, error) {
	suc := &model.Sucursal{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Activo:    true,
	}
	if err := s.repo.Crear(ctx, suc); err != nil {
		return nil, writeErr(err, "ya existe una sucursal con ese nombre")
	}
	resp := mapSucursal(suc)
	return &resp, nil
}

func (s *sucursalService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSucursalRequest) (*dto.SucursalResponse, error) {
	suc, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgSucursalNoEncontrada)
	}
	if req.Nombre != nil {
		suc.Nombre = *req.Nombre
	}
	if req.Direccion != nil {
		suc.Direccion = req.Direccion
	}
	if req.Telefono != nil {
		suc.Telefono = req.Telefono
	}
	if err := s.repo.Actualizar(ctx, suc); err != nil {
		return nil, writeErr(err, "ya existe una sucursal con ese nombre")
	}
	resp := mapSucursal(suc)
	return &resp, nil
}

func (s *sucursalService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, msgSucursalNoEncontrada)
	}
	return s.repo.Desactivar(ctx, id)
}

func mapSucursal(s *model.Sucursal) dto.SucursalResponse {
	return dto.SucursalResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		Direccion: s.Direccion,
		Telefono:  s.Telefono,
		Activo:    s.Activo,
	}
}

package service

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService reads the menu and administers categories, products,
// presentations, attributes and options. Deleting always deactivates.
type CatalogoService interface {
	ObtenerCatalogo(ctx context.Context) (*dto.CatalogoResponse, error)
	ObtenerCategoria(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error)
	ListarAtributos(ctx context.Context, categoriaID uuid.UUID) ([]dto.AtributoResponse, error)

	CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	ActualizarCategoria(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	DesactivarCategoria(ctx context.Context, id uuid.UUID) error

	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	DesactivarProducto(ctx context.Context, id uuid.UUID) error

	CrearPresentacion(ctx context.Context, req dto.CrearPresentacionRequest) (*dto.PresentacionResponse, error)
	ActualizarPresentacion(ctx context.Context, id uuid.UUID, req dto.ActualizarPresentacionRequest) (*dto.PresentacionResponse, error)
	DesactivarPresentacion(ctx context.Context, id uuid.UUID) error

	CrearAtributo(ctx context.Context, req dto.CrearAtributoRequest) (*dto.AtributoResponse, error)
	ActualizarAtributo(ctx context.Context, id uuid.UUID, req dto.ActualizarAtributoRequest) (*dto.AtributoResponse, error)
	DesactivarAtributo(ctx context.Context, id uuid.UUID) error

	CrearOpcion(ctx context.Context, req dto.CrearOpcionRequest) (*dto.OpcionResponse, error)
	ActualizarOpcion(ctx context.Context, id uuid.UUID, req dto.ActualizarOpcionRequest) (*dto.OpcionResponse, error)
	DesactivarOpcion(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	categorias repository.CategoriaRepository
	productos  repository.ProductoRepository
	atributos  repository.AtributoRepository
	combos     ComboService
}

func NewCatalogoService(
	categorias repository.CategoriaRepository,
	productos repository.ProductoRepository,
	atributos repository.AtributoRepository,
	combos ComboService,
) CatalogoService {
	return &catalogoService{categorias: categorias, productos: productos, atributos: atributos, combos: combos}
}

const (
	msgCategoriaNoEncontrada    = "categoría no encontrada"
	msgProductoNoEncontrado     = "producto no encontrado"
	msgPresentacionNoEncontrada = "presentación no encontrada"
	msgAtributoNoEncontrado     = "atributo no encontrado"
	msgOpcionNoEncontrada       = "opción no encontrada"
)

// ── Lectura ───────────────────────────────────────────────────────────────────

func (s *catalogoService) ObtenerCatalogo(ctx context.Context) (*dto.CatalogoResponse, error) {
	categorias, err := s.categorias.Listar(ctx)
	if err != nil {
		return nil, err
	}
	combos, err := s.combos.ListarCombos(ctx, dto.ComboFilter{})
	if err != nil {
		return nil, err
	}
	resp := &dto.CatalogoResponse{
		Categorias: make([]dto.CategoriaResponse, len(categorias)),
		Combos:     combos,
	}
	for i := range categorias {
		resp.Categorias[i] = *mapCategoria(&categorias[i])
	}
	return resp, nil
}

func (s *catalogoService) ObtenerCategoria(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error) {
	c, err := s.categorias.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgCategoriaNoEncontrada)
	}
	return mapCategoria(c), nil
}

func (s *catalogoService) ListarAtributos(ctx context.Context, categoriaID uuid.UUID) ([]dto.AtributoResponse, error) {
	if _, err := s.categorias.ObtenerPorID(ctx, categoriaID); err != nil {
		return nil, lookupErr(err, msgCategoriaNoEncontrada)
	}
	list, err := s.atributos.ListarPorCategoria(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AtributoResponse, len(list))
	for i := range list {
		out[i] = mapAtributo(&list[i])
	}
	return out, nil
}

// ── Categorias ────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	c := &model.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Icono:       req.Icono,
		Activo:      true,
	}
	if err := s.categorias.Crear(ctx, c); err != nil {
		return nil, writeErr(err, "ya existe una categoría con ese nombre")
	}
	return mapCategoria(c), nil
}

func (s *catalogoService) ActualizarCategoria(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.categorias.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgCategoriaNoEncontrada)
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Icono != nil {
		c.Icono = req.Icono
	}
	if err := s.categorias.Actualizar(ctx, c); err != nil {
		return nil, writeErr(err, "ya existe una categoría con ese nombre")
	}
	return mapCategoria(c), nil
}

func (s *catalogoService) DesactivarCategoria(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categorias.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, msgCategoriaNoEncontrada)
	}
	return s.categorias.Desactivar(ctx, id)
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categoriaID, err := parseID(req.CategoriaID, "categoria_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.categorias.ObtenerPorID(ctx, categoriaID); err != nil {
		return nil, lookupErr(err, msgCategoriaNoEncontrada)
	}
	p := &model.Producto{
		CategoriaID: categoriaID,
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		ImagenURL:   req.ImagenURL,
		Activo:      true,
	}
	if err := s.productos.Create(ctx, p); err != nil {
		return nil, writeErr(err, "ya existe un producto con ese código")
	}
	return mapProducto(p), nil
}

func (s *catalogoService) ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgProductoNoEncontrado)
	}
	if req.CategoriaID != nil {
		categoriaID, err := parseID(*req.CategoriaID, "categoria_id")
		if err != nil {
			return nil, err
		}
		if _, err := s.categorias.ObtenerPorID(ctx, categoriaID); err != nil {
			return nil, lookupErr(err, msgCategoriaNoEncontrada)
		}
		p.CategoriaID = categoriaID
	}
	if req.Codigo != nil {
		p.Codigo = req.Codigo
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.ImagenURL != nil {
		p.ImagenURL = req.ImagenURL
	}
	if err := s.productos.Update(ctx, p); err != nil {
		return nil, writeErr(err, "ya existe un producto con ese código")
	}
	return mapProducto(p), nil
}

func (s *catalogoService) DesactivarProducto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productos.FindByID(ctx, id); err != nil {
		return lookupErr(err, msgProductoNoEncontrado)
	}
	return s.productos.SoftDelete(ctx, id)
}

// ── Presentaciones ────────────────────────────────────────────────────────────

func (s *catalogoService) CrearPresentacion(ctx context.Context, req dto.CrearPresentacionRequest) (*dto.PresentacionResponse, error) {
	productoID, err := parseID(req.ProductoID, "producto_id")
	if err != nil {
		return nil, err
	}
	if req.Precio.IsNegative() {
		return nil, invalid("el precio no puede ser negativo")
	}
	if _, err := s.productos.FindByID(ctx, productoID); err != nil {
		return nil, lookupErr(err, msgProductoNoEncontrado)
	}
	cantidad := req.Cantidad
	if cantidad == 0 {
		cantidad = 1
	}
	p := &model.Presentacion{
		ProductoID: productoID,
		Nombre:     req.Nombre,
		Cantidad:   cantidad,
		Precio:     req.Precio,
		Orden:      req.Orden,
		Activo:     true,
	}
	if err := s.productos.CreatePresentacion(ctx, p); err != nil {
		return nil, writeErr(err, "presentación duplicada")
	}
	resp := mapPresentacion(p)
	return &resp, nil
}

func (s *catalogoService) ActualizarPresentacion(ctx context.Context, id uuid.UUID, req dto.ActualizarPresentacionRequest) (*dto.PresentacionResponse, error) {
	p, err := s.productos.FindPresentacion(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgPresentacionNoEncontrada)
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Cantidad != nil {
		p.Cantidad = *req.Cantidad
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, invalid("el precio no puede ser negativo")
		}
		p.Precio = *req.Precio
	}
	if req.Orden != nil {
		p.Orden = *req.Orden
	}
	if err := s.productos.UpdatePresentacion(ctx, p); err != nil {
		return nil, writeErr(err, "presentación duplicada")
	}
	resp := mapPresentacion(p)
	return &resp, nil
}

func (s *catalogoService) DesactivarPresentacion(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productos.FindPresentacion(ctx, id); err != nil {
		return lookupErr(err, msgPresentacionNoEncontrada)
	}
	return s.productos.SoftDeletePresentacion(ctx, id)
}

// ── Atributos ─────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearAtributo(ctx context.Context, req dto.CrearAtributoRequest) (*dto.AtributoResponse, error) {
	categoriaID, err := parseID(req.CategoriaID, "categoria_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.categorias.ObtenerPorID(ctx, categoriaID); err != nil {
		return nil, lookupErr(err, msgCategoriaNoEncontrada)
	}
	a := &model.Atributo{
		CategoriaID: categoriaID,
		Nombre:      req.Nombre,
		Codigo:      req.Codigo,
		EsMultiple:  req.EsMultiple,
		EsRequerido: req.EsRequerido,
		Orden:       req.Orden,
		Activo:      true,
	}
	if err := s.atributos.Crear(ctx, a); err != nil {
		return nil, writeErr(err, "ya existe un atributo con el código "+req.Codigo+" en esta categoría")
	}
	resp := mapAtributo(a)
	return &resp, nil
}

func (s *catalogoService) ActualizarAtributo(ctx context.Context, id uuid.UUID, req dto.ActualizarAtributoRequest) (*dto.AtributoResponse, error) {
	a, err := s.atributos.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgAtributoNoEncontrado)
	}
	if req.Nombre != nil {
		a.Nombre = *req.Nombre
	}
	if req.Codigo != nil {
		a.Codigo = *req.Codigo
	}
	if req.EsMultiple != nil {
		a.EsMultiple = *req.EsMultiple
	}
	if req.EsRequerido != nil {
		a.EsRequerido = *req.EsRequerido
	}
	if req.Orden != nil {
		a.Orden = *req.Orden
	}
	if err := s.atributos.Actualizar(ctx, a); err != nil {
		return nil, writeErr(err, "ya existe un atributo con el código "+a.Codigo+" en esta categoría")
	}
	resp := mapAtributo(a)
	return &resp, nil
}

func (s *catalogoService) DesactivarAtributo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.atributos.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, msgAtributoNoEncontrado)
	}
	return s.atributos.Desactivar(ctx, id)
}

// ── Opciones ──────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearOpcion(ctx context.Context, req dto.CrearOpcionRequest) (*dto.OpcionResponse, error) {
	atributoID, err := parseID(req.AtributoID, "atributo_id")
	if err != nil {
		return nil, err
	}
	if req.PrecioExtra.IsNegative() {
		return nil, invalid("el precio extra no puede ser negativo")
	}
	if _, err := s.atributos.ObtenerPorID(ctx, atributoID); err != nil {
		return nil, lookupErr(err, msgAtributoNoEncontrado)
	}
	o := &model.AtributoOpcion{
		AtributoID:  atributoID,
		Nombre:      req.Nombre,
		Codigo:      req.Codigo,
		PrecioExtra: req.PrecioExtra,
		Orden:       req.Orden,
		Activo:      true,
	}
	if err := s.atributos.CrearOpcion(ctx, o); err != nil {
		return nil, writeErr(err, "opción duplicada")
	}
	resp := mapOpcion(o)
	return &resp, nil
}

func (s *catalogoService) ActualizarOpcion(ctx context.Context, id uuid.UUID, req dto.ActualizarOpcionRequest) (*dto.OpcionResponse, error) {
	o, err := s.atributos.ObtenerOpcion(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgOpcionNoEncontrada)
	}
	if req.Nombre != nil {
		o.Nombre = *req.Nombre
	}
	if req.Codigo != nil {
		o.Codigo = *req.Codigo
	}
	if req.PrecioExtra != nil {
		if req.PrecioExtra.IsNegative() {
			return nil, invalid("el precio extra no puede ser negativo")
		}
		o.PrecioExtra = *req.PrecioExtra
	}
	if req.Orden != nil {
		o.Orden = *req.Orden
	}
	if err := s.atributos.ActualizarOpcion(ctx, o); err != nil {
		return nil, writeErr(err, "opción duplicada")
	}
	resp := mapOpcion(o)
	return &resp, nil
}

func (s *catalogoService) DesactivarOpcion(ctx context.Context, id uuid.UUID) error {
	if _, err := s.atributos.ObtenerOpcion(ctx, id); err != nil {
		return lookupErr(err, msgOpcionNoEncontrada)
	}
	return s.atributos.DesactivarOpcion(ctx, id)
}

// ── Mapping helpers ───────────────────────────────────────────────────────────

func mapCategoria(c *model.Categoria) *dto.CategoriaResponse {
	resp := &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Icono:       c.Icono,
		Productos:   make([]dto.ProductoResponse, len(c.Productos)),
		Atributos:   make([]dto.AtributoResponse, len(c.Atributos)),
	}
	for i := range c.Productos {
		resp.Productos[i] = *mapProducto(&c.Productos[i])
	}
	for i := range c.Atributos {
		resp.Atributos[i] = mapAtributo(&c.Atributos[i])
	}
	return resp
}

func mapProducto(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:             p.ID,
		CategoriaID:    p.CategoriaID,
		Codigo:         p.Codigo,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		ImagenURL:      p.ImagenURL,
		Presentaciones: make([]dto.PresentacionResponse, len(p.Presentaciones)),
	}
	for i := range p.Presentaciones {
		resp.Presentaciones[i] = mapPresentacion(&p.Presentaciones[i])
	}
	return resp
}

func mapPresentacion(p *model.Presentacion) dto.PresentacionResponse {
	return dto.PresentacionResponse{
		ID:         p.ID,
		ProductoID: p.ProductoID,
		Nombre:     p.Nombre,
		Cantidad:   p.Cantidad,
		Precio:     p.Precio,
		Orden:      p.Orden,
	}
}

func mapAtributo(a *model.Atributo) dto.AtributoResponse {
	resp := dto.AtributoResponse{
		ID:          a.ID,
		CategoriaID: a.CategoriaID,
		Nombre:      a.Nombre,
		Codigo:      a.Codigo,
		EsMultiple:  a.EsMultiple,
		EsRequerido: a.EsRequerido,
		Orden:       a.Orden,
		Opciones:    make([]dto.OpcionResponse, len(a.Opciones)),
	}
	for i := range a.Opciones {
		resp.Opciones[i] = mapOpcion(&a.Opciones[i])
	}
	return resp
}

func mapOpcion(o *model.AtributoOpcion) dto.OpcionResponse {
	return dto.OpcionResponse{
		ID:          o.ID,
		AtributoID:  o.AtributoID,
		Nombre:      o.Nombre,
		Codigo:      o.Codigo,
		PrecioExtra: o.PrecioExtra,
		Orden:       o.Orden,
	}
}

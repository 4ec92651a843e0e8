package service

import (
	"context"
	"sort"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repositories. DB() returns nil so runTx calls fn(nil) directly.

var (
	_ repository.MateriaPrimaRepository         = (*stubMateriaPrimaRepo)(nil)
	_ repository.MovimientoInventarioRepository = (*stubMovimientoRepo)(nil)
	_ repository.CategoriaRepository            = (*stubCategoriaRepo)(nil)
	_ repository.ProductoRepository             = (*stubProductoRepo)(nil)
	_ repository.AtributoRepository             = (*stubAtributoRepo)(nil)
	_ repository.ComboRepository                = (*stubComboRepo)(nil)
	_ repository.SucursalRepository             = (*stubSucursalRepo)(nil)
	_ repository.VentaRepository                = (*stubVentaRepo)(nil)
)

var guatemala = time.FixedZone("CST", -6*3600)

func relojFijo(t time.Time) Clock {
	return Clock{Loc: guatemala, Now: func() time.Time { return t }}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

// ── Materias primas / movimientos ─────────────────────────────────────────────

type stubMateriaPrimaRepo struct {
	materias map[uuid.UUID]*model.MateriaPrima
}

func newStubMateriaPrimaRepo() *stubMateriaPrimaRepo {
	return &stubMateriaPrimaRepo{materias: make(map[uuid.UUID]*model.MateriaPrima)}
}

func (r *stubMateriaPrimaRepo) seed(m model.MateriaPrima) *model.MateriaPrima {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Activo = true
	r.materias[m.ID] = &m
	return &m
}

func (r *stubMateriaPrimaRepo) CrearTx(_ *gorm.DB, m *model.MateriaPrima) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	r.materias[m.ID] = &cp
	return nil
}

func (r *stubMateriaPrimaRepo) Listar(_ context.Context) ([]model.MateriaPrima, error) {
	out := make([]model.MateriaPrima, 0, len(r.materias))
	for _, m := range r.materias {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubMateriaPrimaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.MateriaPrima, error) {
	m, ok := r.materias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *stubMateriaPrimaRepo) Actualizar(_ context.Context, m *model.MateriaPrima) error {
	actual, ok := r.materias[m.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	actual.Categoria = m.Categoria
	actual.Nombre = m.Nombre
	actual.UnidadMedida = m.UnidadMedida
	actual.StockMinimo = m.StockMinimo
	actual.PuntoCritico = m.PuntoCritico
	return nil
}

func (r *stubMateriaPrimaRepo) ObtenerParaActualizarTx(_ *gorm.DB, id uuid.UUID) (*model.MateriaPrima, error) {
	return r.ObtenerPorID(context.Background(), id)
}

func (r *stubMateriaPrimaRepo) GuardarStockTx(_ *gorm.DB, m *model.MateriaPrima) error {
	actual, ok := r.materias[m.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	actual.StockActual = m.StockActual
	actual.CostoPromedio = m.CostoPromedio
	return nil
}

func (r *stubMateriaPrimaRepo) ListarAlertas(_ context.Context) ([]model.MateriaPrima, error) {
	var out []model.MateriaPrima
	for _, m := range r.materias {
		if m.StockActual.LessThanOrEqual(m.StockMinimo) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockActual.LessThan(out[j].StockActual) })
	return out, nil
}

func (r *stubMateriaPrimaRepo) DB() *gorm.DB { return nil }

type stubMovimientoRepo struct {
	movimientos []model.MovimientoInventario
	mermaMes    decimal.Decimal
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	m.ID = uuid.New()
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) List(_ context.Context, f repository.MovimientoInventarioFilter) ([]model.MovimientoInventario, error) {
	var out []model.MovimientoInventario
	for _, m := range r.movimientos {
		if f.MateriaPrimaID != nil && m.MateriaPrimaID != *f.MateriaPrimaID {
			continue
		}
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *stubMovimientoRepo) SumCosto(_ context.Context, tipo string, _, _ time.Time) (decimal.Decimal, error) {
	if tipo == model.MovimientoMerma {
		return r.mermaMes, nil
	}
	return decimal.Zero, nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (r *stubCategoriaRepo) seed(nombre string) *model.Categoria {
	c := &model.Categoria{ID: uuid.New(), Nombre: nombre, Activo: true}
	r.categorias[c.ID] = c
	return c
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	c.ID = uuid.New()
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range r.categorias {
		if c.Activo {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok || !c.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	r.categorias[id].Activo = false
	return nil
}

type stubProductoRepo struct {
	productos      map[uuid.UUID]*model.Producto
	presentaciones map[uuid.UUID]*model.Presentacion
	codigos        map[string]bool
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:      make(map[uuid.UUID]*model.Producto),
		presentaciones: make(map[uuid.UUID]*model.Presentacion),
		codigos:        make(map[string]bool),
	}
}

// seedPresentacion registers a product with one presentation at precio.
func (r *stubProductoRepo) seedPresentacion(cat *model.Categoria, producto, nombre, precio string) *model.Presentacion {
	p := &model.Producto{ID: uuid.New(), CategoriaID: cat.ID, Nombre: producto, Activo: true, Categoria: cat}
	r.productos[p.ID] = p
	pr := &model.Presentacion{ID: uuid.New(), ProductoID: p.ID, Nombre: nombre, Cantidad: 1, Precio: dec(precio), Activo: true, Producto: p}
	r.presentaciones[pr.ID] = pr
	return pr
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.Codigo != nil {
		if r.codigos[*p.Codigo] {
			return repository.ErrDuplicado
		}
		r.codigos[*p.Codigo] = true
	}
	p.ID = uuid.New()
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || !p.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.productos[id].Activo = false
	return nil
}

func (r *stubProductoRepo) CreatePresentacion(_ context.Context, p *model.Presentacion) error {
	p.ID = uuid.New()
	r.presentaciones[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindPresentacion(_ context.Context, id uuid.UUID) (*model.Presentacion, error) {
	p, ok := r.presentaciones[id]
	if !ok || !p.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) UpdatePresentacion(_ context.Context, p *model.Presentacion) error {
	r.presentaciones[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDeletePresentacion(_ context.Context, id uuid.UUID) error {
	r.presentaciones[id].Activo = false
	return nil
}

type stubAtributoRepo struct {
	atributos map[uuid.UUID]*model.Atributo
	opciones  map[uuid.UUID]*model.AtributoOpcion
}

func newStubAtributoRepo() *stubAtributoRepo {
	return &stubAtributoRepo{
		atributos: make(map[uuid.UUID]*model.Atributo),
		opciones:  make(map[uuid.UUID]*model.AtributoOpcion),
	}
}

func (r *stubAtributoRepo) seedOpcion(nombre, precioExtra string) *model.AtributoOpcion {
	o := &model.AtributoOpcion{ID: uuid.New(), AtributoID: uuid.New(), Nombre: nombre, Codigo: nombre, PrecioExtra: dec(precioExtra), Activo: true}
	r.opciones[o.ID] = o
	return o
}

func (r *stubAtributoRepo) Crear(_ context.Context, a *model.Atributo) error {
	for _, existente := range r.atributos {
		if existente.CategoriaID == a.CategoriaID && existente.Codigo == a.Codigo {
			return repository.ErrDuplicado
		}
	}
	a.ID = uuid.New()
	r.atributos[a.ID] = a
	return nil
}

func (r *stubAtributoRepo) ListarPorCategoria(_ context.Context, categoriaID uuid.UUID) ([]model.Atributo, error) {
	var out []model.Atributo
	for _, a := range r.atributos {
		if a.CategoriaID == categoriaID && a.Activo {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (r *stubAtributoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Atributo, error) {
	a, ok := r.atributos[id]
	if !ok || !a.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAtributoRepo) Actualizar(_ context.Context, a *model.Atributo) error {
	r.atributos[a.ID] = a
	return nil
}

func (r *stubAtributoRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	r.atributos[id].Activo = false
	return nil
}

func (r *stubAtributoRepo) CrearOpcion(_ context.Context, o *model.AtributoOpcion) error {
	o.ID = uuid.New()
	r.opciones[o.ID] = o
	return nil
}

func (r *stubAtributoRepo) ObtenerOpcion(_ context.Context, id uuid.UUID) (*model.AtributoOpcion, error) {
	o, ok := r.opciones[id]
	if !ok || !o.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubAtributoRepo) ActualizarOpcion(_ context.Context, o *model.AtributoOpcion) error {
	r.opciones[o.ID] = o
	return nil
}

func (r *stubAtributoRepo) DesactivarOpcion(_ context.Context, id uuid.UUID) error {
	r.opciones[id].Activo = false
	return nil
}

type stubComboRepo struct {
	combos map[uuid.UUID]*model.Combo
}

func newStubComboRepo() *stubComboRepo {
	return &stubComboRepo{combos: make(map[uuid.UUID]*model.Combo)}
}

func (r *stubComboRepo) seed(c model.Combo) *model.Combo {
	c.ID = uuid.New()
	c.Activo = true
	r.combos[c.ID] = &c
	return &c
}

func (r *stubComboRepo) Create(_ context.Context, c *model.Combo) error {
	c.ID = uuid.New()
	r.combos[c.ID] = c
	return nil
}

func (r *stubComboRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Combo, error) {
	c, ok := r.combos[id]
	if !ok || !c.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubComboRepo) List(_ context.Context) ([]model.Combo, error) {
	var out []model.Combo
	for _, c := range r.combos {
		if c.Activo {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubComboRepo) Update(_ context.Context, c *model.Combo) error {
	r.combos[c.ID] = c
	return nil
}

func (r *stubComboRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.combos[id].Activo = false
	return nil
}

// ── Sucursales / ventas ───────────────────────────────────────────────────────

type stubSucursalRepo struct {
	sucursales map[uuid.UUID]*model.Sucursal
}

func newStubSucursalRepo() *stubSucursalRepo {
	return &stubSucursalRepo{sucursales: make(map[uuid.UUID]*model.Sucursal)}
}

func (r *stubSucursalRepo) seed(nombre string) *model.Sucursal {
	s := &model.Sucursal{ID: uuid.New(), Nombre: nombre, Activo: true}
	r.sucursales[s.ID] = s
	return s
}

func (r *stubSucursalRepo) Crear(_ context.Context, s *model.Sucursal) error {
	s.ID = uuid.New()
	r.sucursales[s.ID] = s
	return nil
}

func (r *stubSucursalRepo) Listar(_ context.Context) ([]model.Sucursal, error) {
	var out []model.Sucursal
	for _, s := range r.sucursales {
		if s.Activo {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubSucursalRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Sucursal, error) {
	s, ok := r.sucursales[id]
	if !ok || !s.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSucursalRepo) Actualizar(_ context.Context, s *model.Sucursal) error {
	r.sucursales[s.ID] = s
	return nil
}

func (r *stubSucursalRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	r.sucursales[id].Activo = false
	return nil
}

type stubVentaRepo struct {
	ventas     map[uuid.UUID]*model.Venta
	secuencias map[string]int
	updates    int

	// Dashboard fixtures.
	resumenHoy    decimal.Decimal
	conteoHoy     int64
	resumenMes    decimal.Decimal
	conteoMes     int64
	items         []model.VentaItem
	rangoPedido   [2]time.Time
	sucursalVista *uuid.UUID
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{
		ventas:     make(map[uuid.UUID]*model.Venta),
		secuencias: make(map[string]int),
	}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if err := validarItems(v.Items); err != nil {
		return err
	}
	v.ID = uuid.New()
	for i := range v.Items {
		v.Items[i].ID = uuid.New()
		v.Items[i].VentaID = v.ID
	}
	cp := *v
	r.ventas[v.ID] = &cp
	return nil
}

func validarItems(items []model.VentaItem) error {
	for i := range items {
		if err := items[i].BeforeSave(nil); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubVentaRepo) SiguienteNumero(_ context.Context, _ *gorm.DB, dia time.Time) (int, error) {
	key := dia.Format(formatoDia)
	r.secuencias[key]++
	return r.secuencias[key], nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *stubVentaRepo) List(_ context.Context, f repository.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if f.SucursalID != nil && v.SucursalID != *f.SucursalID {
			continue
		}
		if f.Estado != "" && v.Estado != f.Estado {
			continue
		}
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo > out[j].Codigo })
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	r.updates++
	return nil
}

func (r *stubVentaRepo) Resumen(_ context.Context, sucursalID *uuid.UUID, desde, hasta time.Time) (decimal.Decimal, int64, error) {
	r.sucursalVista = sucursalID
	if hasta.Sub(desde) <= 24*time.Hour {
		return r.resumenHoy, r.conteoHoy, nil
	}
	return r.resumenMes, r.conteoMes, nil
}

func (r *stubVentaRepo) ItemsVendidos(_ context.Context, _ *uuid.UUID, desde, hasta time.Time) ([]model.VentaItem, error) {
	r.rangoPedido = [2]time.Time{desde, hasta}
	return r.items, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

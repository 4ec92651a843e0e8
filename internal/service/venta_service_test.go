package service

import (
	"context"
	"testing"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ventaFixture struct {
	svc        VentaService
	ventas     *stubVentaRepo
	sucursales *stubSucursalRepo
	productos  *stubProductoRepo
	atributos  *stubAtributoRepo
	combos     *stubComboRepo
	categoria  *model.Categoria
	sucursal   *model.Sucursal
}

// 2025-03-14 15:30 in Guatemala.
var ahoraVenta = time.Date(2025, 3, 14, 15, 30, 0, 0, guatemala)

func newVentaFixture() *ventaFixture {
	f := &ventaFixture{
		ventas:     newStubVentaRepo(),
		sucursales: newStubSucursalRepo(),
		productos:  newStubProductoRepo(),
		atributos:  newStubAtributoRepo(),
		combos:     newStubComboRepo(),
	}
	f.categoria = newStubCategoriaRepo().seed("Tamales")
	f.sucursal = f.sucursales.seed("Zona 1")
	f.svc = NewVentaService(f.ventas, f.sucursales, f.productos, f.atributos, f.combos, relojFijo(ahoraVenta))
	return f
}

func itemPresentacion(id uuid.UUID, cantidad int) dto.ItemVentaRequest {
	s := id.String()
	return dto.ItemVentaRequest{PresentacionID: &s, Cantidad: cantidad}
}

func itemCombo(id uuid.UUID, cantidad int) dto.ItemVentaRequest {
	s := id.String()
	return dto.ItemVentaRequest{ComboID: &s, Cantidad: cantidad}
}

func (f *ventaFixture) vender(items ...dto.ItemVentaRequest) (*dto.VentaResponse, error) {
	return f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		SucursalID: f.sucursal.ID.String(),
		Items:      items,
	})
}

func TestRegistrarVenta_TotalConDescuento(t *testing.T) {
	f := newVentaFixture()
	docena := f.productos.seedPresentacion(f.categoria, "Tamal colorado", "Docena", "36")

	resp, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		SucursalID: f.sucursal.ID.String(),
		Descuento:  dec("5"),
		Items:      []dto.ItemVentaRequest{itemPresentacion(docena.ID, 1)},
	})
	require.NoError(t, err)

	assert.True(t, dec("36").Equal(resp.Subtotal))
	assert.True(t, dec("5").Equal(resp.Descuento))
	assert.True(t, dec("31").Equal(resp.Total))
	assert.Equal(t, model.VentaCompletada, resp.Estado)
	assert.Equal(t, "Zona 1", resp.Sucursal)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Tamal colorado - Docena", resp.Items[0].Descripcion)
	assert.Equal(t, model.ItemProducto, resp.Items[0].TipoItem)
}

func TestRegistrarVenta_CodigoDiarioSecuencial(t *testing.T) {
	f := newVentaFixture()
	unidad := f.productos.seedPresentacion(f.categoria, "Tamal negro", "Unidad", "8")

	primera, err := f.vender(itemPresentacion(unidad.ID, 1))
	require.NoError(t, err)
	segunda, err := f.vender(itemPresentacion(unidad.ID, 2))
	require.NoError(t, err)

	assert.Equal(t, "V-20250314-0001", primera.Codigo)
	assert.Equal(t, "V-20250314-0002", segunda.Codigo)
	assert.True(t, dec("16").Equal(segunda.Total))
}

func TestRegistrarVenta_PersonalizacionSumaExtras(t *testing.T) {
	f := newVentaFixture()
	unidad := f.productos.seedPresentacion(f.categoria, "Tamal colorado", "Unidad", "10")
	loroco := f.atributos.seedOpcion("Loroco", "2.50")
	picante := f.atributos.seedOpcion("Con chile", "0")

	item := itemPresentacion(unidad.ID, 3)
	item.Personalizacion = map[string]string{
		"relleno": loroco.ID.String(),
		"picante": picante.ID.String(),
	}
	resp, err := f.vender(item)
	require.NoError(t, err)

	linea := resp.Items[0]
	assert.True(t, dec("2.5").Equal(linea.PrecioExtras))
	assert.True(t, dec("37.5").Equal(linea.Subtotal))
	require.Contains(t, linea.Personalizacion, "relleno")
	assert.Equal(t, "Loroco", linea.Personalizacion["relleno"].Nombre)
	assert.Equal(t, "Con chile", linea.Personalizacion["picante"].Nombre)
}

func TestRegistrarVenta_OpcionObsoletaSeIgnora(t *testing.T) {
	f := newVentaFixture()
	unidad := f.productos.seedPresentacion(f.categoria, "Tamal colorado", "Unidad", "10")
	vigente := f.atributos.seedOpcion("Chipilín", "1")

	item := itemPresentacion(unidad.ID, 1)
	item.Personalizacion = map[string]string{
		"relleno": vigente.ID.String(),
		"masa":    uuid.NewString(),
		"picante": "basura",
	}
	resp, err := f.vender(item)
	require.NoError(t, err)

	linea := resp.Items[0]
	assert.Len(t, linea.Personalizacion, 1)
	assert.True(t, dec("11").Equal(linea.Subtotal))
}

func TestRegistrarVenta_Combo(t *testing.T) {
	f := newVentaFixture()
	combo := f.combos.seed(model.Combo{Nombre: "Combo familiar", Precio: dec("95"), Tipo: model.ComboFijo})

	resp, err := f.vender(itemCombo(combo.ID, 2))
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, model.ItemCombo, resp.Items[0].TipoItem)
	assert.Equal(t, "Combo familiar", resp.Items[0].Descripcion)
	assert.Nil(t, resp.Items[0].PresentacionID)
	assert.True(t, dec("190").Equal(resp.Total))
}

func TestRegistrarVenta_ComboFueraDeTemporada(t *testing.T) {
	f := newVentaFixture()
	inicio := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	navideno := f.combos.seed(model.Combo{
		Nombre: "Combo navideño", Precio: dec("120"), Tipo: model.ComboEstacional,
		FechaInicio: &inicio, FechaFin: &fin,
	})

	_, err := f.vender(itemCombo(navideno.ID, 1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorContains(t, err, "no está vigente")
	assert.Empty(t, f.ventas.ventas)
}

func TestRegistrarVenta_ItemsInvalidos(t *testing.T) {
	f := newVentaFixture()
	unidad := f.productos.seedPresentacion(f.categoria, "Tamal", "Unidad", "8")
	combo := f.combos.seed(model.Combo{Nombre: "Combo", Precio: dec("20"), Tipo: model.ComboFijo})

	ambos := itemPresentacion(unidad.ID, 1)
	ambos.ComboID = itemCombo(combo.ID, 1).ComboID

	cases := []struct {
		name string
		item dto.ItemVentaRequest
		kind error
	}{
		{"sin referencia", dto.ItemVentaRequest{Cantidad: 1}, ErrInvalidArgument},
		{"ambas referencias", ambos, ErrInvalidArgument},
		{"cantidad cero", itemPresentacion(unidad.ID, 0), ErrInvalidArgument},
		{"presentación inexistente", itemPresentacion(uuid.New(), 1), ErrNotFound},
		{"combo inexistente", itemCombo(uuid.New(), 1), ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.vender(tc.item)
			assert.ErrorIs(t, err, tc.kind)
		})
	}
	assert.Empty(t, f.ventas.ventas)
}

func TestRegistrarVenta_Validaciones(t *testing.T) {
	f := newVentaFixture()
	unidad := f.productos.seedPresentacion(f.categoria, "Tamal", "Unidad", "8")

	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		SucursalID: f.sucursal.ID.String(),
	})
	assert.ErrorIs(t, err, ErrInvalidArgument, "venta sin items")

	_, err = f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		SucursalID: uuid.NewString(),
		Items:      []dto.ItemVentaRequest{itemPresentacion(unidad.ID, 1)},
	})
	assert.ErrorIs(t, err, ErrNotFound, "sucursal inexistente")

	_, err = f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		SucursalID: f.sucursal.ID.String(),
		Descuento:  dec("8.01"),
		Items:      []dto.ItemVentaRequest{itemPresentacion(unidad.ID, 1)},
	})
	assert.ErrorIs(t, err, ErrInvalidArgument, "descuento mayor al subtotal")

	resp, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		SucursalID: f.sucursal.ID.String(),
		Descuento:  dec("8"),
		Items:      []dto.ItemVentaRequest{itemPresentacion(unidad.ID, 1)},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.IsZero())
}

func TestAnularVenta_Idempotente(t *testing.T) {
	f := newVentaFixture()
	unidad := f.productos.seedPresentacion(f.categoria, "Tamal", "Unidad", "8")
	venta, err := f.vender(itemPresentacion(unidad.ID, 1))
	require.NoError(t, err)

	anulada, err := f.svc.AnularVenta(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VentaAnulada, anulada.Estado)

	otra, err := f.svc.AnularVenta(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VentaAnulada, otra.Estado)
	assert.Equal(t, 1, f.ventas.updates)

	_, err = f.svc.AnularVenta(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListVentas_FiltroEstado(t *testing.T) {
	f := newVentaFixture()
	unidad := f.productos.seedPresentacion(f.categoria, "Tamal", "Unidad", "8")
	v1, err := f.vender(itemPresentacion(unidad.ID, 1))
	require.NoError(t, err)
	_, err = f.vender(itemPresentacion(unidad.ID, 1))
	require.NoError(t, err)
	_, err = f.svc.AnularVenta(context.Background(), v1.ID)
	require.NoError(t, err)

	list, err := f.svc.ListVentas(context.Background(), dto.VentaFilter{Estado: "anulada"})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, v1.Codigo, list.Data[0].Codigo)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 50, list.Limit)

	_, err = f.svc.ListVentas(context.Background(), dto.VentaFilter{Estado: "PENDIENTE"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = f.svc.ListVentas(context.Background(), dto.VentaFilter{Desde: "14-03-2025"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

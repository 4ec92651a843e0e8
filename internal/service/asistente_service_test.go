package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompletion struct {
	respuesta string
	err       error
	sistema   string
	usuario   string
	llamadas  int
}

func (f *fakeCompletion) Completar(_ context.Context, sistema, usuario string) (string, error) {
	f.llamadas++
	f.sistema, f.usuario = sistema, usuario
	return f.respuesta, f.err
}

type stubCatalogo struct {
	CatalogoService
	resp *dto.CatalogoResponse
	err  error
}

func (s stubCatalogo) ObtenerCatalogo(context.Context) (*dto.CatalogoResponse, error) {
	return s.resp, s.err
}

type stubDashboard struct {
	resp   *dto.DashboardResponse
	filtro dto.DashboardFilter
}

func (s *stubDashboard) ObtenerDashboard(_ context.Context, f dto.DashboardFilter) (*dto.DashboardResponse, error) {
	s.filtro = f
	return s.resp, nil
}

func catalogoDePrueba() *dto.CatalogoResponse {
	return &dto.CatalogoResponse{
		Categorias: []dto.CategoriaResponse{{
			Nombre: "Tamales",
			Productos: []dto.ProductoResponse{{
				Nombre: "Tamal colorado",
				Presentaciones: []dto.PresentacionResponse{
					{Nombre: "Unidad", Precio: dec("8")},
					{Nombre: "Docena", Precio: dec("90")},
				},
			}},
			Atributos: []dto.AtributoResponse{{
				Nombre: "Relleno",
				Opciones: []dto.OpcionResponse{
					{Nombre: "Recado"},
					{Nombre: "Loroco", PrecioExtra: dec("2.5")},
				},
			}},
		}},
		Combos: []dto.ComboResponse{{Nombre: "Combo familiar", Precio: dec("120"), Descripcion: strPtr("12 tamales y 4 atoles")}},
	}
}

func TestChat_IncluyeMenuYContexto(t *testing.T) {
	llm := &fakeCompletion{respuesta: "¡Te recomiendo el tamal colorado!"}
	svc := NewAsistenteService(llm, stubCatalogo{resp: catalogoDePrueba()}, &stubDashboard{}, "La Cazuela Chapina")

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{
		Mensaje:  "¿Qué me recomiendan?",
		Contexto: strPtr("Es mi primera visita"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Exito)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "¡Te recomiendo el tamal colorado!", resp.Respuesta)

	assert.Contains(t, llm.sistema, "'La Cazuela Chapina'")
	assert.Contains(t, llm.sistema, "- TAMALES:")
	assert.Contains(t, llm.sistema, "Tamal colorado: Unidad (Q8.00), Docena (Q90.00)")
	assert.Contains(t, llm.sistema, "Relleno: Recado, Loroco (+Q2.50)")
	assert.Contains(t, llm.sistema, "Combo familiar (Q120.00): 12 tamales y 4 atoles")
	assert.Equal(t, "Es mi primera visita\n\nPregunta del cliente: ¿Qué me recomiendan?", llm.usuario)
}

func TestChat_FalloDelProveedor(t *testing.T) {
	llm := &fakeCompletion{err: errors.New("circuit breaker open")}
	svc := NewAsistenteService(llm, stubCatalogo{resp: catalogoDePrueba()}, &stubDashboard{}, "La Cazuela Chapina")

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Mensaje: "Hola"})
	require.NoError(t, err)
	assert.False(t, resp.Exito)
	assert.Equal(t, respuestaFallback, resp.Respuesta)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "circuit breaker open", *resp.Error)
	assert.Equal(t, "Hola", llm.usuario)
}

func TestChat_CatalogoNoDisponible(t *testing.T) {
	llm := &fakeCompletion{respuesta: "ok"}
	svc := NewAsistenteService(llm, stubCatalogo{err: errors.New("db caída")}, &stubDashboard{}, "La Cazuela Chapina")

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Mensaje: "Hola"})
	require.NoError(t, err)
	assert.True(t, resp.Exito)
	assert.Contains(t, llm.sistema, "La Cazuela Chapina")
	assert.NotContains(t, llm.sistema, "Conoces el menú")
}

func TestAsistente_EntradaVacia(t *testing.T) {
	llm := &fakeCompletion{}
	svc := NewAsistenteService(llm, stubCatalogo{resp: catalogoDePrueba()}, &stubDashboard{}, "La Cazuela Chapina")

	_, err := svc.Chat(context.Background(), dto.ChatRequest{Mensaje: "   "})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.SugerirCombo(context.Background(), dto.SugerirComboRequest{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, llm.llamadas)
}

func TestSugerirCombo(t *testing.T) {
	llm := &fakeCompletion{respuesta: "Combo de 6 tamales"}
	svc := NewAsistenteService(llm, stubCatalogo{resp: catalogoDePrueba()}, &stubDashboard{}, "La Cazuela Chapina")

	resp, err := svc.SugerirCombo(context.Background(), dto.SugerirComboRequest{Descripcion: "para 3 personas"})
	require.NoError(t, err)
	assert.True(t, resp.Exito)
	assert.Contains(t, llm.usuario, "combo personalizado")
	assert.Contains(t, llm.usuario, "Pregunta del cliente: Basándote en esta descripción")
	assert.Contains(t, llm.usuario, "para 3 personas")
}

func TestAnalizarVentas_EnviaDatosDelDashboard(t *testing.T) {
	llm := &fakeCompletion{respuesta: "Las ventas van bien"}
	dash := &stubDashboard{resp: &dto.DashboardResponse{
		VentasHoy:      dec("150"),
		TotalVentasHoy: 4,
		VentasMes:      dec("2300.5"),
		TotalVentasMes: 61,
		ProductosMasVendidos: []dto.ProductoVendidoResponse{
			{Producto: "Tamal negro", Presentacion: "Unidad", CantidadVendida: 6, TotalVendido: dec("66")},
		},
		ProporcionPicante: dto.ProporcionPicanteResponse{ConPicante: 5, SinPicante: 7, PorcentajeConPicante: dec("41.67")},
		UtilidadesPorLinea: []dto.UtilidadLineaResponse{
			{Linea: "Tamales", Ventas: dec("126"), MargenPorcentaje: dec("60")},
		},
		DesperdicioMes: dec("42.75"),
		Alertas:        []dto.AlertaStockResponse{{Nombre: "Masa", Nivel: model.AlertaCritico}},
	}}
	svc := NewAsistenteService(llm, stubCatalogo{resp: catalogoDePrueba()}, dash, "La Cazuela Chapina")
	sucursal := uuid.NewString()

	resp, err := svc.AnalizarVentas(context.Background(), sucursal)
	require.NoError(t, err)
	assert.True(t, resp.Exito)
	assert.Equal(t, sucursal, dash.filtro.SucursalID)

	assert.Contains(t, llm.usuario, "Ventas de Hoy: Q150.00 (4 ventas)")
	assert.Contains(t, llm.usuario, "Ventas del Mes: Q2300.50 (61 ventas)")
	assert.Contains(t, llm.usuario, "- Tamal negro (Unidad): 6 unidades, Q66.00")
	assert.Contains(t, llm.usuario, "5 con picante, 7 sin picante (41.67% con picante)")
	assert.Contains(t, llm.usuario, "- Tamales: Ventas Q126.00, Margen 60%")
	assert.Contains(t, llm.usuario, "Desperdicio del Mes: Q42.75")
	assert.Contains(t, llm.usuario, "Alertas de Inventario: 1 productos")
	assert.Contains(t, llm.usuario, "Pregunta del cliente: Analiza estos datos de ventas")
}

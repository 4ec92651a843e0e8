package service

import (
	"context"
	"strings"
	"text/template"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CompletionClient is the text-completion provider behind the assistant.
type CompletionClient interface {
	Completar(ctx context.Context, sistema, usuario string) (string, error)
}

// AsistenteService answers customer and staff questions through an LLM.
// Provider failures come back as Exito=false with a fallback text, never as
// an error; errors are reserved for bad input and failed local reads.
type AsistenteService interface {
	Chat(ctx context.Context, req dto.ChatRequest) (*dto.AsistenteResponse, error)
	SugerirCombo(ctx context.Context, req dto.SugerirComboRequest) (*dto.AsistenteResponse, error)
	AnalizarVentas(ctx context.Context, sucursalID string) (*dto.AsistenteResponse, error)
}

type asistenteService struct {
	llm       CompletionClient
	catalogo  CatalogoService
	dashboard DashboardService
	negocio   string
}

func NewAsistenteService(llm CompletionClient, catalogo CatalogoService, dashboard DashboardService, negocio string) AsistenteService {
	return &asistenteService{llm: llm, catalogo: catalogo, dashboard: dashboard, negocio: negocio}
}

const respuestaFallback = "Lo siento, hubo un problema al procesar tu solicitud. ¿Podés intentar de nuevo?"

var promptSistema = template.Must(template.New("sistema").Parse(
	`Eres un asistente virtual de '{{.Negocio}}', un negocio guatemalteco de tamales y bebidas artesanales.
{{if .Categorias}}
Conoces el menú:
{{range .Categorias}}- {{.Nombre}}:
{{range .Productos}}  * {{.}}
{{end}}{{range .Atributos}}  {{.}}
{{end}}{{end}}{{end}}{{if .Combos}}- COMBOS:
{{range .Combos}}  * {{.}}
{{end}}{{end}}
Ayuda a los clientes con sus pedidos, recomendaciones y cualquier consulta sobre el negocio.
Responde siempre en español guatemalteco de forma amigable.`))

var datosVentas = template.Must(template.New("ventas").Parse(
	`Ventas de Hoy: Q{{.VentasHoy.StringFixed 2}} ({{.TotalVentasHoy}} ventas)
Ventas del Mes: Q{{.VentasMes.StringFixed 2}} ({{.TotalVentasMes}} ventas)

Productos más vendidos:
{{range .ProductosMasVendidos}}- {{.Producto}} ({{.Presentacion}}): {{.CantidadVendida}} unidades, Q{{.TotalVendido.StringFixed 2}}
{{end}}
Proporción Picante: {{.ProporcionPicante.ConPicante}} con picante, {{.ProporcionPicante.SinPicante}} sin picante ({{.ProporcionPicante.PorcentajeConPicante}}% con picante)

Utilidades por Línea:
{{range .UtilidadesPorLinea}}- {{.Linea}}: Ventas Q{{.Ventas.StringFixed 2}}, Margen {{.MargenPorcentaje}}%
{{end}}
Desperdicio del Mes: Q{{.DesperdicioMes.StringFixed 2}}

Alertas de Inventario: {{len .Alertas}} productos en nivel bajo/crítico`))

type categoriaPrompt struct {
	Nombre    string
	Productos []string
	Atributos []string
}

type menuPrompt struct {
	Negocio    string
	Categorias []categoriaPrompt
	Combos     []string
}

func (s *asistenteService) Chat(ctx context.Context, req dto.ChatRequest) (*dto.AsistenteResponse, error) {
	if strings.TrimSpace(req.Mensaje) == "" {
		return nil, invalid("el mensaje no puede estar vacío")
	}
	return s.completar(ctx, req.Mensaje, req.Contexto), nil
}

func (s *asistenteService) SugerirCombo(ctx context.Context, req dto.SugerirComboRequest) (*dto.AsistenteResponse, error) {
	if strings.TrimSpace(req.Descripcion) == "" {
		return nil, invalid("la descripción no puede estar vacía")
	}
	contexto := "El cliente quiere crear un combo personalizado. Sugiere cantidades, tipos de tamales, bebidas y un precio justo."
	mensaje := "Basándote en esta descripción, sugiere un combo ideal con tamales y bebidas: " + req.Descripcion
	return s.completar(ctx, mensaje, &contexto), nil
}

func (s *asistenteService) AnalizarVentas(ctx context.Context, sucursalID string) (*dto.AsistenteResponse, error) {
	dash, err := s.dashboard.ObtenerDashboard(ctx, dto.DashboardFilter{SucursalID: sucursalID})
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	if err := datosVentas.Execute(&b, dash); err != nil {
		return nil, err
	}
	contexto := "Datos de ventas del período:\n" + b.String() +
		"\n\nProporciona análisis de tendencias, productos estrella, oportunidades de mejora y recomendaciones."
	return s.completar(ctx, "Analiza estos datos de ventas y dame insights útiles para el negocio.", &contexto), nil
}

func (s *asistenteService) completar(ctx context.Context, mensaje string, contexto *string) *dto.AsistenteResponse {
	usuario := mensaje
	if contexto != nil && strings.TrimSpace(*contexto) != "" {
		usuario = *contexto + "\n\nPregunta del cliente: " + mensaje
	}

	respuesta, err := s.llm.Completar(ctx, s.promptSistema(ctx), usuario)
	if err != nil {
		log.Warn().Err(err).Msg("asistente: fallo del proveedor LLM")
		detalle := err.Error()
		return &dto.AsistenteResponse{Respuesta: respuestaFallback, Exito: false, Error: &detalle}
	}
	return &dto.AsistenteResponse{Respuesta: respuesta, Exito: true}
}

// promptSistema renders the menu into the system prompt. If the catalog cannot
// be read the prompt goes out without it.
func (s *asistenteService) promptSistema(ctx context.Context) string {
	menu := menuPrompt{Negocio: s.negocio}
	if cat, err := s.catalogo.ObtenerCatalogo(ctx); err != nil {
		log.Warn().Err(err).Msg("asistente: catálogo no disponible para el prompt")
	} else {
		menu = armarMenu(s.negocio, cat)
	}
	var b strings.Builder
	if err := promptSistema.Execute(&b, menu); err != nil {
		log.Error().Err(err).Msg("asistente: error al generar el prompt")
	}
	return b.String()
}

func armarMenu(negocio string, cat *dto.CatalogoResponse) menuPrompt {
	menu := menuPrompt{Negocio: negocio}
	for _, c := range cat.Categorias {
		cp := categoriaPrompt{Nombre: strings.ToUpper(c.Nombre)}
		for _, p := range c.Productos {
			precios := make([]string, len(p.Presentaciones))
			for i, pr := range p.Presentaciones {
				precios[i] = pr.Nombre + " (" + quetzales(pr.Precio) + ")"
			}
			cp.Productos = append(cp.Productos, p.Nombre+": "+strings.Join(precios, ", "))
		}
		for _, a := range c.Atributos {
			opciones := make([]string, len(a.Opciones))
			for i, o := range a.Opciones {
				opciones[i] = o.Nombre
				if o.PrecioExtra.IsPositive() {
					opciones[i] += " (+" + quetzales(o.PrecioExtra) + ")"
				}
			}
			cp.Atributos = append(cp.Atributos, a.Nombre+": "+strings.Join(opciones, ", "))
		}
		menu.Categorias = append(menu.Categorias, cp)
	}
	for _, c := range cat.Combos {
		linea := c.Nombre + " (" + quetzales(c.Precio) + ")"
		if c.Descripcion != nil && *c.Descripcion != "" {
			linea += ": " + *c.Descripcion
		}
		menu.Combos = append(menu.Combos, linea)
	}
	return menu
}

func quetzales(d decimal.Decimal) string { return "Q" + d.StringFixed(2) }

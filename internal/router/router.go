package router

import (
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/config"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/handler"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/infra"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/middleware"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, llm *infra.LLMClient) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins()))
	r.Use(middleware.ErrorHandler())

	clock := service.NewClock(cfg.Location)

	// ── Repositories ─────────────────────────────────────────────────────────
	sucursalRepo := repository.NewSucursalRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	atributoRepo := repository.NewAtributoRepository(db)
	comboRepo := repository.NewComboRepository(db)
	materiaPrimaRepo := repository.NewMateriaPrimaRepository(db)
	movimientoRepo := repository.NewMovimientoInventarioRepository(db)
	ventaRepo := repository.NewVentaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	sucursalSvc := service.NewSucursalService(sucursalRepo)
	comboSvc := service.NewComboService(comboRepo, productoRepo, clock)
	catalogoSvc := service.NewCatalogoService(categoriaRepo, productoRepo, atributoRepo, comboSvc)
	inventarioSvc := service.NewInventarioService(materiaPrimaRepo, movimientoRepo, clock)
	ventaSvc := service.NewVentaService(ventaRepo, sucursalRepo, productoRepo, atributoRepo, comboRepo, clock)
	dashboardSvc := service.NewDashboardService(ventaRepo, movimientoRepo, inventarioSvc, reglasDashboard(cfg), clock)
	asistenteSvc := service.NewAsistenteService(llm, catalogoSvc, dashboardSvc, cfg.NegocioNombre)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	combosH := handler.NewCombosHandler(comboSvc)
	sucursalesH := handler.NewSucursalesHandler(sucursalSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, cfg.NegocioNombre)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	asistenteH := handler.NewAsistenteHandler(asistenteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, llm))

	todos := middleware.RequireRole(middleware.RolCajero, middleware.RolSupervisor, middleware.RolAdministrador)
	gestion := middleware.RequireRole(middleware.RolSupervisor, middleware.RolAdministrador)
	admin := middleware.RequireRole(middleware.RolAdministrador)

	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		cat := v1.Group("/catalogo")
		{
			cat.GET("", todos, catalogoH.ObtenerCatalogo)
			cat.GET("/categorias/:id", todos, catalogoH.ObtenerCategoria)
			cat.GET("/categorias/:id/atributos", todos, catalogoH.ListarAtributos)

			cat.POST("/categorias", admin, catalogoH.CrearCategoria)
			cat.PUT("/categorias/:id", admin, catalogoH.ActualizarCategoria)
			cat.DELETE("/categorias/:id", admin, catalogoH.DesactivarCategoria)

			cat.POST("/productos", admin, catalogoH.CrearProducto)
			cat.PUT("/productos/:id", admin, catalogoH.ActualizarProducto)
			cat.DELETE("/productos/:id", admin, catalogoH.DesactivarProducto)

			cat.POST("/presentaciones", admin, catalogoH.CrearPresentacion)
			cat.PUT("/presentaciones/:id", admin, catalogoH.ActualizarPresentacion)
			cat.DELETE("/presentaciones/:id", admin, catalogoH.DesactivarPresentacion)

			cat.POST("/atributos", admin, catalogoH.CrearAtributo)
			cat.PUT("/atributos/:id", admin, catalogoH.ActualizarAtributo)
			cat.DELETE("/atributos/:id", admin, catalogoH.DesactivarAtributo)

			cat.POST("/opciones", admin, catalogoH.CrearOpcion)
			cat.PUT("/opciones/:id", admin, catalogoH.ActualizarOpcion)
			cat.DELETE("/opciones/:id", admin, catalogoH.DesactivarOpcion)
		}

		combos := v1.Group("/combos")
		{
			combos.GET("", todos, combosH.Listar)
			combos.GET("/:id", todos, combosH.Obtener)
			combos.POST("", admin, combosH.Crear)
			combos.PUT("/:id", admin, combosH.Actualizar)
			combos.DELETE("/:id", admin, combosH.Desactivar)
		}

		suc := v1.Group("/sucursales")
		{
			suc.GET("", todos, sucursalesH.Listar)
			suc.GET("/:id", todos, sucursalesH.Obtener)
			suc.POST("", admin, sucursalesH.Crear)
			suc.PUT("/:id", admin, sucursalesH.Actualizar)
			suc.DELETE("/:id", admin, sucursalesH.Desactivar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", todos, ventasH.RegistrarVenta)
			ventas.GET("", todos, ventasH.ListarVentas)
			ventas.GET("/:id", todos, ventasH.ObtenerVenta)
			ventas.GET("/:id/ticket", todos, ventasH.DescargarTicket)
			ventas.POST("/:id/anular", gestion, ventasH.AnularVenta)
		}

		inv := v1.Group("/inventario", gestion)
		{
			inv.GET("/materias-primas", inventarioH.ListarMateriasPrimas)
			inv.POST("/materias-primas", inventarioH.CrearMateriaPrima)
			inv.GET("/materias-primas/:id", inventarioH.ObtenerMateriaPrima)
			inv.PUT("/materias-primas/:id", inventarioH.ActualizarMateriaPrima)
			inv.POST("/movimientos", inventarioH.RegistrarMovimiento)
			inv.GET("/movimientos", inventarioH.ListarMovimientos)
			inv.GET("/alertas", inventarioH.ObtenerAlertas)
		}

		dash := v1.Group("/dashboard", gestion)
		{
			dash.GET("", dashboardH.Obtener)
			dash.GET("/export", dashboardH.Exportar)
		}

		var limiter redis.Cmdable
		if rdb != nil {
			limiter = rdb
		}
		asis := v1.Group("/asistente", todos, middleware.RateLimiter(limiter, "asistente", cfg.AsistenteRateLimit, time.Minute))
		{
			asis.POST("/chat", asistenteH.Chat)
			asis.POST("/sugerir-combo", asistenteH.SugerirCombo)
			asis.GET("/analizar-ventas", asistenteH.AnalizarVentas)
		}
	}

	// Swagger UI: only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

func reglasDashboard(cfg *config.Config) service.ReglasDashboard {
	return service.ReglasDashboard{
		CategoriaBebidas: cfg.DashboardCategoriaBebidas,
		AtributoPicante:  cfg.DashboardAtributoPicante,
		OpcionSinPicante: cfg.DashboardOpcionSinPicante,
		CostoProductos:   decimal.NewFromFloat(cfg.CostoEstimadoProductos),
		CostoCombos:      decimal.NewFromFloat(cfg.CostoEstimadoCombos),
	}
}

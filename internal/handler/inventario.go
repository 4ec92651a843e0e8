package handler

import (
	"net/http"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// CrearMateriaPrima godoc
// @Summary      Crear materia prima
// @Description  Con stock_inicial > 0 se registra una ENTRADA inicial en la misma transacción.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.CrearMateriaPrimaRequest true "Datos de la materia prima"
// @Success      201  {object} dto.MateriaPrimaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/inventario/materias-primas [post]
func (h *InventarioHandler) CrearMateriaPrima(c *gin.Context) {
	var req dto.CrearMateriaPrimaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearMateriaPrima(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarMateriasPrimas godoc
// @Summary      Listar materias primas activas
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.MateriaPrimaResponse
// @Router       /v1/inventario/materias-primas [get]
func (h *InventarioHandler) ListarMateriasPrimas(c *gin.Context) {
	resp, err := h.svc.ListarMateriasPrimas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerMateriaPrima godoc
// @Summary      Obtener materia prima
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string true "UUID de la materia prima"
// @Success      200 {object} dto.MateriaPrimaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/inventario/materias-primas/{id} [get]
func (h *InventarioHandler) ObtenerMateriaPrima(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerMateriaPrima(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarMateriaPrima godoc
// @Summary      Actualizar materia prima
// @Description  Sólo datos descriptivos y umbrales; el stock y el costo cambian únicamente con movimientos.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string                            true "UUID de la materia prima"
// @Param        body body     dto.ActualizarMateriaPrimaRequest true "Campos a modificar"
// @Success      200  {object} dto.MateriaPrimaResponse
// @Router       /v1/inventario/materias-primas/{id} [put]
func (h *InventarioHandler) ActualizarMateriaPrima(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMateriaPrimaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarMateriaPrima(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento de inventario
// @Description  ENTRADA recalcula el costo promedio ponderado; SALIDA y MERMA descuentan stock y fallan con 409 si no alcanza.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.MovimientoRequest true "Movimiento"
// @Success      201  {object} dto.RegistrarMovimientoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/inventario/movimientos [post]
func (h *InventarioHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.MovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMovimiento(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarMovimientos godoc
// @Summary      Listar movimientos de inventario
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        materia_prima_id query    string false "UUID de la materia prima"
// @Param        tipo             query    string false "E | S | M"
// @Param        desde            query    string false "YYYY-MM-DD"
// @Param        hasta            query    string false "YYYY-MM-DD"
// @Param        limit            query    int    false "Máximo de registros (default 100)"
// @Success      200              {array}  dto.MovimientoResponse
// @Router       /v1/inventario/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	var filter dto.MovimientoFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerAlertas godoc
// @Summary      Alertas de stock
// @Description  Materias primas en o por debajo del stock mínimo, con nivel CRITICO o BAJO.
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.AlertaStockResponse
// @Router       /v1/inventario/alertas [get]
func (h *InventarioHandler) ObtenerAlertas(c *gin.Context) {
	resp, err := h.svc.ObtenerAlertas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

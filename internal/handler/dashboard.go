package handler

import (
	"bytes"
	"net/http"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/apierror"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/infra"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/service"

	"github.com/gin-gonic/gin"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Obtener godoc
// @Summary      Indicadores del negocio
// @Description  Ventas de hoy y del mes, más vendidos, bebidas por horario, proporción de picante, utilidades por línea, desperdicio y alertas. Sin fechas se usa el mes en curso.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        sucursal_id query    string false "UUID de la sucursal"
// @Param        desde       query    string false "YYYY-MM-DD"
// @Param        hasta       query    string false "YYYY-MM-DD"
// @Success      200         {object} dto.DashboardResponse
// @Failure      400         {object} apierror.APIError
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Obtener(c *gin.Context) {
	var filter dto.DashboardFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ObtenerDashboard(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exportar godoc
// @Summary      Exportar indicadores a Excel
// @Tags         dashboard
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        sucursal_id query  string false "UUID de la sucursal"
// @Param        desde       query  string false "YYYY-MM-DD"
// @Param        hasta       query  string false "YYYY-MM-DD"
// @Success      200         {file} binary
// @Router       /v1/dashboard/export [get]
func (h *DashboardHandler) Exportar(c *gin.Context) {
	var filter dto.DashboardFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ObtenerDashboard(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := infra.EscribirDashboardXLSX(&buf, resp); err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el archivo"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="dashboard_`+resp.Desde+`_`+resp.Hasta+`.xlsx"`)
	c.Data(http.StatusOK, mimeXLSX, buf.Bytes())
}

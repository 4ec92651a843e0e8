package handler

import (
	"net/http"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/service"

	"github.com/gin-gonic/gin"
)

type AsistenteHandler struct{ svc service.AsistenteService }

func NewAsistenteHandler(svc service.AsistenteService) *AsistenteHandler {
	return &AsistenteHandler{svc: svc}
}

// Chat godoc
// @Summary      Chat con el asistente virtual
// @Description  Si el proveedor falla responde 200 con exito=false y un mensaje de respaldo.
// @Tags         asistente
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.ChatRequest true "Mensaje"
// @Success      200  {object} dto.AsistenteResponse
// @Failure      429  {object} apierror.APIError
// @Router       /v1/asistente/chat [post]
func (h *AsistenteHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Chat(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SugerirCombo godoc
// @Summary      Sugerir un combo
// @Tags         asistente
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.SugerirComboRequest true "Descripción del combo deseado"
// @Success      200  {object} dto.AsistenteResponse
// @Router       /v1/asistente/sugerir-combo [post]
func (h *AsistenteHandler) SugerirCombo(c *gin.Context) {
	var req dto.SugerirComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SugerirCombo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnalizarVentas godoc
// @Summary      Análisis de ventas
// @Description  Envía los indicadores del mes al asistente y devuelve su análisis.
// @Tags         asistente
// @Produce      json
// @Security     BearerAuth
// @Param        sucursal_id query    string false "UUID de la sucursal"
// @Success      200         {object} dto.AsistenteResponse
// @Router       /v1/asistente/analizar-ventas [get]
func (h *AsistenteHandler) AnalizarVentas(c *gin.Context) {
	resp, err := h.svc.AnalizarVentas(c.Request.Context(), c.Query("sucursal_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/service"

	"github.com/gin-gonic/gin"
)

type CombosHandler struct{ svc service.ComboService }

func NewCombosHandler(svc service.ComboService) *CombosHandler { return &CombosHandler{svc: svc} }

// Listar godoc
// @Summary      Listar combos
// @Description  Combos activos. Los estacionales fuera de su vigencia se omiten salvo con todos=true.
// @Tags         combos
// @Produce      json
// @Security     BearerAuth
// @Param        todos query    bool false "Incluir estacionales fuera de vigencia"
// @Success      200   {array}  dto.ComboResponse
// @Router       /v1/combos [get]
func (h *CombosHandler) Listar(c *gin.Context) {
	var filter dto.ComboFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarCombos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener combo
// @Description  Devuelve el combo aunque esté fuera de su vigencia.
// @Tags         combos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string true "UUID del combo"
// @Success      200 {object} dto.ComboResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/combos/{id} [get]
func (h *CombosHandler) Obtener(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerCombo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Crear combo
// @Tags         combos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.ComboRequest true "Datos del combo"
// @Success      201  {object} dto.ComboResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/combos [post]
func (h *CombosHandler) Crear(c *gin.Context) {
	var req dto.ComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCombo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Actualizar combo
// @Description  Reemplaza los datos y los items del combo.
// @Tags         combos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string           true "UUID del combo"
// @Param        body body     dto.ComboRequest true "Datos del combo"
// @Success      200  {object} dto.ComboResponse
// @Router       /v1/combos/{id} [put]
func (h *CombosHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarCombo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar combo
// @Tags         combos
// @Security     BearerAuth
// @Param        id path string true "UUID del combo"
// @Success      204
// @Router       /v1/combos/{id} [delete]
func (h *CombosHandler) Desactivar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarCombo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

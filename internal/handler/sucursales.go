package handler

import (
	"net/http"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/service"

	"github.com/gin-gonic/gin"
)

type SucursalesHandler struct{ svc service.SucursalService }

func NewSucursalesHandler(svc service.SucursalService) *SucursalesHandler {
	return &SucursalesHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar sucursales activas
// @Tags         sucursales
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.SucursalResponse
// @Router       /v1/sucursales [get]
func (h *SucursalesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener sucursal
// @Tags         sucursales
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string true "UUID de la sucursal"
// @Success      200 {object} dto.SucursalResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sucursales/{id} [get]
func (h *SucursalesHandler) Obtener(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Crear sucursal
// @Tags         sucursales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.CrearSucursalRequest true "Datos de la sucursal"
// @Success      201  {object} dto.SucursalResponse
// @Router       /v1/sucursales [post]
func (h *SucursalesHandler) Crear(c *gin.Context) {
	var req dto.CrearSucursalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Actualizar sucursal
// @Tags         sucursales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string                        true "UUID de la sucursal"
// @Param        body body     dto.ActualizarSucursalRequest true "Campos a modificar"
// @Success      200  {object} dto.SucursalResponse
// @Router       /v1/sucursales/{id} [put]
func (h *SucursalesHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarSucursalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar sucursal
// @Tags         sucursales
// @Security     BearerAuth
// @Param        id path string true "UUID de la sucursal"
// @Success      204
// @Router       /v1/sucursales/{id} [delete]
func (h *SucursalesHandler) Desactivar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// ObtenerCatalogo godoc
// @Summary      Catálogo completo
// @Description  Categorías activas con sus productos, presentaciones, atributos y opciones, más los combos vigentes hoy.
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.CatalogoResponse
// @Router       /v1/catalogo [get]
func (h *CatalogoHandler) ObtenerCatalogo(c *gin.Context) {
	resp, err := h.svc.ObtenerCatalogo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerCategoria godoc
// @Summary      Obtener categoría
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string true "UUID de la categoría"
// @Success      200 {object} dto.CategoriaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/catalogo/categorias/{id} [get]
func (h *CatalogoHandler) ObtenerCategoria(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerCategoria(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarAtributos godoc
// @Summary      Atributos de una categoría
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string true "UUID de la categoría"
// @Success      200 {array}  dto.AtributoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/catalogo/categorias/{id}/atributos [get]
func (h *CatalogoHandler) ListarAtributos(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarAtributos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Categorias ────────────────────────────────────────────────────────────────

// CrearCategoria godoc
// @Summary      Crear categoría
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.CrearCategoriaRequest true "Datos de la categoría"
// @Success      201  {object} dto.CategoriaResponse
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/catalogo/categorias [post]
func (h *CatalogoHandler) CrearCategoria(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCategoria(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarCategoria godoc
// @Summary      Actualizar categoría
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string                         true "UUID de la categoría"
// @Param        body body     dto.ActualizarCategoriaRequest true "Campos a modificar"
// @Success      200  {object} dto.CategoriaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/catalogo/categorias/{id} [put]
func (h *CatalogoHandler) ActualizarCategoria(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarCategoria(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesactivarCategoria godoc
// @Summary      Desactivar categoría
// @Tags         catalogo
// @Security     BearerAuth
// @Param        id path string true "UUID de la categoría"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/catalogo/categorias/{id} [delete]
func (h *CatalogoHandler) DesactivarCategoria(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarCategoria(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CrearProducto godoc
// @Summary      Crear producto
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.CrearProductoRequest true "Datos del producto"
// @Success      201  {object} dto.ProductoResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/catalogo/productos [post]
func (h *CatalogoHandler) CrearProducto(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearProducto(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarProducto godoc
// @Summary      Actualizar producto
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string                        true "UUID del producto"
// @Param        body body     dto.ActualizarProductoRequest true "Campos a modificar"
// @Success      200  {object} dto.ProductoResponse
// @Router       /v1/catalogo/productos/{id} [put]
func (h *CatalogoHandler) ActualizarProducto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarProducto(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesactivarProducto godoc
// @Summary      Desactivar producto
// @Tags         catalogo
// @Security     BearerAuth
// @Param        id path string true "UUID del producto"
// @Success      204
// @Router       /v1/catalogo/productos/{id} [delete]
func (h *CatalogoHandler) DesactivarProducto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarProducto(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Presentaciones ────────────────────────────────────────────────────────────

// CrearPresentacion godoc
// @Summary      Crear presentación
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.CrearPresentacionRequest true "Datos de la presentación"
// @Success      201  {object} dto.PresentacionResponse
// @Router       /v1/catalogo/presentaciones [post]
func (h *CatalogoHandler) CrearPresentacion(c *gin.Context) {
	var req dto.CrearPresentacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearPresentacion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarPresentacion godoc
// @Summary      Actualizar presentación
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string                            true "UUID de la presentación"
// @Param        body body     dto.ActualizarPresentacionRequest true "Campos a modificar"
// @Success      200  {object} dto.PresentacionResponse
// @Router       /v1/catalogo/presentaciones/{id} [put]
func (h *CatalogoHandler) ActualizarPresentacion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPresentacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarPresentacion(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesactivarPresentacion godoc
// @Summary      Desactivar presentación
// @Tags         catalogo
// @Security     BearerAuth
// @Param        id path string true "UUID de la presentación"
// @Success      204
// @Router       /v1/catalogo/presentaciones/{id} [delete]
func (h *CatalogoHandler) DesactivarPresentacion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarPresentacion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Atributos / Opciones ──────────────────────────────────────────────────────

// CrearAtributo godoc
// @Summary      Crear atributo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.CrearAtributoRequest true "Datos del atributo"
// @Success      201  {object} dto.AtributoResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/catalogo/atributos [post]
func (h *CatalogoHandler) CrearAtributo(c *gin.Context) {
	var req dto.CrearAtributoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearAtributo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarAtributo godoc
// @Summary      Actualizar atributo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string                        true "UUID del atributo"
// @Param        body body     dto.ActualizarAtributoRequest true "Campos a modificar"
// @Success      200  {object} dto.AtributoResponse
// @Router       /v1/catalogo/atributos/{id} [put]
func (h *CatalogoHandler) ActualizarAtributo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarAtributoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarAtributo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesactivarAtributo godoc
// @Summary      Desactivar atributo
// @Tags         catalogo
// @Security     BearerAuth
// @Param        id path string true "UUID del atributo"
// @Success      204
// @Router       /v1/catalogo/atributos/{id} [delete]
func (h *CatalogoHandler) DesactivarAtributo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarAtributo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CrearOpcion godoc
// @Summary      Crear opción de atributo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.CrearOpcionRequest true "Datos de la opción"
// @Success      201  {object} dto.OpcionResponse
// @Router       /v1/catalogo/opciones [post]
func (h *CatalogoHandler) CrearOpcion(c *gin.Context) {
	var req dto.CrearOpcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearOpcion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarOpcion godoc
// @Summary      Actualizar opción de atributo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string                      true "UUID de la opción"
// @Param        body body     dto.ActualizarOpcionRequest true "Campos a modificar"
// @Success      200  {object} dto.OpcionResponse
// @Router       /v1/catalogo/opciones/{id} [put]
func (h *CatalogoHandler) ActualizarOpcion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarOpcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarOpcion(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesactivarOpcion godoc
// @Summary      Desactivar opción de atributo
// @Tags         catalogo
// @Security     BearerAuth
// @Param        id path string true "UUID de la opción"
// @Success      204
// @Router       /v1/catalogo/opciones/{id} [delete]
func (h *CatalogoHandler) DesactivarOpcion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarOpcion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

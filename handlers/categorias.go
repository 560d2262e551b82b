package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/middleware"
	"financas-api/models"
	"financas-api/services"
)

type CategoriaHandler struct {
	Service *services.LedgerService
	WS      *WSHandler
}

func (h *CategoriaHandler) List(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	categorias, err := h.Service.ListCategorias(c.Request.Context(), usuario.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func (h *CategoriaHandler) Get(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	categoria, err := h.Service.GetCategoria(c.Request.Context(), usuario.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

func (h *CategoriaHandler) Create(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	categoria, err := h.Service.CreateCategoria(c.Request.Context(), usuario.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.WS.BroadcastUpdate(usuario.ID, "created", "categoria")
	c.JSON(http.StatusCreated, categoria)
}

func (h *CategoriaHandler) Update(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	categoria, err := h.Service.UpdateCategoria(c.Request.Context(), usuario.ID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.WS.BroadcastUpdate(usuario.ID, "updated", "categoria")
	c.JSON(http.StatusOK, categoria)
}

func (h *CategoriaHandler) Delete(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	categoria, err := h.Service.DeleteCategoria(c.Request.Context(), usuario.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.WS.BroadcastUpdate(usuario.ID, "deleted", "categoria")
	c.JSON(http.StatusOK, categoria)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/middleware"
	"financas-api/models"
	"financas-api/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func (h *DashboardHandler) DespesasReceitas(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.PeriodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	dados, err := h.Service.DespesasReceitas(c.Request.Context(), usuario.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dados)
}

func (h *DashboardHandler) Evolucao(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.PeriodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	dados, err := h.Service.Evolucao(c.Request.Context(), usuario.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dados)
}

func (h *DashboardHandler) DespesasPorCategoria(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.PeriodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	dados, err := h.Service.DespesasPorCategoria(c.Request.Context(), usuario.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dados)
}

func (h *DashboardHandler) ReceitasPorCategoria(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.PeriodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	dados, err := h.Service.ReceitasPorCategoria(c.Request.Context(), usuario.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dados)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/middleware"
	"financas-api/models"
	"financas-api/services"
)

// TransacaoHandler serves one transaction kind; Recurso names it in change
// feed events ("receita" or "despesa").
type TransacaoHandler struct {
	Service *services.TransacaoService
	WS      *WSHandler
	Recurso string
}

func (h *TransacaoHandler) List(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	transacoes, err := h.Service.List(c.Request.Context(), usuario.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transacoes)
}

func (h *TransacaoHandler) Get(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	transacao, err := h.Service.Get(c.Request.Context(), usuario.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transacao)
}

func (h *TransacaoHandler) Create(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.TransacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	transacao, err := h.Service.Create(c.Request.Context(), usuario.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.WS.BroadcastUpdate(usuario.ID, "created", h.Recurso)
	c.JSON(http.StatusCreated, transacao)
}

func (h *TransacaoHandler) Update(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.TransacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	transacao, err := h.Service.Update(c.Request.Context(), usuario.ID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.WS.BroadcastUpdate(usuario.ID, "updated", h.Recurso)
	c.JSON(http.StatusOK, transacao)
}

func (h *TransacaoHandler) Delete(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	transacao, err := h.Service.Delete(c.Request.Context(), usuario.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.WS.BroadcastUpdate(usuario.ID, "deleted", h.Recurso)
	c.JSON(http.StatusOK, transacao)
}

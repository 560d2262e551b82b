package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/middleware"
	"financas-api/models"
	"financas-api/services"
)

type UsuarioHandler struct {
	Service *services.UsuarioService
}

func (h *UsuarioHandler) Registrar(c *gin.Context) {
	var req models.RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	resp, err := h.Service.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsuarioHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	resp, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuarioHandler) Setup2FA(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	resp, err := h.Service.Setup2FA(c.Request.Context(), usuario.ID, usuario.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuarioHandler) Confirmar2FA(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.TOTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Service.Confirmar2FA(c.Request.Context(), usuario.ID, req.Codigo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA ativado."})
}

func (h *UsuarioHandler) Desativar2FA(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	var req models.TOTPDisableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Service.Desativar2FA(c.Request.Context(), usuario.ID, req.Senha); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA desativado."})
}

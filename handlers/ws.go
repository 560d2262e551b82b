package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"financas-api/middleware"
)

// WSHandler pushes ledger change events to connected clients. Sessions are
// keyed by usuario id; a client only ever sees its own events.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()
	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("websocket error: %v", err)
	})

	return &WSHandler{M: m}
}

func (h *WSHandler) HandleWS(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)

	err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		"usuario_id": usuario.ID,
	})
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
	}
}

type wsEvent struct {
	Type    string `json:"type"`
	Recurso string `json:"recurso"`
}

// BroadcastUpdate notifies every session of the usuario that a resource
// changed. Best-effort; a failed broadcast never fails the request.
func (h *WSHandler) BroadcastUpdate(usuarioID, tipo, recurso string) {
	msg, err := json.Marshal(wsEvent{Type: tipo, Recurso: recurso})
	if err != nil {
		return
	}

	err = h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		id, exists := s.Get("usuario_id")
		return exists && id == usuarioID
	})
	if err != nil {
		log.Printf("websocket broadcast failed for usuario %s: %v", usuarioID, err)
	}
}

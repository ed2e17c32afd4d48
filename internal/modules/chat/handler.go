package chat

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"stayelo/internal/domain"
	jwtsvc "stayelo/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer for the REST API; the chat
	// endpoint authenticates via token instead.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ChatRepository interface {
	Save(ctx context.Context, msg *domain.ChatMessage) error
	History(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}

type Handler struct {
	hub  *Hub
	jwt  *jwtsvc.Service
	repo ChatRepository
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service, repo ChatRepository) *Handler {
	return &Handler{hub: hub, jwt: jwt, repo: repo}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws/chat", h.HandleWebSocket)
}

type inboundMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// HandleWebSocket upgrades the connection, replays history, then relays
// every inbound message to all connected clients.
//
// Endpoint: GET /ws/chat?token=JWT_TOKEN. Auth via query parameter, because
// browsers cannot set headers on websocket dials.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)
	log.Printf("chat client connected user_id=%d online=%d", claims.UserID, h.hub.OnlineCount())

	defer func() {
		h.hub.Unregister(conn)
		log.Printf("chat client disconnected user_id=%d online=%d", claims.UserID, h.hub.OnlineCount())
	}()

	if history, err := h.repo.History(c.Request.Context(), 0); err == nil {
		_ = conn.WriteJSON(gin.H{"type": "chat_history", "messages": history})
	}

	for {
		var in inboundMessage
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		if in.Text == "" {
			continue
		}

		msg := &domain.ChatMessage{Sender: in.Sender, Text: in.Text}
		if err := h.repo.Save(c.Request.Context(), msg); err != nil {
			log.Printf("chat message not persisted user_id=%d err=%v", claims.UserID, err)
			continue
		}
		h.hub.Broadcast(gin.H{"type": "receive_message", "message": msg})
	}
}

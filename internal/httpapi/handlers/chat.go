package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motiondesk/server/internal/ai"
	"github.com/motiondesk/server/internal/chat"
	"github.com/motiondesk/server/internal/events"
)

// Converse handles one exchange with the assistant. The body is passed to the
// normalizer untouched so legacy payload shapes keep working.
func (h *Handler) Converse(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request"})
		return
	}

	reply, err := h.ChatSvc.Converse(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, chat.ErrMalformedRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request"})
			return
		}
		var pe *ai.ProviderError
		if errors.As(err, &pe) {
			// Surfaced verbatim, never downgraded to an empty reply.
			c.JSON(http.StatusInternalServerError, gin.H{"error": pe.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type saveChatReq struct {
	Title    string         `json:"title"`
	Messages []chat.Message `json:"messages"`
	Settings *chat.Settings `json:"settings"`
}

func (h *Handler) SaveChat(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req saveChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request"})
		return
	}

	id, err := h.ChatSvc.Save(c.Request.Context(), uid, req.Title, req.Messages, req.Settings)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyConversation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No messages"})
		case errors.Is(err, chat.ErrMalformedRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request"})
		default:
			log.Printf("[SaveChat] save failed uid=%s err=%v", uid, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	if h.Events != nil {
		// Best effort; the save already succeeded.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Events.PublishChatSaved(ctx, events.ChatSaved{ChatID: id, UserID: uid, Title: req.Title}); err != nil {
			log.Printf("[SaveChat] publish event failed chat_id=%s err=%v", id, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// ListChats is deliberately best effort: a missing credential or a storage
// failure both yield an empty list, never an error.
func (h *Handler) ListChats(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"chats": []chat.ChatSummary{}})
		return
	}

	chats, err := h.ChatSvc.List(c.Request.Context(), uid)
	if err != nil {
		log.Printf("[ListChats] list failed uid=%s err=%v", uid, err)
		chats = nil
	}
	if chats == nil {
		chats = []chat.ChatSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

func (h *Handler) GetChat(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	chatID := c.Param("id")
	if chatID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	msgs, settings, err := h.ChatSvc.Get(c.Request.Context(), uid, chatID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		case errors.Is(err, chat.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			log.Printf("[GetChat] get failed uid=%s chat_id=%s err=%v", uid, chatID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	if msgs == nil {
		msgs = []chat.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs, "settings": settings})
}

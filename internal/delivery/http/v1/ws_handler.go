package v1

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/realtime"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// maxFrameSize bounds one inbound websocket frame.
const maxFrameSize = 16 << 10

// WSHandler upgrades chat clients and subscribes them to their topic.
type WSHandler struct {
	hub            *realtime.Hub
	chatUC         domain.ChatUsecase
	originPatterns []string
	insecure       bool
}

// inboundMessage is a frame sent by a connected client.
type inboundMessage struct {
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
}

// NewWSHandler registers the chat websocket endpoint on r
func NewWSHandler(r gin.IRouter, hub *realtime.Hub, chatUC domain.ChatUsecase, allowedOrigins []string, insecure bool) {
	handler := &WSHandler{
		hub:            hub,
		chatUC:         chatUC,
		originPatterns: originPatterns(allowedOrigins),
		insecure:       insecure,
	}
	r.GET("/ws/chat", handler.Connect)
}

// originPatterns turns allowed origins into host patterns for the handshake check
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return patterns
}

// Connect godoc
// @Summary      Chat websocket
// @Description  Subscribes userId to messages/{userId}. Inbound frames {"receiverId","content"} are sent as userId.
// @Tags         chat
// @Param        userId  query  int  true  "Connecting user"
// @Success      101
// @Failure      400  {object}  response.Response
// @Router       /ws/chat [get]
func (h *WSHandler) Connect(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || userID <= 0 {
		c.Error(apperror.BadRequest("Query parameter userId must be a positive integer"))
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: h.insecure,
		OriginPatterns:     h.originPatterns,
	})
	if err != nil {
		logger.Log.Warn("websocket accept failed", "user_id", userID, "error", err)
		return
	}
	conn.SetReadLimit(maxFrameSize)

	client := h.hub.Attach(userID, conn)
	defer client.Close()

	logger.Log.Info("websocket connected", "user_id", userID, "topic", realtime.Topic(userID))
	h.readLoop(c.Request.Context(), userID, conn, client)
	logger.Log.Info("websocket disconnected", "user_id", userID)
}

func (h *WSHandler) readLoop(ctx context.Context, userID int64, conn *websocket.Conn, client *realtime.Client) {
	for {
		var in inboundMessage
		if err := wsjson.Read(ctx, conn, &in); err != nil {
			if websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
				logger.Log.Debug("websocket read ended", "user_id", userID, "error", err)
			}
			return
		}

		msg := &domain.ChatMessage{
			SenderID:   userID,
			ReceiverID: in.ReceiverID,
			Content:    in.Content,
		}
		if err := h.chatUC.Send(ctx, msg); err != nil {
			_ = client.Send(realtime.Event{Type: realtime.EventError, Data: errorText(err)})
		}
	}
}

func errorText(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Failed to send message"
}

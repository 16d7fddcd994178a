package v1

import (
	"net/http"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

// NewChatHandler registers chat routes
func NewChatHandler(r *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{chatUC: chatUC}

	chat := r.Group("/chat")
	{
		chat.POST("/messages", handler.SendMessage)
		chat.GET("", handler.GetConversation)
		chat.PUT("/mark-read", handler.MarkAsRead)
		chat.GET("/:userId/contacts", handler.ListContacts)
		chat.GET("/:userId/unread", handler.GetUnread)
		chat.GET("/:userId/unread-count", handler.UnreadCount)
	}
}

// SendMessageRequest is the payload for sending a chat message
type SendMessageRequest struct {
	SenderID   int64  `json:"senderId" binding:"required,gt=0"`
	ReceiverID int64  `json:"receiverId" binding:"required,gt=0"`
	Content    string `json:"content" binding:"required,max=4000"`
}

// SendMessage godoc
// @Summary      Send a chat message
// @Description  Stores the message and pushes it to the receiver's live connections
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      SendMessageRequest  true  "Message"
// @Success      201   {object}  response.Response{data=domain.ChatMessage}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg := &domain.ChatMessage{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := h.chatUC.Send(c, msg); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// GetConversation godoc
// @Summary      Get the conversation between two users
// @Description  Messages in both directions, oldest first
// @Tags         chat
// @Produce      json
// @Param        senderId    query     int  true  "One participant"
// @Param        receiverId  query     int  true  "Other participant"
// @Success      200         {object}  response.Response{data=[]domain.ChatMessage}
// @Failure      400         {object}  response.Response
// @Router       /chat [get]
func (h *ChatHandler) GetConversation(c *gin.Context) {
	senderID, ok := queryID(c, "senderId")
	if !ok {
		return
	}
	receiverID, ok := queryID(c, "receiverId")
	if !ok {
		return
	}

	messages, err := h.chatUC.GetConversation(c, senderID, receiverID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Conversation retrieved", messages)
}

// ListContacts godoc
// @Summary      List a user's contacts
// @Description  Peers with last message and unread count, most recent first
// @Tags         chat
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.ContactSummary}
// @Router       /chat/{userId}/contacts [get]
func (h *ChatHandler) ListContacts(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}

	contacts, err := h.chatUC.ListContacts(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contacts retrieved", contacts)
}

// MarkAsRead godoc
// @Summary      Mark a conversation as read
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        senderId    query     int  true  "Sender whose messages are read"
// @Param        receiverId  query     int  true  "Reader"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /chat/mark-read [put]
func (h *ChatHandler) MarkAsRead(c *gin.Context) {
	senderID, ok := queryID(c, "senderId")
	if !ok {
		return
	}
	receiverID, ok := queryID(c, "receiverId")
	if !ok {
		return
	}

	updated, err := h.chatUC.MarkAsRead(c, senderID, receiverID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Messages marked as read", gin.H{"updated": updated})
}

// GetUnread godoc
// @Summary      List unread messages for a user
// @Tags         chat
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.ChatMessage}
// @Router       /chat/{userId}/unread [get]
func (h *ChatHandler) GetUnread(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}

	messages, err := h.chatUC.GetUnread(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unread messages retrieved", messages)
}

// UnreadCount godoc
// @Summary      Count unread messages for a user
// @Tags         chat
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response
// @Router       /chat/{userId}/unread-count [get]
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}

	count, err := h.chatUC.UnreadCount(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unread count retrieved", gin.H{"unreadCount": count})
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"consensus-api/internal/domain"
	"consensus-api/internal/middleware"
	"consensus-api/internal/notify"
	"consensus-api/internal/response"
	"consensus-api/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type WSHandler struct {
	hub               *notify.Hub
	membershipService service.MembershipService
	jwtSecret         string
	logger            *zap.Logger
}

func NewWSHandler(hub *notify.Hub, membershipService service.MembershipService, jwtSecret string, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:               hub,
		membershipService: membershipService,
		jwtSecret:         jwtSecret,
		logger:            logger,
	}
}

// HandleWebSocket godoc
// @Summary      Subscribe to synthesis updates
// @Description  Streams summary_updated events as JSON text frames. Participants only hear about forms they joined;
// @Description  formId narrows the stream to one form. The token may be passed as a query parameter or bearer header.
// @Tags         websocket
// @Param        token query string false "JWT access token"
// @Param        formId query string false "Form ID (UUID)"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	}

	session, err := middleware.ParseSession(h.jwtSecret, token)
	if err != nil {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, err.Error())
		return
	}

	filter, ok := h.resolveFilter(c, session)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}

	sub := h.hub.Subscribe(session.UserID, filter)
	if sub == nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	h.logger.Info("Subscriber connected",
		zap.String("subscriberId", sub.ID.String()),
		zap.String("userId", session.UserID.String()))

	go h.writePump(conn, sub)
	go h.readPump(conn, sub)
}

// resolveFilter decides which forms the caller may hear about.
// The filter is fixed when the socket connects: a participant who joins
// another form afterwards must reconnect to hear about it, and REST state
// reads stay correct in the meantime.
func (h *WSHandler) resolveFilter(c *gin.Context, session domain.Session) (notify.Filter, bool) {
	var formID uuid.UUID
	if raw := c.Query("formId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid form ID")
			return notify.Filter{}, false
		}
		formID = id
	}

	forms, err := h.membershipService.SubscribableForms(c.Request.Context(), session)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return notify.Filter{}, false
	}

	// nil means every form
	if forms == nil {
		if formID != uuid.Nil {
			return notify.OnlyForms(formID), true
		}
		return notify.AllForms(), true
	}

	if formID == uuid.Nil {
		return notify.OnlyForms(forms...), true
	}
	for _, id := range forms {
		if id == formID {
			return notify.OnlyForms(formID), true
		}
	}
	response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "form not available")
	return notify.Filter{}, false
}

// readPump only services control frames; subscribers never send events
func (h *WSHandler) readPump(conn *websocket.Conn, sub *notify.Subscriber) {
	defer func() {
		sub.Close()
		conn.Close()
		h.logger.Info("Subscriber disconnected", zap.String("subscriberId", sub.ID.String()))
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket error", zap.Error(err))
			}
			return
		}
	}
}

func (h *WSHandler) writePump(conn *websocket.Conn, sub *notify.Subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-sub.Messages():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

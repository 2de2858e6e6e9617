package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/notify"
)

const wsTestSecret = "ws-secret"

// MockMembershipService is a mock implementation of MembershipService
type MockMembershipService struct {
	RedeemFunc            func(ctx context.Context, session domain.Session, joinCode string) (*dto.MembershipResponse, error)
	ListFormsFunc         func(ctx context.Context, session domain.Session) ([]*dto.FormSummaryResponse, error)
	IsMemberFunc          func(ctx context.Context, formID, userID uuid.UUID) (bool, error)
	SubscribableFormsFunc func(ctx context.Context, session domain.Session) ([]uuid.UUID, error)
}

func (m *MockMembershipService) Redeem(ctx context.Context, session domain.Session, joinCode string) (*dto.MembershipResponse, error) {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, session, joinCode)
	}
	return &dto.MembershipResponse{}, nil
}

func (m *MockMembershipService) ListForms(ctx context.Context, session domain.Session) ([]*dto.FormSummaryResponse, error) {
	if m.ListFormsFunc != nil {
		return m.ListFormsFunc(ctx, session)
	}
	return nil, nil
}

func (m *MockMembershipService) IsMember(ctx context.Context, formID, userID uuid.UUID) (bool, error) {
	if m.IsMemberFunc != nil {
		return m.IsMemberFunc(ctx, formID, userID)
	}
	return false, nil
}

func (m *MockMembershipService) SubscribableForms(ctx context.Context, session domain.Session) ([]uuid.UUID, error) {
	if m.SubscribableFormsFunc != nil {
		return m.SubscribableFormsFunc(ctx, session)
	}
	if session.IsAdmin {
		return nil, nil
	}
	return []uuid.UUID{}, nil
}

func wsToken(t *testing.T, userID uuid.UUID, admin bool) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID.String(),
		"is_admin": admin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(wsTestSecret))
	require.NoError(t, err)
	return signed
}

// startWSServer runs a hub and a server exposing only the websocket route
func startWSServer(t *testing.T, memberships *MockMembershipService) (*notify.Hub, string) {
	t.Helper()
	hub := notify.NewHub(zap.NewNop(), nil, 8)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", NewWSHandler(hub, memberships, wsTestSecret, zap.NewNop()).HandleWebSocket)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) notify.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var event notify.Event
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestWSHandler_ParticipantReceivesOnlyJoinedForms(t *testing.T) {
	joined := uuid.New()
	other := uuid.New()
	hub, url := startWSServer(t, &MockMembershipService{
		SubscribableFormsFunc: func(ctx context.Context, session domain.Session) ([]uuid.UUID, error) {
			return []uuid.UUID{joined}, nil
		},
	})

	conn := dial(t, url+"?token="+wsToken(t, uuid.New(), false))
	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(context.Background(), notify.NewSummaryUpdated(other, uuid.New(), 1, 1, "<p>other</p>")))
	require.NoError(t, hub.Publish(context.Background(), notify.NewSummaryUpdated(joined, uuid.New(), 2, 1, "<p>mine</p>")))

	event := readEvent(t, conn)
	assert.Equal(t, notify.EventSummaryUpdated, event.Type)
	assert.Equal(t, joined, event.FormID)
	assert.Equal(t, 2, event.RoundNumber)
	assert.Equal(t, "<p>mine</p>", event.HTML)
}

func TestWSHandler_AdminReceivesEverything(t *testing.T) {
	hub, url := startWSServer(t, &MockMembershipService{})

	conn := dial(t, url+"?token="+wsToken(t, uuid.New(), true))
	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	formID := uuid.New()
	require.NoError(t, hub.Publish(context.Background(), notify.NewSummaryUpdated(formID, uuid.New(), 1, 2, "")))

	event := readEvent(t, conn)
	assert.Equal(t, formID, event.FormID)
	assert.Equal(t, "", event.HTML, "retraction carries empty html")
}

func TestWSHandler_Rejections(t *testing.T) {
	_, url := startWSServer(t, &MockMembershipService{})

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"bad token", "?token=garbage", http.StatusUnauthorized},
		{"bad form id", "?token=" + wsToken(t, uuid.New(), false) + "&formId=nope", http.StatusBadRequest},
		{"form not joined", "?token=" + wsToken(t, uuid.New(), false) + "&formId=" + uuid.NewString(), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(url+tt.query, nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestWSHandler_DisconnectUnsubscribes(t *testing.T) {
	hub, url := startWSServer(t, &MockMembershipService{})

	conn := dial(t, url+"?token="+wsToken(t, uuid.New(), true))
	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.SubscriberCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

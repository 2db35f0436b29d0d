package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/auth"
)

const (
	userIDKey    = "userID"
	sessionIDKey = "sessionID"
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type shouldSyncFrame struct {
	ShouldSync bool `json:"shouldSync"`
}

// requireUser accepts "Authorization: Bearer <jwt>" or, for browsers that
// cannot set headers on a websocket handshake, an access_token query value.
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			token = c.Query(common.AccessTokenHeaderName)
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Set(sessionIDKey, claims.SessionID)
		c.Next()
	}
}

func parseRoomIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// shouldSync upgrades to a websocket and writes {"shouldSync":true} whenever
// another session changes one of the caller's rooms. The caller's session is
// the one in its access token. Client frames are read only to notice the close.
func (s *Server) shouldSync(c *gin.Context) {
	userID := c.GetString(userIDKey)
	session := c.GetString(sessionIDKey)
	roomIDs := parseRoomIDs(c.Query("room_ids"))

	ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer ws.Close()

	ctx := c.Request.Context()
	sub := s.hub.Subscribe(session, userID, roomIDs)
	defer s.hub.Unsubscribe(sub)
	s.logger.Debug(ctx, "should-sync websocket opened", "user_id", userID, "rooms", len(roomIDs))

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		ws.SetReadLimit(512)
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			_ = ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"), time.Now().Add(writeWait))
			return
		case <-sub.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteJSON(shouldSyncFrame{ShouldSync: true}); err != nil {
				return
			}
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

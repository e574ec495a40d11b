package e2e

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"rukun-live/auth"
	"rukun-live/domain"
	"rukun-live/domain/event"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SkipWithoutServer skips the scenario when no running server is configured.
func (s *BaseSuite) SkipWithoutServer(t *testing.T) {
	if s.Config.ServerURL == "" {
		t.Skip("RUKUN_E2E_SERVER_URL not set, skipping e2e scenario")
	}
}

// Join dials the websocket endpoint and performs the join-room handshake,
// printing a colorized header for the connection step in logs.
func (s *BaseSuite) Join(t *testing.T, identity domain.Identity) *websocket.Conn {
	header := fmt.Sprintf("  ====== join %s (%s) ======", identity.UserID, identity.Role)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	token, err := auth.NewVerifier(s.Config.AuthSecret).GenerateToken(identity, 5*time.Minute)
	s.Require().NoError(err)

	wsURL := "ws" + strings.TrimPrefix(s.Config.ServerURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	t.Cleanup(func() { _ = conn.Close() })

	join, err := event.NewFrame("join-room", map[string]string{
		"user_id": identity.UserID,
		"role":    string(identity.Role),
		"block":   identity.Block,
		"token":   token,
	})
	s.Require().NoError(err)
	s.Require().NoError(conn.WriteJSON(join))
	return conn
}

// Expect reads frames until one matches the wanted channel, dumping bodies
// when E2E_DEBUG_JSON is on.
func (s *BaseSuite) Expect(conn *websocket.Conn, channel string, timeout time.Duration) event.Frame {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(timeout)))
	for {
		var frame event.Frame
		s.Require().NoError(conn.ReadJSON(&frame))
		if s.Config.DebugJSON {
			pretty, _ := json.MarshalIndent(frame, "", "  ")
			fmt.Println(string(pretty))
		}
		if frame.Event == channel {
			return frame
		}
	}
}

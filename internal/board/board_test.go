package board

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/pix3lprompt/internal/config"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

type fakeServer struct {
	token     string
	listCalls atomic.Int32

	mu       sync.Mutex
	lastCard Card
}

func (f *fakeServer) card() Card {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCard
}

func (f *fakeServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/token", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid email or password"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": f.token,
			"user":  map[string]string{"email": body["email"], "name": "Ada"},
		})
	})

	mux.HandleFunc("/api/v1/boards", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"data":[{"id":"b1","name":"Moodboard","workspace_id":"w1"}]}`))
	})

	mux.HandleFunc("/api/v1/boards/b1/lists", func(w http.ResponseWriter, r *http.Request) {
		f.listCalls.Add(1)
		w.Write([]byte(`{"data":[{"id":"l2","name":"Done","position":2},{"id":"l0","name":"Ideas","position":0},{"id":"l1","name":"Doing","position":1}]}`))
	})

	mux.HandleFunc("/api/v1/boards/missing/lists", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("/api/v1/cards", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		var card Card
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&card))
		f.mu.Lock()
		f.lastCard = card
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"card-9"}}`))
	})

	return mux
}

func TestConnectAndSend(t *testing.T) {
	fake := &fakeServer{token: signedToken(t, time.Now().Add(2*time.Hour))}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := NewClient(nil)
	assert.False(t, c.Connected())

	session, err := c.Connect(context.Background(), srv.URL+"/", "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, srv.URL, session.URL)
	assert.Equal(t, "ada@example.com", session.UserEmail)
	assert.Equal(t, "Ada", session.UserName)
	assert.False(t, c.Connected(), "connect leaves the client untouched")

	c.SetSession(session)
	assert.True(t, c.Connected())

	boards, err := c.Boards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Board{{ID: "b1", Name: "Moodboard", WorkspaceID: "w1"}}, boards)

	lists, err := c.Lists(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Equal(t, []string{"l0", "l1", "l2"}, []string{lists[0].ID, lists[1].ID, lists[2].ID})

	_, err = c.Lists(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), fake.listCalls.Load())

	_, err = c.Lists(context.Background(), "missing")
	assert.EqualError(t, err, "failed to load lists (404)")

	id, err := c.SendPrompt(context.Background(), NewCard("l0", " fox ", "snow", "fox, snow --ar 16:9 --v 7", "midjourney-v7"))
	require.NoError(t, err)
	assert.Equal(t, "card-9", id)
	assert.Equal(t, Card{
		ListID:      "l0",
		Title:       "fox",
		Description: "snow",
		Prompt:      "fox, snow --ar 16:9 --v 7",
		AITool:      "midjourney-v7",
	}, fake.card())
}

func TestConnectWhileReading(t *testing.T) {
	fake := &fakeServer{token: signedToken(t, time.Now().Add(2*time.Hour))}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := NewClient(nil)

	done := make(chan *config.BoardConfig)
	go func() {
		session, err := c.Connect(context.Background(), srv.URL, "ada@example.com", "hunter2")
		assert.NoError(t, err)
		c.SetSession(session)
		done <- session
	}()

	var session *config.BoardConfig
	for session == nil {
		select {
		case session = <-done:
		default:
			c.Session()
			c.Expired()
		}
	}

	assert.Same(t, session, c.Session())
	assert.True(t, c.Connected())
}

func TestSetSessionFlushesLists(t *testing.T) {
	fake := &fakeServer{token: signedToken(t, time.Now().Add(2*time.Hour))}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := NewClient(&config.BoardConfig{URL: srv.URL, Token: fake.token, TokenObtainedAt: time.Now()})
	_, err := c.Lists(context.Background(), "b1")
	require.NoError(t, err)

	c.SetSession(&config.BoardConfig{URL: srv.URL, Token: fake.token, TokenObtainedAt: time.Now()})
	_, err = c.Lists(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), fake.listCalls.Load())
}

func TestConnectFailure(t *testing.T) {
	fake := &fakeServer{token: "opaque"}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := NewClient(nil)
	_, err := c.Connect(context.Background(), srv.URL, "ada@example.com", "wrong")
	assert.EqualError(t, err, "Invalid email or password")
	assert.Nil(t, c.Session())
}

func TestNotConnected(t *testing.T) {
	c := NewClient(nil)

	_, err := c.Boards(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = c.Lists(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = c.SendPrompt(context.Background(), Card{})
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		token       string
		obtained    time.Time
		wantExpired bool
	}{
		{"opaque fresh", "opaque", now.Add(-time.Hour), false},
		{"opaque stale", "opaque", now.Add(-111 * time.Minute), true},
		{"jwt in future", signedToken(t, now.Add(10*time.Minute)), now.Add(-5 * time.Hour), false},
		{"jwt in past", signedToken(t, now.Add(-time.Minute)), now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(&config.BoardConfig{URL: "http://board.local", Token: tt.token, TokenObtainedAt: tt.obtained})
			c.now = func() time.Time { return now }
			assert.Equal(t, tt.wantExpired, c.Expired())

			if tt.wantExpired {
				_, err := c.Boards(context.Background())
				assert.ErrorIs(t, err, ErrSessionExpired)
			}
		})
	}
}

func TestNewCardTitle(t *testing.T) {
	long := strings.Repeat("é", 100)
	card := NewCard("l1", "  ", "", long, "sdxl")
	assert.Equal(t, strings.Repeat("é", 80), card.Title)
	assert.Equal(t, long, card.Prompt)

	card = NewCard("l1", "", "", "short", "sdxl")
	assert.Equal(t, "short", card.Title)
}

func TestDisconnect(t *testing.T) {
	c := NewClient(&config.BoardConfig{URL: "http://board.local", Token: "t", TokenObtainedAt: time.Now()})
	require.True(t, c.Connected())
	c.Disconnect()
	assert.False(t, c.Connected())
	assert.Nil(t, c.Session())
}

// Package board sends prompts to a Pix3lBoard workspace as cards.
package board

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"

	"github.com/sant0-9/pix3lprompt/internal/config"
)

// TokenLifetime is assumed when the token carries no exp claim. Board
// tokens last two hours; this leaves a margin.
const TokenLifetime = 110 * time.Minute

const (
	listCacheExpiration = 5 * time.Minute
	listCacheCleanup    = 10 * time.Minute
	maxTitleLength      = 80
)

var (
	ErrNotConnected   = errors.New("not connected to Pix3lBoard")
	ErrSessionExpired = errors.New("Pix3lBoard session expired, reconnect in settings")
)

type Board struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WorkspaceID string `json:"workspace_id"`
}

type List struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Card is a prompt to file on a list
type Card struct {
	ListID      string `json:"list_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	AITool      string `json:"ai_tool"`
}

// NewCard builds a card for an assembled prompt. The title is the subject,
// or the start of the prompt when there is no subject.
func NewCard(listID, subject, details, prompt, targetModel string) Card {
	title := strings.TrimSpace(subject)
	if title == "" {
		title = truncate(prompt, maxTitleLength)
	}
	return Card{
		ListID:      listID,
		Title:       title,
		Description: strings.TrimSpace(details),
		Prompt:      prompt,
		AITool:      targetModel,
	}
}

// Client talks to one board server with a stored session
type Client struct {
	mu         sync.RWMutex
	session    *config.BoardConfig
	httpClient *http.Client
	lists      *cache.Cache
	now        func() time.Time
}

// NewClient wraps an existing session, which may be nil
func NewClient(session *config.BoardConfig) *Client {
	return &Client{
		session:    session,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		lists:      cache.New(listCacheExpiration, listCacheCleanup),
		now:        time.Now,
	}
}

// Session returns the current session, nil when disconnected
func (c *Client) Session() *config.BoardConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// SetSession installs a session returned by Connect, or clears it when nil.
// Cached lists belong to the previous session and are dropped.
func (c *Client) SetSession(session *config.BoardConfig) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
	c.lists.Flush()
}

// ExpiresAt is when the session token stops being usable
func (c *Client) ExpiresAt() time.Time {
	return expiresAt(c.Session())
}

func expiresAt(session *config.BoardConfig) time.Time {
	if session == nil {
		return time.Time{}
	}
	if exp, ok := tokenExpiry(session.Token); ok {
		return exp
	}
	return session.TokenObtainedAt.Add(TokenLifetime)
}

func (c *Client) Expired() bool {
	session := c.Session()
	return session == nil || !c.now().Before(expiresAt(session))
}

func (c *Client) Connected() bool {
	return !c.Expired()
}

// tokenExpiry reads the exp claim without verifying the signature. The
// server checks the token; this is only for scheduling a reconnect.
func tokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

type tokenResponse struct {
	Token string `json:"token"`
	User  struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// Connect exchanges credentials for a token. The client is left unchanged;
// the caller installs the returned session with SetSession and persists it.
func (c *Client) Connect(ctx context.Context, url, email, password string) (*config.BoardConfig, error) {
	base := strings.TrimRight(strings.TrimSpace(url), "/")

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", base+"/api/auth/token", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, authError(resp)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tr.Token == "" {
		return nil, errors.New("authentication response carried no token")
	}

	return &config.BoardConfig{
		URL:             base,
		Token:           tr.Token,
		TokenObtainedAt: c.now(),
		UserEmail:       tr.User.Email,
		UserName:        tr.User.Name,
	}, nil
}

func authError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return fmt.Errorf("authentication failed (%d)", resp.StatusCode)
}

func (c *Client) Disconnect() {
	c.SetSession(nil)
}

func (c *Client) Boards(ctx context.Context) ([]Board, error) {
	var out struct {
		Data []Board `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/boards", "failed to load boards", &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return []Board{}, nil
	}
	return out.Data, nil
}

// Lists returns the lists of a board ordered by position
func (c *Client) Lists(ctx context.Context, boardID string) ([]List, error) {
	if cached, ok := c.lists.Get(boardID); ok {
		return cached.([]List), nil
	}

	var out struct {
		Data []List `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/boards/"+boardID+"/lists", "failed to load lists", &out); err != nil {
		return nil, err
	}

	lists := out.Data
	if lists == nil {
		lists = []List{}
	}
	sort.SliceStable(lists, func(i, j int) bool {
		return lists[i].Position < lists[j].Position
	})
	c.lists.Set(boardID, lists, cache.DefaultExpiration)
	return lists, nil
}

// SendPrompt creates a card and returns its id
func (c *Client) SendPrompt(ctx context.Context, card Card) (string, error) {
	session, err := c.ready()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(card)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", session.URL+"/api/v1/cards", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+session.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to create card (%d)", resp.StatusCode)
	}

	var out struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode card response: %w", err)
	}
	return out.Data.ID, nil
}

// ready returns the session a request should use
func (c *Client) ready() (*config.BoardConfig, error) {
	session := c.Session()
	if session == nil {
		return nil, ErrNotConnected
	}
	if !c.now().Before(expiresAt(session)) {
		return nil, ErrSessionExpired
	}
	return session, nil
}

func (c *Client) get(ctx context.Context, path, failure string, v any) error {
	session, err := c.ready()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", session.URL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+session.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s (%d)", failure, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

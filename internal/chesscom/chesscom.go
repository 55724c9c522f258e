// Package chesscom is a minimal client for the chess.com published-data API.
//
// It covers the player endpoints the analyzer needs: profile, monthly
// archives, current games, and games where it is the player's turn.
package chesscom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the root of the chess.com published-data API.
const DefaultBaseURL = "https://api.chess.com/pub"

// APIError is returned for non-2xx responses. Body carries the response
// payload, which the API uses to describe the failure.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chesscom: %s returned %d: %s", e.URL, e.StatusCode, e.Body)
}

// Profile is a player profile.
type Profile struct {
	Username   string `json:"username"`
	PlayerID   int64  `json:"player_id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	Followers  int    `json:"followers"`
	Joined     int64  `json:"joined"`
	LastOnline int64  `json:"last_online"`
}

// Game is a daily game in progress.
type Game struct {
	URL          string `json:"url"`
	FEN          string `json:"fen"`
	PGN          string `json:"pgn"`
	Turn         string `json:"turn"`
	White        string `json:"white"`
	Black        string `json:"black"`
	LastActivity int64  `json:"last_activity"`
	MoveBy       int64  `json:"move_by"`
}

// GameToMove identifies a game where it is the player's turn. The
// endpoint returns no FEN; positions come from joining against the
// current-games list.
type GameToMove struct {
	URL          string `json:"url"`
	LastActivity int64  `json:"last_activity"`
	MoveBy       int64  `json:"move_by"`
}

// Client queries the API for a single player.
type Client struct {
	user    string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURL overrides the API root, mostly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// New returns a client for the given chess.com username.
func New(user string, opts ...Option) *Client {
	c := &Client{
		user:    user,
		baseURL: DefaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile fetches the player's profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.get(ctx, "", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Archives lists the URLs of the player's monthly game archives.
func (c *Client) Archives(ctx context.Context) ([]string, error) {
	var resp struct {
		Archives []string `json:"archives"`
	}
	if err := c.get(ctx, "/games/archives", &resp); err != nil {
		return nil, err
	}
	return resp.Archives, nil
}

// CurrentGames lists the player's daily games in progress.
func (c *Client) CurrentGames(ctx context.Context) ([]Game, error) {
	var resp struct {
		Games []Game `json:"games"`
	}
	if err := c.get(ctx, "/games", &resp); err != nil {
		return nil, err
	}
	return resp.Games, nil
}

// GamesToMove lists games where it is the player's turn.
func (c *Client) GamesToMove(ctx context.Context) ([]GameToMove, error) {
	var resp struct {
		Games []GameToMove `json:"games"`
	}
	if err := c.get(ctx, "/games/to-move", &resp); err != nil {
		return nil, err
	}
	return resp.Games, nil
}

// FENsToMove returns the FEN of every game where it is the player's
// turn. The to-move endpoint carries no position, so games are joined
// against the current-games list on their last-activity timestamp.
func (c *Client) FENsToMove(ctx context.Context) ([]string, error) {
	toMove, err := c.GamesToMove(ctx)
	if err != nil {
		return nil, err
	}
	current, err := c.CurrentGames(ctx)
	if err != nil {
		return nil, err
	}

	var fens []string
	for _, tm := range toMove {
		for _, game := range current {
			if game.LastActivity == tm.LastActivity {
				fens = append(fens, game.FEN)
			}
		}
	}
	return fens, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + "/player/" + c.user + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("chesscom: building request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("chesscom: fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, URL: url, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("chesscom: decoding %s: %w", url, err)
	}
	return nil
}

package auth

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrTokenNotFound indicates no cached token exists for the client
var ErrTokenNotFound = errors.New("no cached token")

// TokenStore caches OAuth tokens in SQLite, keyed by OAuth client ID,
// replacing ad-hoc token files on disk.
type TokenStore struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the token database at path
func OpenStore(path string) (*TokenStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create token db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open token db: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS oauth_tokens (
			client_id TEXT PRIMARY KEY,
			token TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init token schema: %w", err)
	}

	return &TokenStore{db: db}, nil
}

// Close closes the underlying database
func (s *TokenStore) Close() error {
	return s.db.Close()
}

// Save persists a token for the given OAuth client, replacing any
// previously cached one
func (s *TokenStore) Save(clientID string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO oauth_tokens (client_id, token, updated_at) VALUES (?, ?, ?)",
		clientID, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Load returns the cached token for the given OAuth client, or
// ErrTokenNotFound when none has been saved
func (s *TokenStore) Load(clientID string) (*oauth2.Token, error) {
	var data string
	err := s.db.QueryRow(
		"SELECT token FROM oauth_tokens WHERE client_id = ?", clientID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal([]byte(data), &tok); err != nil {
		return nil, fmt.Errorf("unmarshal token: %w", err)
	}
	return &tok, nil
}

// Delete removes the cached token for the given OAuth client
func (s *TokenStore) Delete(clientID string) error {
	_, err := s.db.Exec("DELETE FROM oauth_tokens WHERE client_id = ?", clientID)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

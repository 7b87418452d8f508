package api

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/zabeliqbal/langkawi-data-hub/db"
)

// APIKey grants access to the service. A key linked to an admin profile also
// passes the admin route guard.
type APIKey struct {
	ID          int       `json:"id"`
	Key         string    `json:"key"`
	Description string    `json:"description"`
	ProfileID   string    `json:"profile_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	LastUsedAt  time.Time `json:"last_used_at,omitempty"`
	IsActive    bool      `json:"is_active"`
}

// generateAPIKey generates a random 32-byte hex string
func generateAPIKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// validateMasterKey checks if the provided key matches the master key
func validateMasterKey(key string) bool {
	master := os.Getenv("MASTER_API_KEY")
	return master != "" && key == master
}

// CreateAPIKey creates a new API key, optionally bound to a profile.
func CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	if !validateMasterKey(r.Header.Get("Authorization")) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Description string `json:"description"`
		ProfileID   string `json:"profile_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	key, err := generateAPIKey()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate API key")
		return
	}

	var profileID any
	if req.ProfileID != "" {
		profileID = req.ProfileID
	}

	var apiKey APIKey
	var storedProfile sql.NullString
	err = db.DB.QueryRow(`
		INSERT INTO api_keys (key, description, profile_id)
		VALUES ($1, $2, $3)
		RETURNING id, key, description, profile_id, created_at, is_active
	`, key, req.Description, profileID).Scan(
		&apiKey.ID,
		&apiKey.Key,
		&apiKey.Description,
		&storedProfile,
		&apiKey.CreatedAt,
		&apiKey.IsActive,
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create API key")
		return
	}
	apiKey.ProfileID = storedProfile.String

	writeJSON(w, http.StatusCreated, apiKey)
}

// DeleteAPIKey deletes an API key
func DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if !validateMasterKey(r.Header.Get("Authorization")) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		ID int `json:"id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := db.DB.Exec("DELETE FROM api_keys WHERE id = $1", req.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete API key")
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get rows affected")
		return
	}
	if rowsAffected == 0 {
		writeError(w, http.StatusNotFound, "API key not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAPIKeys lists all API keys (only accessible with master key)
func ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	if !validateMasterKey(r.Header.Get("Authorization")) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := db.DB.Query(`
		SELECT id, key, description, profile_id, created_at, last_used_at, is_active
		FROM api_keys
		ORDER BY created_at DESC
	`)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list API keys")
		return
	}
	defer rows.Close()

	apiKeys := []APIKey{}
	for rows.Next() {
		var apiKey APIKey
		var profileID sql.NullString
		var lastUsedAt *time.Time
		err := rows.Scan(
			&apiKey.ID,
			&apiKey.Key,
			&apiKey.Description,
			&profileID,
			&apiKey.CreatedAt,
			&lastUsedAt,
			&apiKey.IsActive,
		)
		if err != nil {
			continue
		}
		apiKey.ProfileID = profileID.String
		if lastUsedAt != nil {
			apiKey.LastUsedAt = *lastUsedAt
		}
		apiKeys = append(apiKeys, apiKey)
	}

	writeJSON(w, http.StatusOK, apiKeys)
}

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

func ListProfiles() ([]models.Profile, error) {
	rows, err := DB.Query(`
		SELECT id, email, full_name, role, created_at
		FROM profiles
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func GetProfile(id string) (models.Profile, error) {
	var p models.Profile
	err := DB.QueryRow(`
		SELECT id, email, full_name, role, created_at FROM profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("error fetching profile %s: %w", id, err)
	}
	return p, nil
}

// UpsertProfile mirrors a row from the external identity provider. Role is
// only set on first insert; role changes go through UpdateProfileRole.
func UpsertProfile(p models.Profile) error {
	if p.Role == "" {
		p.Role = models.RoleUser
	}
	_, err := DB.Exec(`
		INSERT INTO profiles (id, email, full_name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET email = $2, full_name = $3
	`, p.ID, p.Email, p.FullName, p.Role)
	if err != nil {
		return fmt.Errorf("error upserting profile %s: %w", p.ID, err)
	}
	return nil
}

func UpdateProfileRole(id, role string) error {
	result, err := DB.Exec(`UPDATE profiles SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return fmt.Errorf("error updating role for profile %s: %w", id, err)
	}
	return requireRow(result)
}

// RoleForAPIKey resolves an active API key to its profile's role and bumps
// the key's last-used timestamp. Keys without a linked profile act as plain
// users.
func RoleForAPIKey(key string) (string, error) {
	var role sql.NullString
	err := DB.QueryRow(`
		UPDATE api_keys
		SET last_used_at = NOW()
		WHERE key = $1 AND is_active = true
		RETURNING (SELECT role FROM profiles WHERE profiles.id = api_keys.profile_id)
	`, key).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("error resolving api key: %w", err)
	}
	if !role.Valid {
		return models.RoleUser, nil
	}
	return role.String, nil
}

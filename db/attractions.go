package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

func ListAttractions() ([]models.Attraction, error) {
	rows, err := DB.Query(`
		SELECT id, name, location, description, image_url, latitude, longitude,
		       visitor_count, created_at
		FROM attractions
		ORDER BY visitor_count DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing attractions: %w", err)
	}
	defer rows.Close()

	var attractions []models.Attraction
	for rows.Next() {
		var a models.Attraction
		if err := rows.Scan(&a.ID, &a.Name, &a.Location, &a.Description, &a.ImageURL,
			&a.Latitude, &a.Longitude, &a.VisitorCount, &a.CreatedAt); err != nil {
			return nil, err
		}
		attractions = append(attractions, a)
	}
	return attractions, rows.Err()
}

func InsertAttraction(a models.Attraction) (models.Attraction, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	err := DB.QueryRow(`
		INSERT INTO attractions (id, name, location, description, image_url,
			latitude, longitude, visitor_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, a.ID, a.Name, a.Location, a.Description, a.ImageURL,
		a.Latitude, a.Longitude, a.VisitorCount).Scan(&a.CreatedAt)
	if err != nil {
		return models.Attraction{}, fmt.Errorf("error inserting attraction: %w", err)
	}
	return a, nil
}

func UpdateAttraction(id string, a models.Attraction) error {
	result, err := DB.Exec(`
		UPDATE attractions
		SET name = $1, location = $2, description = $3, image_url = $4,
		    latitude = $5, longitude = $6, visitor_count = $7
		WHERE id = $8
	`, a.Name, a.Location, a.Description, a.ImageURL,
		a.Latitude, a.Longitude, a.VisitorCount, id)
	if err != nil {
		return fmt.Errorf("error updating attraction %s: %w", id, err)
	}
	return requireRow(result)
}

func DeleteAttraction(id string) error {
	result, err := DB.Exec(`DELETE FROM attractions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attraction %s: %w", id, err)
	}
	return requireRow(result)
}

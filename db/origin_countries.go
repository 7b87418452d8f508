package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

// ListOriginCountries returns the source-market ranking, biggest first, the
// order the origin chart renders in.
func ListOriginCountries() ([]models.OriginCountry, error) {
	rows, err := DB.Query(`
		SELECT id, name, year, visitor_count, percentage, change
		FROM origin_countries
		ORDER BY visitor_count DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing origin countries: %w", err)
	}
	defer rows.Close()

	var countries []models.OriginCountry
	for rows.Next() {
		var c models.OriginCountry
		if err := rows.Scan(&c.ID, &c.Name, &c.Year, &c.VisitorCount,
			&c.Percentage, &c.Change); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func InsertOriginCountry(c models.OriginCountry) (models.OriginCountry, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := DB.Exec(`
		INSERT INTO origin_countries (id, name, year, visitor_count, percentage, change)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.Name, c.Year, c.VisitorCount, c.Percentage, c.Change)
	if err != nil {
		return models.OriginCountry{}, fmt.Errorf("error inserting origin country: %w", err)
	}
	return c, nil
}

func UpdateOriginCountry(id string, c models.OriginCountry) error {
	result, err := DB.Exec(`
		UPDATE origin_countries
		SET name = $1, year = $2, visitor_count = $3, percentage = $4, change = $5
		WHERE id = $6
	`, c.Name, c.Year, c.VisitorCount, c.Percentage, c.Change, id)
	if err != nil {
		return fmt.Errorf("error updating origin country %s: %w", id, err)
	}
	return requireRow(result)
}

func DeleteOriginCountry(id string) error {
	result, err := DB.Exec(`DELETE FROM origin_countries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting origin country %s: %w", id, err)
	}
	return requireRow(result)
}

package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

func ListTouristSpending() ([]models.TouristSpending, error) {
	rows, err := DB.Query(`
		SELECT id, year, month, average_spending, created_at
		FROM tourist_spending
		ORDER BY year, month
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing tourist spending: %w", err)
	}
	defer rows.Close()

	var entries []models.TouristSpending
	for rows.Next() {
		var s models.TouristSpending
		if err := rows.Scan(&s.ID, &s.Year, &s.Month, &s.AverageSpending, &s.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, s)
	}
	return entries, rows.Err()
}

// SpendingSeries returns average spending per month, period-sorted.
func SpendingSeries() ([]float64, error) {
	rows, err := DB.Query(`SELECT average_spending FROM tourist_spending ORDER BY year, month`)
	if err != nil {
		return nil, fmt.Errorf("error reading spending series: %w", err)
	}
	defer rows.Close()

	var series []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		series = append(series, v)
	}
	return series, rows.Err()
}

func InsertTouristSpending(s models.TouristSpending) (models.TouristSpending, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	err := DB.QueryRow(`
		INSERT INTO tourist_spending (id, year, month, average_spending)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, s.ID, s.Year, s.Month, s.AverageSpending).Scan(&s.CreatedAt)
	if err != nil {
		return models.TouristSpending{}, fmt.Errorf("error inserting tourist spending: %w", err)
	}
	return s, nil
}

func UpdateTouristSpending(id string, s models.TouristSpending) error {
	result, err := DB.Exec(`
		UPDATE tourist_spending SET year = $1, month = $2, average_spending = $3 WHERE id = $4
	`, s.Year, s.Month, s.AverageSpending, id)
	if err != nil {
		return fmt.Errorf("error updating tourist spending %s: %w", id, err)
	}
	return requireRow(result)
}

func DeleteTouristSpending(id string) error {
	result, err := DB.Exec(`DELETE FROM tourist_spending WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting tourist spending %s: %w", id, err)
	}
	return requireRow(result)
}

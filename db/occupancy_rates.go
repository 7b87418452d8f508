package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

func ListOccupancyRates() ([]models.OccupancyRate, error) {
	rows, err := DB.Query(`
		SELECT id, year, month, rate, created_at
		FROM occupancy_rates
		ORDER BY year, month
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing occupancy rates: %w", err)
	}
	defer rows.Close()

	var rates []models.OccupancyRate
	for rows.Next() {
		var r models.OccupancyRate
		if err := rows.Scan(&r.ID, &r.Year, &r.Month, &r.Rate, &r.CreatedAt); err != nil {
			return nil, err
		}
		rates = append(rates, r)
	}
	return rates, rows.Err()
}

// OccupancySeries returns just the rates, period-sorted, for the stats
// calculator.
func OccupancySeries() ([]float64, error) {
	rows, err := DB.Query(`SELECT rate FROM occupancy_rates ORDER BY year, month`)
	if err != nil {
		return nil, fmt.Errorf("error reading occupancy series: %w", err)
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

func InsertOccupancyRate(r models.OccupancyRate) (models.OccupancyRate, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	err := DB.QueryRow(`
		INSERT INTO occupancy_rates (id, year, month, rate)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, r.ID, r.Year, r.Month, r.Rate).Scan(&r.CreatedAt)
	if err != nil {
		return models.OccupancyRate{}, fmt.Errorf("error inserting occupancy rate: %w", err)
	}
	return r, nil
}

func UpdateOccupancyRate(id string, r models.OccupancyRate) error {
	result, err := DB.Exec(`
		UPDATE occupancy_rates SET year = $1, month = $2, rate = $3 WHERE id = $4
	`, r.Year, r.Month, r.Rate, id)
	if err != nil {
		return fmt.Errorf("error updating occupancy rate %s: %w", id, err)
	}
	return requireRow(result)
}

func DeleteOccupancyRate(id string) error {
	result, err := DB.Exec(`DELETE FROM occupancy_rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting occupancy rate %s: %w", id, err)
	}
	return requireRow(result)
}

package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

// ListVisitorStats returns every monthly row, sorted ascending by period so
// chart consumers and the stats calculator can use it as-is.
func ListVisitorStats() ([]models.VisitorStat, error) {
	rows, err := DB.Query(`
		SELECT id, year, month, domestic_count, international_count, created_at, updated_at
		FROM visitor_stats
		ORDER BY year, month
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing visitor stats: %w", err)
	}
	defer rows.Close()

	var stats []models.VisitorStat
	for rows.Next() {
		var s models.VisitorStat
		if err := rows.Scan(&s.ID, &s.Year, &s.Month, &s.DomesticCount,
			&s.InternationalCount, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// VisitorTotals returns the combined visitor count per month, period-sorted.
func VisitorTotals() ([]float64, error) {
	rows, err := DB.Query(`
		SELECT domestic_count + international_count
		FROM visitor_stats
		ORDER BY year, month
	`)
	if err != nil {
		return nil, fmt.Errorf("error reading visitor totals: %w", err)
	}
	defer rows.Close()

	var totals []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		totals = append(totals, v)
	}
	return totals, rows.Err()
}

func InsertVisitorStat(s models.VisitorStat) (models.VisitorStat, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	err := DB.QueryRow(`
		INSERT INTO visitor_stats (id, year, month, domestic_count, international_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, s.ID, s.Year, s.Month, s.DomesticCount, s.InternationalCount).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return models.VisitorStat{}, fmt.Errorf("error inserting visitor stat: %w", err)
	}
	return s, nil
}

func UpdateVisitorStat(id string, s models.VisitorStat) error {
	result, err := DB.Exec(`
		UPDATE visitor_stats
		SET year = $1, month = $2, domestic_count = $3, international_count = $4, updated_at = NOW()
		WHERE id = $5
	`, s.Year, s.Month, s.DomesticCount, s.InternationalCount, id)
	if err != nil {
		return fmt.Errorf("error updating visitor stat %s: %w", id, err)
	}
	return requireRow(result)
}

func DeleteVisitorStat(id string) error {
	result, err := DB.Exec(`DELETE FROM visitor_stats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting visitor stat %s: %w", id, err)
	}
	return requireRow(result)
}

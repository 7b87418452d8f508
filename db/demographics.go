package db

import (
	"fmt"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

// Supplemental dashboard tables. These are read-only through the API; their
// contents come from periodic bulk loads, not the admin UI.

func ListAccommodationAreas() ([]models.AccommodationArea, error) {
	rows, err := DB.Query(`
		SELECT id, area, hotels, occupancy_rate
		FROM accommodation_areas
		ORDER BY hotels DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing accommodation areas: %w", err)
	}
	defer rows.Close()

	var areas []models.AccommodationArea
	for rows.Next() {
		var a models.AccommodationArea
		if err := rows.Scan(&a.ID, &a.Area, &a.Hotels, &a.OccupancyRate); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func ListAgeDemographics() ([]models.AgeDemographic, error) {
	rows, err := DB.Query(`
		SELECT id, age_group, percentage
		FROM age_demographics
		ORDER BY age_group
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing age demographics: %w", err)
	}
	defer rows.Close()

	var groups []models.AgeDemographic
	for rows.Next() {
		var g models.AgeDemographic
		if err := rows.Scan(&g.ID, &g.AgeGroup, &g.Percentage); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func ListEntryPoints() ([]models.EntryPoint, error) {
	rows, err := DB.Query(`
		SELECT id, type, count, percentage
		FROM entry_points
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing entry points: %w", err)
	}
	defer rows.Close()

	var points []models.EntryPoint
	for rows.Next() {
		var p models.EntryPoint
		if err := rows.Scan(&p.ID, &p.Type, &p.Count, &p.Percentage); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

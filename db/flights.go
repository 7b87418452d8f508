package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

// ListFlightArrivals returns the arrivals board for one calendar day, in
// scheduled-time order. An empty date means every stored day.
func ListFlightArrivals(date string) ([]models.FlightArrival, error) {
	query := `
		SELECT id, flight_number, airline_code, airline_name, origin,
		       scheduled_time, estimated_time, status, terminal,
		       to_char(date, 'YYYY-MM-DD'), created_at
		FROM flight_arrivals`
	args := []any{}
	if date != "" {
		query += ` WHERE date = $1`
		args = append(args, date)
	}
	query += ` ORDER BY date, scheduled_time, flight_number`

	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing flight arrivals: %w", err)
	}
	defer rows.Close()

	var arrivals []models.FlightArrival
	for rows.Next() {
		var f models.FlightArrival
		if err := rows.Scan(&f.ID, &f.FlightNumber, &f.AirlineCode, &f.AirlineName,
			&f.Origin, &f.ScheduledTime, &f.EstimatedTime, &f.Status,
			&f.Terminal, &f.Date, &f.CreatedAt); err != nil {
			return nil, err
		}
		arrivals = append(arrivals, f)
	}
	return arrivals, rows.Err()
}

// ReplaceFlightDay swaps out one day's arrivals for a fresh batch. Delete
// and insert run in a single transaction so a failed sync can never leave
// the day half-written, and two overlapping syncs cannot interleave.
func ReplaceFlightDay(date string, arrivals []models.FlightArrival) (int, error) {
	tx, err := DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("error starting flight replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM flight_arrivals WHERE date = $1`, date); err != nil {
		return 0, fmt.Errorf("error clearing flight day %s: %w", date, err)
	}

	for _, f := range arrivals {
		_, err := tx.Exec(`
			INSERT INTO flight_arrivals (id, flight_number, airline_code, airline_name,
				origin, scheduled_time, estimated_time, status, terminal, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, f.ID, f.FlightNumber, f.AirlineCode, f.AirlineName, f.Origin,
			f.ScheduledTime, f.EstimatedTime, f.Status, f.Terminal, f.Date)
		if err != nil {
			return 0, fmt.Errorf("error inserting flight %s: %w", f.FlightNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing flight replace: %w", err)
	}
	return len(arrivals), nil
}

// FlightDailyCounts returns arrivals per day, date-sorted, for the dashboard
// stat card.
func FlightDailyCounts() ([]float64, error) {
	rows, err := DB.Query(`
		SELECT COUNT(*) FROM flight_arrivals GROUP BY date ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("error reading flight daily counts: %w", err)
	}
	defer rows.Close()

	var counts []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		counts = append(counts, v)
	}
	return counts, rows.Err()
}

func InsertFlightArrival(f models.FlightArrival) (models.FlightArrival, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Status == "" {
		f.Status = models.StatusScheduled
	}
	err := DB.QueryRow(`
		INSERT INTO flight_arrivals (id, flight_number, airline_code, airline_name,
			origin, scheduled_time, estimated_time, status, terminal, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, f.ID, f.FlightNumber, f.AirlineCode, f.AirlineName, f.Origin,
		f.ScheduledTime, f.EstimatedTime, f.Status, f.Terminal, f.Date).Scan(&f.CreatedAt)
	if err != nil {
		return models.FlightArrival{}, fmt.Errorf("error inserting flight arrival: %w", err)
	}
	return f, nil
}

func UpdateFlightArrival(id string, f models.FlightArrival) error {
	result, err := DB.Exec(`
		UPDATE flight_arrivals
		SET flight_number = $1, airline_code = $2, airline_name = $3, origin = $4,
		    scheduled_time = $5, estimated_time = $6, status = $7, terminal = $8, date = $9
		WHERE id = $10
	`, f.FlightNumber, f.AirlineCode, f.AirlineName, f.Origin,
		f.ScheduledTime, f.EstimatedTime, f.Status, f.Terminal, f.Date, id)
	if err != nil {
		return fmt.Errorf("error updating flight arrival %s: %w", id, err)
	}
	return requireRow(result)
}

func DeleteFlightArrival(id string) error {
	result, err := DB.Exec(`DELETE FROM flight_arrivals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting flight arrival %s: %w", id, err)
	}
	return requireRow(result)
}

package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/zabeliqbal/langkawi-data-hub/collector"
	"github.com/zabeliqbal/langkawi-data-hub/db"
	"github.com/zabeliqbal/langkawi-data-hub/flights"
	"github.com/zabeliqbal/langkawi-data-hub/models"
	"github.com/zabeliqbal/langkawi-data-hub/stats"
	"github.com/zabeliqbal/langkawi-data-hub/types"
)

// listHandler wraps the shared shape of every chart read: query the store,
// log failures, return the rows as a JSON array (empty array, never null).
func listHandler[T any](name string, list func() ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := list()
		if err != nil {
			log.Printf("Error listing %s: %v", name, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if rows == nil {
			rows = []T{}
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

var (
	GetVisitorStats       = listHandler("visitor stats", db.ListVisitorStats)
	GetOriginCountries    = listHandler("origin countries", db.ListOriginCountries)
	GetOccupancyRates     = listHandler("occupancy rates", db.ListOccupancyRates)
	GetTouristSpending    = listHandler("tourist spending", db.ListTouristSpending)
	GetAttractions        = listHandler("attractions", db.ListAttractions)
	GetAccommodationAreas = listHandler("accommodation areas", db.ListAccommodationAreas)
	GetAgeDemographics    = listHandler("age demographics", db.ListAgeDemographics)
	GetEntryPoints        = listHandler("entry points", db.ListEntryPoints)
)

// GetFlightArrivals returns the arrivals board, optionally scoped to one day
// via ?date=YYYY-MM-DD.
func GetFlightArrivals(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	arrivals, err := db.ListFlightArrivals(date)
	if err != nil {
		log.Printf("Error listing flight arrivals: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if arrivals == nil {
		arrivals = []models.FlightArrival{}
	}
	writeJSON(w, http.StatusOK, arrivals)
}

// GetDashboardSummary computes the four stat cards. Visitor counts, spending
// and arrivals use relative percent change; occupancy, already a percentage,
// uses percentage points.
func GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	visitors, err := db.VisitorTotals()
	if err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	occupancy, err := db.OccupancySeries()
	if err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	spending, err := db.SpendingSeries()
	if err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	flightCounts, err := db.FlightDailyCounts()
	if err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summary := types.DashboardSummary{
		Visitors:       stats.LatestAndChange(visitors, stats.Relative),
		Occupancy:      stats.LatestAndChange(occupancy, stats.PercentagePoint),
		Spending:       stats.LatestAndChange(spending, stats.Relative),
		FlightArrivals: stats.LatestAndChange(flightCounts, stats.Relative),
	}
	writeJSON(w, http.StatusOK, summary)
}

// GetCollectorStats exposes the sync counters for the operator panel.
func GetCollectorStats(c Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, c.Stats())
	}
}

// SyncFlights triggers one flight sync. Not retried automatically: on
// failure the operator sees the failing stage and triggers again.
func SyncFlights(c Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := c.Sync(time.Now())
		if err != nil {
			log.Printf("Flight sync failed: %v", err)
			var syncErr *collector.SyncError
			status := http.StatusBadGateway
			if errors.As(err, &syncErr) && syncErr.Stage == collector.StageStore {
				status = http.StatusInternalServerError
			}
			if errors.Is(err, flights.ErrShapeNotFound) {
				status = http.StatusUnprocessableEntity
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

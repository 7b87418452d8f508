package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/zabeliqbal/langkawi-data-hub/collector"
	"github.com/zabeliqbal/langkawi-data-hub/types"
)

// Collector is the slice of the flight collector the API needs: trigger a
// sync, report its counters.
type Collector interface {
	Sync(today time.Time) (collector.SyncResult, error)
	Stats() types.SyncStats
}

// NewRouter creates and configures a new router with all API endpoints.
func NewRouter(c Collector) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/health", HealthCheck).Methods("GET")

	// API key management (master-key gated)
	r.HandleFunc("/api/keys", CreateAPIKey).Methods("POST")
	r.HandleFunc("/api/keys", ListAPIKeys).Methods("GET")
	r.HandleFunc("/api/keys", DeleteAPIKey).Methods("DELETE")

	// Public dashboard reads, rate limited per client
	api := r.PathPrefix("/api").Subrouter()
	api.Use(RateLimit)

	api.HandleFunc("/visitor-stats", GetVisitorStats).Methods("GET")
	api.HandleFunc("/origin-countries", GetOriginCountries).Methods("GET")
	api.HandleFunc("/occupancy-rates", GetOccupancyRates).Methods("GET")
	api.HandleFunc("/tourist-spending", GetTouristSpending).Methods("GET")
	api.HandleFunc("/attractions", GetAttractions).Methods("GET")
	api.HandleFunc("/flight-arrivals", GetFlightArrivals).Methods("GET")
	api.HandleFunc("/accommodation/areas", GetAccommodationAreas).Methods("GET")
	api.HandleFunc("/demographics/age", GetAgeDemographics).Methods("GET")
	api.HandleFunc("/demographics/entry-points", GetEntryPoints).Methods("GET")

	api.HandleFunc("/dashboard/summary", GetDashboardSummary).Methods("GET")
	api.HandleFunc("/collector/stats", GetCollectorStats(c)).Methods("GET")
	api.HandleFunc("/export/{table}.csv", ExportTableCSV).Methods("GET")

	// Admin surface: valid API key whose profile role is admin
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(RequireAdmin)

	admin.HandleFunc("/visitor-stats", CreateVisitorStat).Methods("POST")
	admin.HandleFunc("/visitor-stats/{id}", UpdateVisitorStat).Methods("PUT")
	admin.HandleFunc("/visitor-stats/{id}", DeleteVisitorStat).Methods("DELETE")

	admin.HandleFunc("/origin-countries", CreateOriginCountry).Methods("POST")
	admin.HandleFunc("/origin-countries/{id}", UpdateOriginCountry).Methods("PUT")
	admin.HandleFunc("/origin-countries/{id}", DeleteOriginCountry).Methods("DELETE")

	admin.HandleFunc("/occupancy-rates", CreateOccupancyRate).Methods("POST")
	admin.HandleFunc("/occupancy-rates/{id}", UpdateOccupancyRate).Methods("PUT")
	admin.HandleFunc("/occupancy-rates/{id}", DeleteOccupancyRate).Methods("DELETE")

	admin.HandleFunc("/tourist-spending", CreateTouristSpending).Methods("POST")
	admin.HandleFunc("/tourist-spending/{id}", UpdateTouristSpending).Methods("PUT")
	admin.HandleFunc("/tourist-spending/{id}", DeleteTouristSpending).Methods("DELETE")

	admin.HandleFunc("/attractions", CreateAttraction).Methods("POST")
	admin.HandleFunc("/attractions/{id}", UpdateAttraction).Methods("PUT")
	admin.HandleFunc("/attractions/{id}", DeleteAttraction).Methods("DELETE")

	admin.HandleFunc("/flight-arrivals", CreateFlightArrival).Methods("POST")
	admin.HandleFunc("/flight-arrivals/{id}", UpdateFlightArrival).Methods("PUT")
	admin.HandleFunc("/flight-arrivals/{id}", DeleteFlightArrival).Methods("DELETE")
	admin.HandleFunc("/flights/sync", SyncFlights(c)).Methods("POST")

	admin.HandleFunc("/profiles", GetProfiles).Methods("GET")
	admin.HandleFunc("/profiles/{id}", GetProfileByID).Methods("GET")
	admin.HandleFunc("/profiles/{id}", UpsertProfile).Methods("PUT")
	admin.HandleFunc("/profiles/{id}/role", UpdateProfileRole).Methods("PUT")

	return r
}

// HealthCheck reports service liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jszwec/csvutil"

	"github.com/zabeliqbal/langkawi-data-hub/db"
)

// exportable maps the URL table name to its store read. Only whitelisted
// tables can be downloaded; profiles and api_keys stay out.
var exportable = map[string]func() (any, error){
	"visitor_stats":       func() (any, error) { return db.ListVisitorStats() },
	"origin_countries":    func() (any, error) { return db.ListOriginCountries() },
	"occupancy_rates":     func() (any, error) { return db.ListOccupancyRates() },
	"tourist_spending":    func() (any, error) { return db.ListTouristSpending() },
	"attractions":         func() (any, error) { return db.ListAttractions() },
	"flight_arrivals":     func() (any, error) { return db.ListFlightArrivals("") },
	"accommodation_areas": func() (any, error) { return db.ListAccommodationAreas() },
	"age_demographics":    func() (any, error) { return db.ListAgeDemographics() },
	"entry_points":        func() (any, error) { return db.ListEntryPoints() },
}

// ExportTableCSV streams one table as a CSV download for the dashboard's
// export button.
func ExportTableCSV(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]
	list, ok := exportable[table]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown table %q", table))
		return
	}

	rows, err := list()
	if err != nil {
		log.Printf("Error exporting %s: %v", table, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	body, err := csvutil.Marshal(rows)
	if err != nil {
		log.Printf("Error encoding %s as CSV: %v", table, err)
		writeError(w, http.StatusInternalServerError, "Failed to encode CSV")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", table))
	w.Write(body)
}

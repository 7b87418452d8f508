package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/zabeliqbal/langkawi-data-hub/db"
	"github.com/zabeliqbal/langkawi-data-hub/models"
)

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeStoreError maps store failures onto status codes; everything else is
// passed through verbatim for the admin UI to display.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}
	log.Printf("Store error: %v", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func validMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be 1-12, got %d", month)
	}
	if year < 1990 {
		return fmt.Errorf("year must be 1990 or later, got %d", year)
	}
	return nil
}

// Visitor stats

func CreateVisitorStat(w http.ResponseWriter, r *http.Request) {
	var s models.VisitorStat
	if !decodeBody(w, r, &s) {
		return
	}
	if err := validMonth(s.Year, s.Month); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := db.InsertVisitorStat(s)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func UpdateVisitorStat(w http.ResponseWriter, r *http.Request) {
	var s models.VisitorStat
	if !decodeBody(w, r, &s) {
		return
	}
	if err := validMonth(s.Year, s.Month); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := db.UpdateVisitorStat(mux.Vars(r)["id"], s); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func DeleteVisitorStat(w http.ResponseWriter, r *http.Request) {
	if err := db.DeleteVisitorStat(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Origin countries

func CreateOriginCountry(w http.ResponseWriter, r *http.Request) {
	var c models.OriginCountry
	if !decodeBody(w, r, &c) {
		return
	}
	if c.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	created, err := db.InsertOriginCountry(c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func UpdateOriginCountry(w http.ResponseWriter, r *http.Request) {
	var c models.OriginCountry
	if !decodeBody(w, r, &c) {
		return
	}
	if err := db.UpdateOriginCountry(mux.Vars(r)["id"], c); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func DeleteOriginCountry(w http.ResponseWriter, r *http.Request) {
	if err := db.DeleteOriginCountry(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Occupancy rates

func CreateOccupancyRate(w http.ResponseWriter, r *http.Request) {
	var o models.OccupancyRate
	if !decodeBody(w, r, &o) {
		return
	}
	if err := validMonth(o.Year, o.Month); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := db.InsertOccupancyRate(o)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func UpdateOccupancyRate(w http.ResponseWriter, r *http.Request) {
	var o models.OccupancyRate
	if !decodeBody(w, r, &o) {
		return
	}
	if err := validMonth(o.Year, o.Month); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := db.UpdateOccupancyRate(mux.Vars(r)["id"], o); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func DeleteOccupancyRate(w http.ResponseWriter, r *http.Request) {
	if err := db.DeleteOccupancyRate(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Tourist spending

func CreateTouristSpending(w http.ResponseWriter, r *http.Request) {
	var s models.TouristSpending
	if !decodeBody(w, r, &s) {
		return
	}
	if err := validMonth(s.Year, s.Month); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := db.InsertTouristSpending(s)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func UpdateTouristSpending(w http.ResponseWriter, r *http.Request) {
	var s models.TouristSpending
	if !decodeBody(w, r, &s) {
		return
	}
	if err := validMonth(s.Year, s.Month); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := db.UpdateTouristSpending(mux.Vars(r)["id"], s); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func DeleteTouristSpending(w http.ResponseWriter, r *http.Request) {
	if err := db.DeleteTouristSpending(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Attractions

func CreateAttraction(w http.ResponseWriter, r *http.Request) {
	var a models.Attraction
	if !decodeBody(w, r, &a) {
		return
	}
	if a.Name == "" || a.Location == "" {
		writeError(w, http.StatusBadRequest, "name and location are required")
		return
	}
	created, err := db.InsertAttraction(a)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func UpdateAttraction(w http.ResponseWriter, r *http.Request) {
	var a models.Attraction
	if !decodeBody(w, r, &a) {
		return
	}
	if err := db.UpdateAttraction(mux.Vars(r)["id"], a); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func DeleteAttraction(w http.ResponseWriter, r *http.Request) {
	if err := db.DeleteAttraction(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Flight arrivals (manual corrections alongside the automated sync)

func CreateFlightArrival(w http.ResponseWriter, r *http.Request) {
	var f models.FlightArrival
	if !decodeBody(w, r, &f) {
		return
	}
	if f.FlightNumber == "" {
		writeError(w, http.StatusBadRequest, "flight_number is required")
		return
	}
	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	created, err := db.InsertFlightArrival(f)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func UpdateFlightArrival(w http.ResponseWriter, r *http.Request) {
	var f models.FlightArrival
	if !decodeBody(w, r, &f) {
		return
	}
	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if err := db.UpdateFlightArrival(mux.Vars(r)["id"], f); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func DeleteFlightArrival(w http.ResponseWriter, r *http.Request) {
	if err := db.DeleteFlightArrival(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Profiles

func GetProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := db.ListProfiles()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func GetProfileByID(w http.ResponseWriter, r *http.Request) {
	profile, err := db.GetProfile(mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpsertProfile mirrors a profile row from the external identity provider.
// The row is keyed by the provider's user id; repeated calls refresh email
// and full name but leave an existing role untouched.
func UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if !decodeBody(w, r, &p) {
		return
	}
	if p.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if p.Role != "" && p.Role != models.RoleAdmin && p.Role != models.RoleUser {
		writeError(w, http.StatusBadRequest, "role must be admin or user")
		return
	}
	p.ID = mux.Vars(r)["id"]
	if err := db.UpsertProfile(p); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func UpdateProfileRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		writeError(w, http.StatusBadRequest, "role must be admin or user")
		return
	}
	id := mux.Vars(r)["id"]
	if err := db.UpdateProfileRole(id, req.Role); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "role": req.Role})
}

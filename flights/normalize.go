package flights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

// Field alias tables, in resolution order. Each upstream source spells these
// differently; the first present, non-null value wins. Keeping the policy in
// one place makes it auditable when a new source shows up.
var (
	flightNumberKeys  = []string{"flight_number", "flightNumber", "flight_id"}
	airlineNameKeys   = []string{"name", "airline_name", "airlineName", "airline"}
	airlineCodeKeys   = []string{"airline_code", "airlineCode"}
	originKeys        = []string{"origin", "from", "departure_airport"}
	scheduledTimeKeys = []string{"scheduled_time", "scheduledTime", "std"}
	estimatedTimeKeys = []string{"estimated_time", "estimatedTime", "etd"}
)

// flightIdentifyingKeys drives the prober's key-sniffing heuristic.
var flightIdentifyingKeys = func() []string {
	keys := append([]string{}, flightNumberKeys...)
	keys = append(keys, airlineNameKeys...)
	keys = append(keys, originKeys...)
	return keys
}()

// Normalize maps loosely-typed flight records into canonical rows. It is
// total: a record that cannot be decoded, or is missing every field, still
// yields a fully-populated row with defaults. The caller passes the clock
// explicitly; the date column and synthesized identifiers derive from it and
// never from the source record.
func Normalize(records []json.RawMessage, now time.Time) []models.FlightArrival {
	date := now.Format("2006-01-02")
	stamp := strconv.FormatInt(now.UnixMilli(), 10)

	out := make([]models.FlightArrival, 0, len(records))
	for i, raw := range records {
		obj := decodeObject(raw)

		flightNumber := firstAlias(obj, flightNumberKeys)
		if flightNumber == "" {
			flightNumber = fmt.Sprintf("UNKNOWN-%d", i)
		}

		id := firstAlias(obj, []string{"id"})
		if id == "" {
			id = "live-" + flightNumber + "-" + stamp
		}

		status := firstAlias(obj, []string{"status"})
		if status == "" {
			status = models.StatusScheduled
		}

		out = append(out, models.FlightArrival{
			ID:            id,
			FlightNumber:  flightNumber,
			AirlineCode:   firstAlias(obj, airlineCodeKeys),
			AirlineName:   firstAlias(obj, airlineNameKeys),
			Origin:        originOf(obj),
			ScheduledTime: firstAlias(obj, scheduledTimeKeys),
			EstimatedTime: firstAlias(obj, estimatedTimeKeys),
			Status:        status,
			Terminal:      firstAlias(obj, []string{"terminal"}),
			Date:          date,
		})
	}
	return out
}

func decodeObject(raw json.RawMessage) map[string]any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil
	}
	return obj
}

// firstAlias returns the first present, non-null value among the alias keys,
// coerced to a string. Numbers keep their JSON spelling (no trailing ".0").
func firstAlias(obj map[string]any, keys []string) string {
	for _, key := range keys {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := asString(v); ok {
			return s
		}
	}
	return ""
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	}
	return "", false
}

// originOf handles the one structurally-varying field: some sources send the
// origin as an object with a city property, others as a plain string under
// one of several names.
func originOf(obj map[string]any) string {
	if nested, ok := obj["origin"].(map[string]any); ok {
		if city, ok := asString(nested["city"]); ok {
			return city
		}
	}
	return firstAlias(obj, originKeys)
}

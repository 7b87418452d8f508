package models

import "time"

// Flight status codes as shown on the arrivals board.
const (
	StatusScheduled = "Scheduled"
	StatusDeparted  = "Departed"
	StatusArrived   = "Arrived"
	StatusDelayed   = "Delayed"
	StatusCancelled = "Cancelled"
)

// FlightArrival is the canonical form of one arriving flight after
// normalization. Every field is always populated; an empty string marks an
// absent value, so consumers never need a nil check.
type FlightArrival struct {
	ID            string    `json:"id" csv:"id"`
	FlightNumber  string    `json:"flight_number" csv:"flight_number"`
	AirlineCode   string    `json:"airline_code" csv:"airline_code"`
	AirlineName   string    `json:"airline_name" csv:"airline_name"`
	Origin        string    `json:"origin" csv:"origin"`
	ScheduledTime string    `json:"scheduled_time" csv:"scheduled_time"`
	EstimatedTime string    `json:"estimated_time" csv:"estimated_time"`
	Status        string    `json:"status" csv:"status"`
	Terminal      string    `json:"terminal" csv:"terminal"`
	Date          string    `json:"date" csv:"date"`
	CreatedAt     time.Time `json:"created_at,omitempty" csv:"-"`
}

package models

import "time"

// VisitorStat is one month of visitor arrivals, split domestic/international.
type VisitorStat struct {
	ID                 string    `json:"id" csv:"id"`
	Year               int       `json:"year" csv:"year"`
	Month              int       `json:"month" csv:"month"`
	DomesticCount      int       `json:"domestic_count" csv:"domestic_count"`
	InternationalCount int       `json:"international_count" csv:"international_count"`
	CreatedAt          time.Time `json:"created_at" csv:"-"`
	UpdatedAt          time.Time `json:"updated_at" csv:"-"`
}

// OriginCountry is a yearly ranking entry for one source market.
type OriginCountry struct {
	ID           string  `json:"id" csv:"id"`
	Name         string  `json:"name" csv:"name"`
	Year         int     `json:"year" csv:"year"`
	VisitorCount int     `json:"visitor_count" csv:"visitor_count"`
	Percentage   float64 `json:"percentage" csv:"percentage"`
	Change       string  `json:"change" csv:"change"`
}

// OccupancyRate is the island-wide hotel occupancy for one month, in percent.
type OccupancyRate struct {
	ID        string    `json:"id" csv:"id"`
	Year      int       `json:"year" csv:"year"`
	Month     int       `json:"month" csv:"month"`
	Rate      float64   `json:"rate" csv:"rate"`
	CreatedAt time.Time `json:"created_at" csv:"-"`
}

// TouristSpending is the average spend per visitor for one month, in MYR.
type TouristSpending struct {
	ID              string    `json:"id" csv:"id"`
	Year            int       `json:"year" csv:"year"`
	Month           int       `json:"month" csv:"month"`
	AverageSpending float64   `json:"average_spending" csv:"average_spending"`
	CreatedAt       time.Time `json:"created_at" csv:"-"`
}

// Attraction is a point of interest shown on the dashboard map.
type Attraction struct {
	ID           string    `json:"id" csv:"id"`
	Name         string    `json:"name" csv:"name"`
	Location     string    `json:"location" csv:"location"`
	Description  string    `json:"description" csv:"description"`
	ImageURL     string    `json:"image_url" csv:"image_url"`
	Latitude     float64   `json:"latitude" csv:"latitude"`
	Longitude    float64   `json:"longitude" csv:"longitude"`
	VisitorCount int       `json:"visitor_count" csv:"visitor_count"`
	CreatedAt    time.Time `json:"created_at" csv:"-"`
}

// AccommodationArea summarizes hotel supply and occupancy for one area.
type AccommodationArea struct {
	ID            string  `json:"id" csv:"id"`
	Area          string  `json:"area" csv:"area"`
	Hotels        int     `json:"hotels" csv:"hotels"`
	OccupancyRate float64 `json:"occupancy_rate" csv:"occupancy_rate"`
}

// AgeDemographic is the share of visitors in one age bracket.
type AgeDemographic struct {
	ID         string  `json:"id" csv:"id"`
	AgeGroup   string  `json:"age_group" csv:"age_group"`
	Percentage float64 `json:"percentage" csv:"percentage"`
}

// EntryPoint is an arrival mode (air, ferry, ...) with its visitor share.
type EntryPoint struct {
	ID         string  `json:"id" csv:"id"`
	Type       string  `json:"type" csv:"type"`
	Count      int     `json:"count" csv:"count"`
	Percentage float64 `json:"percentage" csv:"percentage"`
}

package models

type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Geohash   string  `json:"geohash"`
	Precision int     `json:"precision"`
}

package types

import (
	"fmt"
	"strconv"
)

// Coordinate is a latitude/longitude pair as entered by the user.
// Values are kept verbatim so they can be forwarded to the provider unchanged.
type Coordinate struct {
	Latitude  string `json:"latitude" example:"19.43"`
	Longitude string `json:"longitude" example:"-99.13"`
}

func NewCoordinate(latitude, longitude string) Coordinate {
	return Coordinate{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Float64s parses both parts as decimal degrees
func (c Coordinate) Float64s() (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.Latitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude %q is not a number: %w", c.Latitude, err)
	}
	lon, err := strconv.ParseFloat(c.Longitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude %q is not a number: %w", c.Longitude, err)
	}
	return lat, lon, nil
}

func (c Coordinate) String() string {
	return c.Latitude + "," + c.Longitude
}

package location

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"weather-widget/internal/types"
)

// Default coordinate used when the input is not a "lat,lon" pair (Mexico City)
const (
	DefaultLatitude  = "19.43"
	DefaultLongitude = "-99.13"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be a number between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be a number between -180 and 180")
)

// InputError reports a coordinate that was rejected before any request was made
type InputError struct {
	Coordinate types.Coordinate
	Err        error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: %v", e.Coordinate.String(), e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Parser turns free text into a coordinate
type Parser struct {
	fallback types.Coordinate
}

// NewParser creates a parser that falls back to the given coordinate
func NewParser(fallback types.Coordinate) *Parser {
	return &Parser{fallback: fallback}
}

var defaultParser = NewParser(types.NewCoordinate(DefaultLatitude, DefaultLongitude))

// Parse parses text with the default fallback coordinate
func Parse(text string) types.Coordinate {
	return defaultParser.Parse(text)
}

// Parse splits "lat,lon" on the first comma and trims both halves.
// Text without a comma yields the fallback coordinate. No numeric checks are made here.
func (p *Parser) Parse(text string) types.Coordinate {
	lat, lon, found := strings.Cut(strings.TrimSpace(text), ",")
	if !found {
		return p.fallback
	}
	return types.NewCoordinate(strings.TrimSpace(lat), strings.TrimSpace(lon))
}

// Fallback returns the coordinate used for text without a comma
func (p *Parser) Fallback() types.Coordinate {
	return p.fallback
}

// Validate checks that both parts are numbers within range
func Validate(c types.Coordinate) error {
	lat, err := strconv.ParseFloat(c.Latitude, 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		return &InputError{Coordinate: c, Err: ErrInvalidLatitude}
	}

	lon, err := strconv.ParseFloat(c.Longitude, 64)
	if err != nil || math.IsNaN(lon) || lon < -180 || lon > 180 {
		return &InputError{Coordinate: c, Err: ErrInvalidLongitude}
	}

	return nil
}

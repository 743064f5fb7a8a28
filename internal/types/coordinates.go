package types

import "fmt"

// Coords is an immutable latitude/longitude pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether the pair lies inside the WGS84 range.
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func (c Coords) String() string {
	return fmt.Sprintf("%.5f,%.5f", c.Latitude, c.Longitude)
}

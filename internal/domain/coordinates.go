package domain

// Immutable geographic point in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the point lies within the WGS84 coordinate ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

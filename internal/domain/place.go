package domain

// Place is a resolved geocoding result: the display name of the best match
// plus its coordinates. Immutable once obtained from the geocoder.
type Place struct {
	Name   string
	Coords Coordinates
}

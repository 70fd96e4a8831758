package domain

// WeatherReport is a seeded weather card for a hub city.
type WeatherReport struct {
	City      string
	Condition string
	TempC     float64
	WindKph   float64
}

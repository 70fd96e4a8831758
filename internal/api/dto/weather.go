package dto

type WeatherResponse struct {
	City      string  `json:"city"`
	Condition string  `json:"condition"`
	TempC     float64 `json:"temp_c"`
	WindKph   float64 `json:"wind_kph"`
}

type ListWeatherResponse struct {
	Reports []WeatherResponse `json:"reports"`
}

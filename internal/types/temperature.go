package types

type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
	}
}

func NewTemperatureFromFahrenheit(fahrenheit float64) Temperature {
	return Temperature{
		Celsius:    (fahrenheit - 32) * 5 / 9,
		Fahrenheit: fahrenheit,
	}
}

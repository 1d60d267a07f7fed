package forecast

import "surfcast/internal/wire"

// Forecast modes: beach-level with overlay and wind classification, or
// regional oceanic.
const (
	ModeSurf    = "SURF"
	ModeOceanic = "OCEANIC"
)

// Band is one wave train (total, windseas or a swell) at one hour.
type Band struct {
	Value           float64 `json:"value"`
	Period          float64 `json:"period"`
	Direction       string  `json:"direction"`
	DirectionDegree int     `json:"directionDegree"`
	Power           float64 `json:"power"`
	Energy          int     `json:"energy"`
}

// Waves decomposes the sea state at one hour.
type Waves struct {
	TotalHeight Band `json:"totalHeight"`
	Windseas    Band `json:"windseas"`
	SwellA      Band `json:"swellA"`
	SwellB      Band `json:"swellB"`
}

// CoastWind is the coastal wind at one hour. Pressure stays a raw string
// cell for compatibility.
type CoastWind struct {
	DirectionDegree int    `json:"directionDegree"`
	Wind            int    `json:"wind"`
	WindGust        int    `json:"windGust"`
	Pressure        string `json:"pressure"`
	Type            string `json:"type"`
	Direction       string `json:"direction"`
}

// SeaWind is the oceanic wind reading attached to every hour of a day.
type SeaWind struct {
	Direction int `json:"direction"`
	Wind      int `json:"wind"`
}

// Winds groups the coastal and oceanic wind readings of one hour.
type Winds struct {
	Coast CoastWind `json:"coast"`
	Sea   SeaWind   `json:"sea"`
}

// Atmospheric holds the weather fields of one hour.
type Atmospheric struct {
	Pressure       int `json:"pressure"`
	Temperature    int `json:"temperature"`
	Clouds         int `json:"clouds"`
	Precipitation  int `json:"precipitation"`
	StormPotential int `json:"stormPotential"`
}

// Hour is one of the eight slots of a forecast day.
type Hour struct {
	Hour        string      `json:"hour"`
	Waves       Waves       `json:"waves"`
	Winds       Winds       `json:"winds"`
	Atmospheric Atmospheric `json:"atmospheric"`
}

// Day is one calendar day of the horizon. Tides are populated on day 0
// only; a day without oceanic data keeps empty hours.
type Day struct {
	Day   string      `json:"day"`
	Tides []wire.Tide `json:"tides"`
	Hours []Hour      `json:"hours"`
}

// Forecast is the assembled 15-day horizon with its maxima.
type Forecast struct {
	MaxHeight      float64 `json:"maxHeight"`
	MaxEnergy      int     `json:"maxEnergy"`
	MaxPower       float64 `json:"maxPower"`
	MaxWind        int     `json:"maxWind"`
	ForecastMapURL string  `json:"forecastMapUrl,omitempty"`
	Days           []Day   `json:"days"`
}

// Response is the full forecast document for one spot or region.
type Response struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Orientation int      `json:"orientation"`
	Forecast    Forecast `json:"forecast"`
}

package forecast

import (
	"surfcast/internal/wire"
)

// Input is the resolved metadata and fetched layers a forecast is
// assembled from. Atmos may be nil (weather fields zero out); Ocean may be
// nil only for regional requests.
type Input struct {
	ID          string
	Name        string
	Mode        string
	Orientation int    // degrees the beach faces seaward; 0 means unknown
	MapURL      string // optional forecast map link
	Atmos       *wire.File
	Ocean       *wire.File
}

// Assemble builds the full 15-day response document: eight hour
// projections per day, tides on day 0, and the four horizon maxima.
func Assemble(in Input) *Response {
	var orientation *int
	if in.Mode == ModeSurf && in.Orientation != 0 {
		o := in.Orientation
		orientation = &o
	}

	base := in.Ocean.BaseDate()

	days := make([]Day, 0, wire.Days)
	for n := range wire.Days {
		date := base.AddDate(0, 0, n).Format("2006-01-02")

		ocean := wire.DecodeDay(dayBlob(in.Ocean, n))
		if ocean == nil {
			days = append(days, Day{Day: date, Tides: []wire.Tide{}, Hours: []Hour{}})
			continue
		}

		hi := hourInput{
			ocean:       ocean,
			beach:       wire.DecodeDay(overlayBlob(in.Ocean, n)),
			atmos:       wire.DecodeDay(dayBlob(in.Atmos, n)),
			mode:        in.Mode,
			orientation: orientation,
		}
		hours := make([]Hour, 0, wire.Slots)
		for slot := range wire.Slots {
			hours = append(hours, buildHour(hi, slot))
		}

		tides := []wire.Tide{}
		if n == 0 {
			tides = wire.DecodeTides(ocean.At(wire.OceanTides, 0))
		}

		days = append(days, Day{Day: date, Tides: tides, Hours: hours})
	}

	return &Response{
		ID:          in.ID,
		Date:        in.Ocean.DateString(),
		Type:        in.Mode,
		Name:        in.Name,
		Orientation: in.Orientation,
		Forecast: Forecast{
			MaxHeight:      MaxValue(in.Ocean, wire.OceanWaveHeight, true),
			MaxEnergy:      int(MaxValue(in.Ocean, wire.OceanTotalEnergy, false)),
			MaxPower:       MaxValue(in.Ocean, wire.OceanTotalPower, true),
			MaxWind:        int(MaxValue(in.Atmos, wire.AtmosWind, false)),
			ForecastMapURL: in.MapURL,
			Days:           days,
		},
	}
}

func dayBlob(f *wire.File, n int) string {
	if f == nil {
		return ""
	}
	return f.V[n]
}

func overlayBlob(f *wire.File, n int) string {
	if f == nil {
		return ""
	}
	return f.S[n]
}

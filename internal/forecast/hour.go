package forecast

import (
	"fmt"
	"strconv"

	"surfcast/internal/compass"
	"surfcast/internal/wire"
)

// hourInput gathers the decoded matrices feeding one day's projections.
// beach and atmos may be nil.
type hourInput struct {
	ocean       wire.Matrix
	beach       wire.Matrix
	atmos       wire.Matrix
	mode        string
	orientation *int // nil when unknown
}

// waveChannels maps each wave band to its oceanic rows and its overlay row.
var waveChannels = [4]struct {
	beachRow, height, period, direction, energy, power int
}{
	{wire.BeachWaveHeight, wire.OceanWaveHeight, wire.OceanWavePeriod,
		wire.OceanPrimaryDirection, wire.OceanTotalEnergy, wire.OceanTotalPower},
	{wire.BeachWindseasHeight, wire.OceanWindseasHeight, wire.OceanWindseasPeriod,
		wire.OceanWindseasDirection, wire.OceanWindseasEnergy, wire.OceanWindseasPower},
	{wire.BeachPrimarySwellHeight, wire.OceanSwellAHeight, wire.OceanSwellAPeriod,
		wire.OceanSwellADirection, wire.OceanSwellAEnergy, wire.OceanSwellAPower},
	{wire.BeachSecondarySwellHeight, wire.OceanSwellBHeight, wire.OceanSwellBPeriod,
		wire.OceanSwellBDirection, wire.OceanSwellBEnergy, wire.OceanSwellBPower},
}

func buildHour(in hourInput, slot int) Hour {
	return Hour{
		Hour:        fmt.Sprintf("%02d:00", wire.SlotHours[slot]),
		Waves:       buildWaves(in.ocean, in.beach, slot),
		Winds:       buildWinds(in, slot),
		Atmospheric: buildAtmospheric(in.atmos, slot),
	}
}

func buildWaves(ocean, beach wire.Matrix, slot int) Waves {
	bands := [4]Band{}
	for i, ch := range waveChannels {
		b := Band{
			Value:           ocean.Tenth(ch.height, slot),
			Period:          ocean.Tenth(ch.period, slot),
			Direction:       compass.FromCell(ocean.At(ch.direction, slot)),
			DirectionDegree: ocean.Int(ch.direction, slot),
			Power:           ocean.Tenth(ch.power, slot),
			Energy:          ocean.Int(ch.energy, slot),
		}
		// Overlay heights win when the beach file carries the cell; a
		// short overlay falls through to the oceanic height. Periods,
		// directions, energies and powers stay oceanic-sourced.
		if beach.Has(ch.beachRow, slot) {
			b.Value = beach.Tenth(ch.beachRow, slot)
		}
		bands[i] = b
	}
	return Waves{TotalHeight: bands[0], Windseas: bands[1], SwellA: bands[2], SwellB: bands[3]}
}

func buildWinds(in hourInput, slot int) Winds {
	dirCell := in.atmos.At(wire.AtmosWindDirection, slot)

	windType := WindOceanic
	if in.mode == ModeSurf && in.orientation != nil && in.atmos != nil {
		if deg, err := strconv.Atoi(dirCell); err == nil {
			windType = WindType(*in.orientation, deg)
		}
	}

	return Winds{
		Coast: CoastWind{
			DirectionDegree: in.atmos.Int(wire.AtmosWindDirection, slot),
			Wind:            in.atmos.Int(wire.AtmosWind, slot),
			WindGust:        in.atmos.Int(wire.AtmosWindGust, slot),
			Pressure:        in.atmos.At(wire.AtmosPressure, slot),
			Type:            windType,
			Direction:       compass.FromCell(dirCell),
		},
		// The producers fill sea wind for slot 0 only; every hour of a day
		// reports the slot-0 reading.
		Sea: SeaWind{
			Direction: in.ocean.Int(wire.OceanSeaWindDirection, 0),
			Wind:      in.ocean.Int(wire.OceanSeaWind, 0),
		},
	}
}

func buildAtmospheric(atmos wire.Matrix, slot int) Atmospheric {
	return Atmospheric{
		Pressure:       atmos.Int(wire.AtmosPressure, slot),
		Temperature:    atmos.Int(wire.AtmosTemperature, slot),
		Clouds:         atmos.Int(wire.AtmosClouds, slot),
		Precipitation:  atmos.Int(wire.AtmosPrecipitation, slot),
		StormPotential: atmos.Int(wire.AtmosStormPotential, slot),
	}
}

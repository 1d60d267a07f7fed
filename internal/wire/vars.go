// Package wire implements the packed forecast wire format: semicolon-
// delimited variables, colon-delimited slot values, the tide sub-string and
// the location file envelope. The row indices below are the contract with
// the upstream producers.
package wire

// A day covers eight fixed slots: 00, 03, 06, 09, 12, 15, 18 and 21 local.
const Slots = 8

// A location file carries up to fifteen days, day 0 first.
const Days = 15

// SlotHours holds the local hour of each slot.
var SlotHours = [Slots]int{0, 3, 6, 9, 12, 15, 18, 21}

// Values marked tenths are stored scaled by 10 and divided on read.
const divisor = 10

// Rows of the oceanic day-blob (the v strings of oceano and praia files).
const (
	OceanWaveHeight        = 0 // tenths of a meter
	OceanWavePeriod        = 1 // tenths of a second
	OceanPrimaryDirection  = 2 // degrees
	OceanTotalEnergy       = 3
	OceanTotalPower        = 4 // tenths of a kW
	OceanWindseasHeight    = 5 // tenths of a meter
	OceanWindseasPeriod    = 6 // tenths of a second
	OceanWindseasDirection = 7 // degrees
	OceanWindseasEnergy    = 8
	OceanWindseasPower     = 9 // tenths of a kW
	OceanSwellAHeight      = 10 // tenths of a meter
	OceanSwellAPeriod      = 11 // tenths of a second
	OceanSwellADirection   = 12 // degrees
	OceanSwellAEnergy      = 13
	OceanSwellAPower       = 14 // tenths of a kW
	OceanSwellBHeight      = 15 // tenths of a meter
	OceanSwellBPeriod      = 16 // tenths of a second
	OceanSwellBDirection   = 17 // degrees
	OceanSwellBEnergy      = 18
	OceanSwellBPower       = 19 // tenths of a kW
	OceanSeaWind           = 20
	OceanSeaWindDirection  = 21 // degrees
	// Row 22 is unused by the producers.
	OceanTides = 23 // packed tide string in slot 0 of day 0
)

// Rows of the beach overlay day-blob (the s strings of praia files). All
// tenths of a meter; when present they override the oceanic heights.
const (
	BeachWaveHeight           = 0
	BeachWindseasHeight       = 1
	BeachPrimarySwellHeight   = 2
	BeachSecondarySwellHeight = 3
)

// Rows of the atmospheric day-blob (atmos files).
const (
	AtmosWind           = 0
	AtmosWindDirection  = 1 // degrees
	AtmosWindGust       = 2
	AtmosStormPotential = 3
	AtmosPressure       = 4
	AtmosTemperature    = 5
	AtmosClouds         = 6
	AtmosPrecipitation  = 7
)

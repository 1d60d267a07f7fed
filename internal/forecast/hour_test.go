package forecast

import (
	"strings"
	"testing"

	"surfcast/internal/wire"
)

const zeroRow = "0:0:0:0:0:0:0:0"

// testOceanBlob builds a 24-row oceanic day-blob with recognizable values
// in the channels under test.
func testOceanBlob() string {
	rows := make([]string, 24)
	for i := range rows {
		rows[i] = zeroRow
	}
	rows[wire.OceanWaveHeight] = "15:14:13:12:11:10:9:8"
	rows[wire.OceanWavePeriod] = "10:10:9:9:8:8:7:7"
	rows[wire.OceanPrimaryDirection] = "180:190:200:210:180:190:200:180"
	rows[wire.OceanTotalEnergy] = "100:90:80:70:60:50:40:30"
	rows[wire.OceanTotalPower] = "15:14:13:12:11:10:9:8"
	rows[wire.OceanSwellAHeight] = "8:8:8:8:8:8:8:8"
	rows[wire.OceanSeaWind] = "12:0:0:0:0:0:0:0"
	rows[wire.OceanSeaWindDirection] = "200:0:0:0:0:0:0:0"
	rows[wire.OceanTides] = "050015113008:0:0:0:0:0:0:0"
	return strings.Join(rows, ";")
}

func testAtmosBlob() string {
	rows := []string{
		"10:12:14:16:18:20:22:24",            // wind
		"180:190:200:180:190:200:180:180",    // wind direction
		"15:18:20:22:25:28:30:32",            // gust
		"0:0:5:10:20:15:5:0",                 // storm potential
		"1015:1014:1013:1012:1011:1012:1013:1014", // pressure
		"28:27:26:28:30:32:31:29",            // temperature
		"20:30:50:70:80:60:40:25",            // clouds
		"0:0:0:5:10:5:0:0",                   // precipitation
	}
	return strings.Join(rows, ";")
}

func TestBuildWaves(t *testing.T) {
	ocean := wire.DecodeDay(testOceanBlob())

	w := buildWaves(ocean, nil, 0)
	if w.TotalHeight.Value != 1.5 {
		t.Errorf("totalHeight.value = %v, want 1.5", w.TotalHeight.Value)
	}
	if w.TotalHeight.Period != 1.0 {
		t.Errorf("totalHeight.period = %v, want 1.0", w.TotalHeight.Period)
	}
	if w.TotalHeight.Direction != "S" {
		t.Errorf("totalHeight.direction = %q, want S", w.TotalHeight.Direction)
	}
	if w.TotalHeight.DirectionDegree != 180 {
		t.Errorf("totalHeight.directionDegree = %d, want 180", w.TotalHeight.DirectionDegree)
	}
	if w.TotalHeight.Power != 1.5 {
		t.Errorf("totalHeight.power = %v, want 1.5", w.TotalHeight.Power)
	}
	if w.TotalHeight.Energy != 100 {
		t.Errorf("totalHeight.energy = %d, want 100", w.TotalHeight.Energy)
	}
}

func TestBuildWavesOverlay(t *testing.T) {
	ocean := wire.DecodeDay(testOceanBlob())
	beach := wire.DecodeDay("12:11:10:9:8:7:6:5;5:4:3:3:2:2:1:1;8:7:6:5:4:3:2:2;4:3:2:2:2:1:1:1")

	w := buildWaves(ocean, beach, 0)
	if w.TotalHeight.Value != 1.2 {
		t.Errorf("totalHeight.value = %v, want 1.2 (overlay)", w.TotalHeight.Value)
	}
	if w.Windseas.Value != 0.5 {
		t.Errorf("windseas.value = %v, want 0.5 (overlay)", w.Windseas.Value)
	}
	// Period and direction stay oceanic-sourced.
	if w.TotalHeight.Period != 1.0 {
		t.Errorf("totalHeight.period = %v, want 1.0", w.TotalHeight.Period)
	}
	if w.TotalHeight.Direction != "S" {
		t.Errorf("totalHeight.direction = %q, want S", w.TotalHeight.Direction)
	}
}

func TestBuildWavesShortOverlay(t *testing.T) {
	ocean := wire.DecodeDay(testOceanBlob())
	// Overlay with only two rows: swellA falls through to the oceanic
	// height instead of zeroing out.
	beach := wire.DecodeDay("12:11:10:9:8:7:6:5;5:4:3:3:2:2:1:1")

	w := buildWaves(ocean, beach, 0)
	if w.TotalHeight.Value != 1.2 {
		t.Errorf("totalHeight.value = %v, want 1.2", w.TotalHeight.Value)
	}
	if w.SwellA.Value != 0.8 {
		t.Errorf("swellA.value = %v, want 0.8 (oceanic fallback)", w.SwellA.Value)
	}
}

func TestBuildWindsSurf(t *testing.T) {
	orientation := 90
	in := hourInput{
		ocean:       wire.DecodeDay(testOceanBlob()),
		atmos:       wire.DecodeDay(testAtmosBlob()),
		mode:        ModeSurf,
		orientation: &orientation,
	}

	w := buildWinds(in, 0)
	if w.Coast.Wind != 10 || w.Coast.WindGust != 15 {
		t.Errorf("coast = %+v", w.Coast)
	}
	if w.Coast.DirectionDegree != 180 {
		t.Errorf("coast.directionDegree = %d, want 180", w.Coast.DirectionDegree)
	}
	if w.Coast.Pressure != "1015" {
		t.Errorf("coast.pressure = %q, want \"1015\"", w.Coast.Pressure)
	}
	if w.Coast.Direction != "S" {
		t.Errorf("coast.direction = %q, want S", w.Coast.Direction)
	}
	// Beach faces east, wind from south: crossed.
	if w.Coast.Type != WindCrossed {
		t.Errorf("coast.type = %q, want CROSSED", w.Coast.Type)
	}
}

func TestBuildWindsSeaSlotZero(t *testing.T) {
	in := hourInput{ocean: wire.DecodeDay(testOceanBlob()), mode: ModeOceanic}

	// Every hour reports the day's slot-0 sea wind.
	for slot := range wire.Slots {
		w := buildWinds(in, slot)
		if w.Sea.Wind != 12 || w.Sea.Direction != 200 {
			t.Errorf("slot %d sea = %+v, want wind 12 direction 200", slot, w.Sea)
		}
	}
}

func TestBuildWindsNoAtmos(t *testing.T) {
	orientation := 90
	in := hourInput{
		ocean:       wire.DecodeDay(testOceanBlob()),
		mode:        ModeSurf,
		orientation: &orientation,
	}

	w := buildWinds(in, 0)
	if w.Coast.Wind != 0 || w.Coast.WindGust != 0 || w.Coast.DirectionDegree != 0 {
		t.Errorf("coast = %+v, want zeroed", w.Coast)
	}
	if w.Coast.Type != WindOceanic {
		t.Errorf("coast.type = %q, want OCEANIC without atmospheric data", w.Coast.Type)
	}
}

func TestBuildWindsOceanicMode(t *testing.T) {
	in := hourInput{
		ocean: wire.DecodeDay(testOceanBlob()),
		atmos: wire.DecodeDay(testAtmosBlob()),
		mode:  ModeOceanic,
	}
	if w := buildWinds(in, 0); w.Coast.Type != WindOceanic {
		t.Errorf("coast.type = %q, want OCEANIC", w.Coast.Type)
	}
}

func TestBuildAtmospheric(t *testing.T) {
	atmos := wire.DecodeDay(testAtmosBlob())

	a := buildAtmospheric(atmos, 0)
	want := Atmospheric{Pressure: 1015, Temperature: 28, Clouds: 20, Precipitation: 0, StormPotential: 0}
	if a != want {
		t.Errorf("atmospheric = %+v, want %+v", a, want)
	}

	if a := buildAtmospheric(nil, 0); a != (Atmospheric{}) {
		t.Errorf("nil atmospheric = %+v, want zero", a)
	}
}

func TestBuildHourLabels(t *testing.T) {
	in := hourInput{ocean: wire.DecodeDay(testOceanBlob()), mode: ModeOceanic}
	want := [wire.Slots]string{"00:00", "03:00", "06:00", "09:00", "12:00", "15:00", "18:00", "21:00"}
	for slot := range wire.Slots {
		h := buildHour(in, slot)
		if h.Hour != want[slot] {
			t.Errorf("slot %d hour = %q, want %q", slot, h.Hour, want[slot])
		}
	}
}

package forecast

// Wind classifications relative to a beach's seaward orientation.
const (
	WindOnshore  = "ONSHORE"
	WindOffshore = "OFFSHORE"
	WindCrossed  = "CROSSED"
	WindOceanic  = "OCEANIC"
)

// WindType classifies wind blowing from windFrom degrees against a beach
// facing orientation degrees.
func WindType(orientation, windFrom int) string {
	angle := orientation - windFrom
	if angle > 180 || angle < -180 {
		if orientation < windFrom {
			angle = orientation + 360 - windFrom
		} else {
			angle = orientation - (windFrom + 360)
		}
	}
	if angle < 0 {
		angle = -angle
	}
	switch {
	case angle > 125:
		return WindOffshore
	case angle > 65:
		return WindCrossed
	}
	return WindOnshore
}

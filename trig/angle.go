package trig

// FromDegrees converts whole degrees to internal angle units, normalizing
// into [0, 360) first.
func FromDegrees(deg int16) uint16 {
	d := int32(deg) % 360
	if d < 0 {
		d += 360
	}
	return uint16(d * FullTurn / 360)
}

// ToDegrees converts an internal angle to whole degrees in [0, 360).
func ToDegrees(angle uint16) int16 {
	return int16(int32(angle&angleMask) * 360 / FullTurn)
}

// FromMilliradians converts milliradians to internal angle units, folding
// into one turn. One turn is 6283 milliradians.
func FromMilliradians(mrad int32) uint16 {
	r := int64(mrad) * FullTurn / 6283 % FullTurn
	if r < 0 {
		r += FullTurn
	}
	return uint16(r)
}

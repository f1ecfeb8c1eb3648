package chess

// RemainingChecks tracks, for Three-Check, how many more checks each color
// may receive before losing. Both sides start at 3; a side's counter
// decrements whenever it is checked.
type RemainingChecks [2]int8

// StartingRemainingChecks returns the initial 3/3 counters.
func StartingRemainingChecks() RemainingChecks {
	return RemainingChecks{3, 3}
}

// Of returns color c's remaining checks.
func (r RemainingChecks) Of(c Color) int8 { return r[c] }

// receiveCheck returns a copy of r with color c's counter decremented
// (floored at 0).
func (r RemainingChecks) receiveCheck(c Color) RemainingChecks {
	if r[c] > 0 {
		r[c]--
	}
	return r
}

package chess

// Pocket holds Crazyhouse drop material for one color: a count per role
// (King is always 0 and never consulted).
type Pocket [6]int8 // indexed by Role-1

// Count returns how many of role r are held.
func (p Pocket) Count(r Role) int8 { return p[r-1] }

func (p Pocket) add(r Role, n int8) Pocket {
	p[r-1] += n
	return p
}

// Pockets holds both sides' Crazyhouse pockets.
type Pockets [2]Pocket

// Of returns color c's pocket.
func (p Pockets) Of(c Color) Pocket { return p[c] }

// add returns a copy of p with n added to color c's count of role r.
func (p Pockets) add(c Color, r Role, n int8) Pockets {
	p[c] = p[c].add(r, n)
	return p
}

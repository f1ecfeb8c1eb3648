package chess

// VariantKind selects which rule-set a Position plays by. Move generation
// is shared in full across all three (§9 "Variant polymorphism") — a
// variant only changes what Position.Play does after the shared generator
// and applier have produced the base Normal/EnPassant/Castle/Put/Null
// update, and (for Crazyhouse) what moves a Put may add.
type VariantKind uint8

const (
	VariantStandard VariantKind = iota
	VariantCrazyhouse
	VariantThreeCheck
)

func (v VariantKind) String() string {
	switch v {
	case VariantCrazyhouse:
		return "crazyhouse"
	case VariantThreeCheck:
		return "3check"
	}
	return "standard"
}

// applyVariantHooks runs the post-move bookkeeping a variant layers on top
// of the shared board/castling/ep/clock update already applied to np.
func applyVariantHooks(np *Position, prev Position, m Move) {
	switch np.Variant {
	case VariantCrazyhouse:
		applyCrazyhouseHooks(np, prev, m)
	case VariantThreeCheck:
		applyThreeCheckHooks(np, prev, m)
	}
}

// applyCrazyhouseHooks credits the mover's pocket on a capture (a pawn if
// the captured piece was promoted, its own role otherwise — so taking a
// promoted queen refunds a pawn, not a queen) and debits it on a drop.
func applyCrazyhouseHooks(np *Position, prev Position, m Move) {
	mover := prev.Turn
	switch m.Kind {
	case KindNormal:
		if m.Capture != NoRole {
			refund := m.Capture
			if prev.Board.IsPromoted(m.To) {
				refund = Pawn
			}
			np.Pockets = np.Pockets.add(mover, refund, 1)
		}
	case KindEnPassant:
		np.Pockets = np.Pockets.add(mover, Pawn, 1)
	case KindPut:
		np.Pockets = np.Pockets.add(mover, m.Role, -1)
	}
}

// applyThreeCheckHooks decrements the opponent's remaining-checks counter
// when the move just played gives check.
func applyThreeCheckHooks(np *Position, prev Position, m Move) {
	if np.isInCheck(np.Turn) {
		np.Checks = np.Checks.receiveCheck(np.Turn)
	}
}

package board

// AttemptMove plays color at p. A rejected move leaves the grid and the ko
// memory exactly as they were.
func (b *Board) AttemptMove(p Point, color Stone) MoveResult {
	preHash := b.hash
	res, j := b.apply(p, color)
	if !res.Accepted {
		return res
	}
	b.prevHash = preHash
	b.lastMove = j
	b.hasPrev = true
	return res
}

// Simulate runs the full move pipeline and always rolls it back.
func (b *Board) Simulate(p Point, color Stone) MoveResult {
	res, j := b.apply(p, color)
	b.rollback(j)
	return res
}

// IsSuicide reports whether playing color at p would leave its own group
// without liberties after captures are taken.
func (b *Board) IsSuicide(p Point, color Stone) bool {
	return b.Simulate(p, color).Reason == ReasonSuicide
}

// apply places the stone, removes captured groups and checks suicide and ko.
// On rejection the grid is already restored and the journal is nil.
func (b *Board) apply(p Point, color Stone) (MoveResult, journal) {
	if !color.IsPlayer() {
		panic("board: cannot play " + color.String())
	}
	if !b.InBounds(p) {
		return MoveResult{Reason: ReasonOutOfBounds}, nil
	}
	idx := b.index(p)
	if b.grid[idx] != Empty {
		return MoveResult{Reason: ReasonOccupied}, nil
	}

	// Captures are found while p is still empty, so "one liberty left"
	// means p is that liberty.
	captures := b.WouldCapture(p, color)

	j := make(journal, 0, 1+len(captures))
	b.record(&j, idx, color)
	captured := 0
	for _, grp := range captures {
		for _, q := range grp {
			b.record(&j, b.index(q), Empty)
		}
		captured += len(grp)
	}

	if b.CountLiberties(b.FindGroup(p)) == 0 {
		b.rollback(j)
		return MoveResult{Reason: ReasonSuicide}, nil
	}
	if b.repeatsPrevious(j) {
		b.rollback(j)
		return MoveResult{Reason: ReasonKo}, nil
	}
	return MoveResult{Accepted: true, StonesCaptured: captured}, j
}

// repeatsPrevious reports whether the grid, with j applied, equals the grid
// as it was before the last committed move. The fingerprint filters; a hit
// is confirmed on the cells touched by either move, since every other cell
// is unchanged in both.
func (b *Board) repeatsPrevious(j journal) bool {
	if !b.hasPrev || b.hash != b.prevHash {
		return false
	}
	want := make(map[int]Stone, len(j)+len(b.lastMove))
	for i := len(j) - 1; i >= 0; i-- {
		want[j[i].idx] = j[i].prev
	}
	for i := len(b.lastMove) - 1; i >= 0; i-- {
		want[b.lastMove[i].idx] = b.lastMove[i].prev
	}
	for idx, s := range want {
		if b.grid[idx] != s {
			return false
		}
	}
	return true
}

package board

// IsConnected reports whether the occupied cells of occ form a single
// orthogonally connected group, by flood filling from start. A start cell
// that is not occupied never reaches anything and yields false.
func IsConnected(occ BitBoard, start uint8) bool {
	if !IsBitSet(occ, start) {
		return false
	}
	// Every cell is pushed at most once, since its bit is cleared on push.
	var stack [NumCells]uint8
	remaining := occ &^ (1 << start)
	stack[0] = start
	sp := 1

	for sp > 0 {
		sp--
		idx := stack[sp]
		x, y := IndexToCoord(idx)
		for _, nb := range [4]struct {
			ok  bool
			idx uint8
		}{
			{x > 0, idx - 1},
			{x < Width-1, idx + 1},
			{y > 0, idx - Width},
			{y < Height-1, idx + Width},
		} {
			if nb.ok && remaining&(1<<nb.idx) != 0 {
				remaining &^= 1 << nb.idx
				stack[sp] = nb.idx
				sp++
			}
		}
	}
	return remaining == 0
}

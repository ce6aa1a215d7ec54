package board

// ComputeStepNeighbors returns the cells surrounding (x, y) in all eight
// directions. StepNeighbors is generated from it.
func ComputeStepNeighbors(x, y uint8) BitBoard {
	var bb BitBoard
	bb = SetBit(bb, x-1, y-1)
	bb = SetBit(bb, x, y-1)
	bb = SetBit(bb, x+1, y-1)

	bb = SetBit(bb, x-1, y)
	bb = SetBit(bb, x+1, y)

	bb = SetBit(bb, x-1, y+1)
	bb = SetBit(bb, x, y+1)
	bb = SetBit(bb, x+1, y+1)
	return bb
}

// ComputeJumpNeighbors returns the cells two orthogonal steps away from
// (x, y). JumpNeighbors is generated from it.
func ComputeJumpNeighbors(x, y uint8) BitBoard {
	var bb BitBoard
	bb = SetBit(bb, x, y-2)
	bb = SetBit(bb, x-2, y)
	bb = SetBit(bb, x+2, y)
	bb = SetBit(bb, x, y+2)
	return bb
}

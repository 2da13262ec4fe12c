package main

// undoSlot keeps the grid as it was before the last stroke. It holds at most
// one snapshot and is emptied by a single undo.
type undoSlot struct {
	grid TileGrid
	set  bool
}

func (u *undoSlot) record(grid TileGrid) {
	u.grid = grid.Clone()
	u.set = true
}

func (u *undoSlot) take() (TileGrid, bool) {
	if !u.set {
		return nil, false
	}
	grid := u.grid
	u.clear()
	return grid, true
}

func (u *undoSlot) clear() {
	u.grid = nil
	u.set = false
}

func (u *undoSlot) empty() bool {
	return !u.set
}

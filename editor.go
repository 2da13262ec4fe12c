package main

type painterState int

const (
	painterIdle painterState = iota
	painterPainting
)

// Painter applies strokes to a grid under a symmetry mode. A stroke runs
// from PointerDown to PointerUp and undoes as one unit.
type Painter struct {
	target   func() *TileGrid
	symmetry Symmetry
	state    painterState
	undo     undoSlot
}

func NewPainter(target func() *TileGrid) *Painter {
	return &Painter{target: target}
}

// SetSymmetry changes how later paint propagates. Tiles already painted are
// left alone.
func (p *Painter) SetSymmetry(s Symmetry) {
	p.symmetry = s
}

func (p *Painter) Painting() bool {
	return p.state == painterPainting
}

// PointerDown starts a stroke when c is a tile of the target grid. Anything
// else is ignored.
func (p *Painter) PointerDown(c Cell, ok bool, index int) bool {
	if p.state != painterIdle || !ok {
		return false
	}
	grid := p.grid()
	if grid == nil || !grid.InBounds(c) {
		return false
	}
	p.undo.record(*grid)
	p.state = painterPainting
	p.apply(*grid, c, index)
	return true
}

func (p *Painter) PointerMove(c Cell, ok bool, index int) bool {
	if p.state != painterPainting || !ok {
		return false
	}
	grid := p.grid()
	if grid == nil || !grid.InBounds(c) {
		return false
	}
	p.apply(*grid, c, index)
	return true
}

// PointerUp ends the stroke. Leaving the surface ends it the same way.
func (p *Painter) PointerUp() {
	p.state = painterIdle
}

func (p *Painter) CanUndo() bool {
	return p.state == painterIdle && !p.undo.empty()
}

// Undo restores the grid from before the last stroke. It only works while
// idle, and a second call without a new stroke does nothing.
func (p *Painter) Undo() bool {
	if p.state != painterIdle {
		return false
	}
	prev, ok := p.undo.take()
	if !ok {
		return false
	}
	grid := p.grid()
	if grid == nil {
		return false
	}
	*grid = prev
	return true
}

// Forget drops the snapshot, used when the grid is replaced wholesale.
func (p *Painter) Forget() {
	p.undo.clear()
	p.state = painterIdle
}

func (p *Painter) grid() *TileGrid {
	if p.target == nil {
		return nil
	}
	return p.target()
}

func (p *Painter) apply(grid TileGrid, c Cell, index int) {
	grid.paint(c, index, p.symmetry)
}

package core

import (
	"errors"
	"fmt"
	"iter"
)

// ErrGridSize is returned when a grid's cell count does not match its dimensions.
var ErrGridSize = errors.New("grid: cell count does not match dimensions")

// Grid is a fixed-size 2D container. Cells are stored in row-major order:
// index = y*width + x. A Grid is immutable once built.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid creates a grid over a copy of cells.
// Fails if a dimension is negative or len(cells) != width*height.
func NewGrid[T any](width, height int, cells []T) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrGridSize, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrGridSize, len(cells), width, height)
	}
	owned := make([]T, len(cells))
	copy(owned, cells)
	return &Grid[T]{width: width, height: height, cells: owned}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Len returns the total number of cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y).
// Returns the zero value and false for out-of-bounds coordinates.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.width+x], true
}

// Rows returns a sequence of (row index, row view) pairs in storage order.
// Each call starts a fresh iteration. Row views alias the grid's storage and
// must not be modified.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.height; y++ {
			row := g.cells[y*g.width : (y+1)*g.width : (y+1)*g.width]
			if !yield(y, row) {
				return
			}
		}
	}
}

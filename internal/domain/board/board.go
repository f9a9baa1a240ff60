package board

import (
	"fmt"
	"strings"

	errs "gogame/internal/errors"
)

// Board owns the grid and every rule of play. It is not safe for concurrent
// use: a move places, captures, checks and possibly reverts in several steps,
// and Simulate mutates the grid before restoring it.
type Board struct {
	size    int
	grid    []Stone // row-major, index y*size+x
	zobrist *zobristTable
	hash    uint64

	// One-ply ko memory: fingerprint of the grid before the last committed
	// move and that move's journal.
	prevHash uint64
	lastMove journal
	hasPrev  bool
}

// change is one journal entry: the cell and the value it held before.
type change struct {
	idx  int
	prev Stone
}

type journal []change

func New(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("board: invalid size %d", size))
	}
	return &Board{
		size:    size,
		grid:    make([]Stone, size*size),
		zobrist: zobristFor(size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.size && p.Y < b.size
}

func (b *Board) index(p Point) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("board: point %v outside %dx%d grid", p, b.size, b.size))
	}
	return p.Y*b.size + p.X
}

// At returns the stone at p. Reading outside the grid is a caller bug and panics.
func (b *Board) At(p Point) Stone {
	return b.grid[b.index(p)]
}

// Hash is the Zobrist fingerprint of the current grid.
func (b *Board) Hash() uint64 {
	return b.hash
}

// Grid returns a copy of the stones indexed [y][x].
func (b *Board) Grid() [][]Stone {
	rows := make([][]Stone, b.size)
	for y := range rows {
		rows[y] = make([]Stone, b.size)
		copy(rows[y], b.grid[y*b.size:(y+1)*b.size])
	}
	return rows
}

// Place puts a stone (or Empty) directly on the grid, bypassing the rules.
// It is meant for building positions, so it also forgets the ko memory.
func (b *Board) Place(p Point, s Stone) error {
	if !b.InBounds(p) {
		return errs.ErrOutOfBounds
	}
	if s != Empty && !s.IsPlayer() {
		return errs.ErrInvalidColor
	}
	b.write(b.index(p), s)
	b.forgetKo()
	return nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			switch b.grid[y*b.size+x] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// write sets a cell and keeps the fingerprint in step.
func (b *Board) write(idx int, s Stone) {
	old := b.grid[idx]
	b.hash ^= b.zobrist.key(idx, old) ^ b.zobrist.key(idx, s)
	b.grid[idx] = s
}

// record writes a cell and remembers its previous value in j.
func (b *Board) record(j *journal, idx int, s Stone) {
	*j = append(*j, change{idx: idx, prev: b.grid[idx]})
	b.write(idx, s)
}

func (b *Board) rollback(j journal) {
	for i := len(j) - 1; i >= 0; i-- {
		b.write(j[i].idx, j[i].prev)
	}
}

func (b *Board) forgetKo() {
	b.prevHash = 0
	b.lastMove = nil
	b.hasPrev = false
}

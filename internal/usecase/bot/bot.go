package bot

import (
	"golang.org/x/exp/rand"

	"gogame/internal/domain/board"
	"gogame/internal/errors"
	"gogame/internal/usecase/game"
)

// Table is the part of a session the agent reads and commits through.
type Table interface {
	Board() *board.Board
	BotColor() board.Stone
	GameOver() bool
	PlayMoveAs(color board.Stone, p board.Point) (game.Result, error)
	PassTurnAs(color board.Stone) (game.Result, error)
}

// Choice is either a point to play or a pass.
type Choice struct {
	Point board.Point
	Pass  bool
}

// Agent picks moves with a capture-first, stay-connected heuristic. All
// randomness comes from the source it was built with.
type Agent struct {
	rng *rand.Rand
}

func NewAgent(src rand.Source) *Agent {
	return &Agent{rng: rand.New(src)}
}

func NewSeededAgent(seed uint64) *Agent {
	return NewAgent(rand.NewSource(seed))
}

// SelectMove chooses among legal moves: any capture first, then moves next
// to the bot's own stones, then anything. With no legal move it passes.
func (a *Agent) SelectMove(t Table) Choice {
	b := t.Board()
	color := t.BotColor()

	var capturing, plain []board.Point
	size := b.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := board.Point{X: x, Y: y}
			if b.At(p) != board.Empty || b.IsSuicide(p, color) {
				continue
			}
			// Simulate the whole move: ko can still forbid an apparent capture.
			res := b.Simulate(p, color)
			if !res.Accepted {
				continue
			}
			if res.StonesCaptured > 0 {
				capturing = append(capturing, p)
			} else {
				plain = append(plain, p)
			}
		}
	}

	if len(capturing) > 0 {
		return Choice{Point: a.pick(capturing)}
	}
	if len(plain) == 0 {
		return Choice{Pass: true}
	}

	var connected []board.Point
	for _, p := range plain {
		if touches(b, p, color) {
			connected = append(connected, p)
		}
	}
	if len(connected) > 0 {
		return Choice{Point: a.pick(connected)}
	}
	return Choice{Point: a.pick(plain)}
}

// Play selects a move and commits it through the session as the bot.
func (a *Agent) Play(t Table) (Choice, game.Result, error) {
	if t.GameOver() {
		return Choice{}, game.Result{}, errors.ErrSessionOver
	}
	c := a.SelectMove(t)
	if c.Pass {
		res, err := t.PassTurnAs(t.BotColor())
		return c, res, err
	}
	res, err := t.PlayMoveAs(t.BotColor(), c.Point)
	return c, res, err
}

func (a *Agent) pick(points []board.Point) board.Point {
	return points[a.rng.Intn(len(points))]
}

func touches(b *board.Board, p board.Point, color board.Stone) bool {
	for _, n := range b.Neighbors(p) {
		if b.At(n) == color {
			return true
		}
	}
	return false
}

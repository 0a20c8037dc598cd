// Package snake implements the game simulation: a fixed 30×30 arena, a
// single snake advanced on a fixed movement cadence, food spawned on a
// slower independent cadence, and a hard reset on terminal collision.
//
// The package is free of presentation concerns. The platform layer feeds
// elapsed wall time and input frames into Advance and reads entity state
// back for drawing.
package snake

import (
	"math/rand"
	"time"

	"github.com/rosowskimik/tui-snake/internal/core"
)

// Simulation cadences. Movement runs an order of magnitude faster than food
// spawning; both are fixed and independent of the render frame rate.
const (
	MoveInterval  = 100 * time.Millisecond
	SpawnInterval = time.Second
)

// Spawn layout: the head starts at (3, 3) heading right, with a single body
// segment directly below it.
var (
	spawnHead = Position{X: 3, Y: 3}
	spawnTail = Position{X: 3, Y: 2}
)

const spawnDirection = DirRight

// Game holds one session and advances it deterministically. All methods are
// single-goroutine: the platform calls Advance once per rendered frame with
// the elapsed wall time and that frame's input, then reads entities back for
// drawing.
type Game struct {
	rng  *rand.Rand
	tick uint64

	// Snake state, head at index 0.
	segments  []Position
	direction Direction

	food []Position

	// Elapsed-time accumulators for the two cadences. A due tick subtracts
	// its interval instead of zeroing the accumulator, so timing error never
	// builds up across frames.
	moveAcc  time.Duration
	spawnAcc time.Duration

	// lastTail is the tail cell recorded by the latest movement step; growth
	// consumes it to know where the appended segment goes.
	lastTail    Position
	hasLastTail bool

	// Direction requested by input, pending until a movement tick applies it.
	requested    Direction
	hasRequested bool

	eaten int // food eaten since the last reset
}

// New creates a game seeded for a deterministic food sequence and spawns the
// initial snake.
func New(seed int64) *Game {
	g := &Game{
		rng: rand.New(rand.NewSource(seed)),
	}
	g.reset()
	return g
}

// reset is the hard reset: every food and body segment is destroyed and the
// initial spawn layout is recreated before the next tick. The RNG and the
// cadence accumulators keep running across resets; only entities and the
// eaten count start over.
func (g *Game) reset() {
	g.segments = []Position{spawnHead, spawnTail}
	g.direction = spawnDirection
	g.food = g.food[:0]
	g.hasLastTail = false
	g.hasRequested = false
	g.eaten = 0
}

// Advance accumulates elapsed real time and runs every simulation tick that
// has come due. The input frame is reduced to at most one direction request,
// which the next movement tick applies.
func (g *Game) Advance(dt time.Duration, input core.InputFrame) {
	g.processInput(input)

	g.moveAcc += dt
	for g.moveAcc >= MoveInterval {
		g.moveAcc -= MoveInterval
		g.moveTick()
	}

	g.spawnAcc += dt
	for g.spawnAcc >= SpawnInterval {
		g.spawnAcc -= SpawnInterval
		g.spawnFood()
	}
}

// processInput reduces the frame's direction keys to a single pending
// request, first match winning. The request stays pending until a movement
// tick consumes it; a later frame may overwrite it.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLeft):
		g.requested, g.hasRequested = DirLeft, true
	case input.Has(core.ActionRight):
		g.requested, g.hasRequested = DirRight, true
	case input.Has(core.ActionDown):
		g.requested, g.hasRequested = DirDown, true
	case input.Has(core.ActionUp):
		g.requested, g.hasRequested = DirUp, true
	}
}

// moveTick runs one movement-cadence tick in the guaranteed order: direction
// change first, then movement, then eating, then growth, with the game-over
// check resolving last.
func (g *Game) moveTick() {
	g.tick++

	if g.hasRequested {
		g.turn(g.requested)
		g.hasRequested = false
	}

	collided := g.step()

	if g.eat() {
		g.grow()
	}

	if collided {
		g.reset()
	}
}

// turn applies a requested heading. A request for the exact opposite of the
// current heading is dropped, so the head never reverses onto its neighbor
// segment within one tick.
func (g *Game) turn(want Direction) {
	if want != g.direction.Opposite() {
		g.direction = want
	}
}

// step moves the snake one cell in its current heading and reports whether
// the move is a terminal collision. Both the collision test and the body
// shift work from the pre-move state: the new head is compared against every
// cell the snake occupied before the move, and each trailing segment takes
// the cell the one ahead of it held before the move.
func (g *Game) step() bool {
	if len(g.segments) == 0 {
		panic("snake: no head segment")
	}

	prev := make([]Position, len(g.segments))
	copy(prev, g.segments)

	dx, dy := g.direction.delta()
	newHead := Position{X: prev[0].X + dx, Y: prev[0].Y + dy}

	collided := !newHead.InArena()
	for _, seg := range prev {
		if seg == newHead {
			collided = true
			break
		}
	}

	g.segments[0] = newHead
	for i := 1; i < len(g.segments); i++ {
		g.segments[i] = prev[i-1]
	}

	g.lastTail = prev[len(prev)-1]
	g.hasLastTail = true

	return collided
}

// eat destroys every food under the head and reports whether any was there.
// Stacked food all disappears at once; the caller still grows by at most one
// segment for the whole tick.
func (g *Game) eat() bool {
	head := g.segments[0]
	ate := false
	kept := g.food[:0]
	for _, f := range g.food {
		if f == head {
			ate = true
			g.eaten++
			continue
		}
		kept = append(kept, f)
	}
	g.food = kept
	return ate
}

// grow appends one segment at the tail cell recorded by this tick's movement
// step. Growth without a recorded cell means the tick order was violated;
// that state is unrecoverable.
func (g *Game) grow() {
	if !g.hasLastTail {
		panic("snake: grow without a prior movement step")
	}
	g.segments = append(g.segments, g.lastTail)
	g.hasLastTail = false
}

// spawnFood places one food at a uniformly random arena cell. Landing on the
// snake or on existing food is allowed: food under the snake waits until the
// head passes over that cell again, and stacked food resolves in a single
// eating tick.
func (g *Game) spawnFood() {
	g.food = append(g.food, Position{
		X: g.rng.Intn(ArenaWidth),
		Y: g.rng.Intn(ArenaHeight),
	})
}

// Length returns the current number of snake segments, head included.
func (g *Game) Length() int {
	return len(g.segments)
}

// Eaten returns the number of food eaten since the last reset.
func (g *Game) Eaten() int {
	return g.eaten
}

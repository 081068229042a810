package breakout

import (
	"fmt"
	"math"

	"github.com/rosasor/brick-breaker/internal/config"
)

// State is the round state machine.
type State int

const (
	StateServing   State = iota // Balls resting on the paddle, awaiting launch
	StateInPlay                 // At least one ball moving
	StateLevelWon               // No bricks left
	StateLevelLost              // No lives left
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateServing:
		return "serving"
	case StateInPlay:
		return "in_play"
	case StateLevelWon:
		return "level_won"
	case StateLevelLost:
		return "level_lost"
	default:
		return "?"
	}
}

// Terminal reports whether the round is over.
func (s State) Terminal() bool {
	return s == StateLevelWon || s == StateLevelLost
}

// Input is the command set consumed by one tick.
type Input struct {
	Move   int  // -1 left, 0 none, +1 right
	Launch bool // Launch every resting ball
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventBrickHit EventKind = iota
	EventBrickDestroyed
	EventPowerUpSpawned
	EventPowerUpCaught
	EventLifeLost
)

// Event is reported by Events for the most recent tick.
type Event struct {
	Kind    EventKind
	Points  int  // EventBrickDestroyed
	PowerUp Kind // EventPowerUpSpawned, EventPowerUpCaught
}

// Round owns all entities of one level and advances them tick by tick.
// It is not safe for concurrent use; callers interact between ticks.
type Round struct {
	cfg   config.BreakoutConfig
	level LevelName
	rng   Rand

	paddle   *Paddle
	balls    []*Ball
	bricks   []*Brick
	powerUps []*PowerUp

	state       State
	score       int
	lives       int
	tick        int
	bounceSpeed float64
	events      []Event
}

// NewRound validates cfg, generates the level and places one ball on the
// paddle. Invalid configuration and unknown levels fail here, never mid-tick.
func NewRound(cfg config.BreakoutConfig, level LevelName, rng Rand) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("breakout: nil random source")
	}
	bricks, err := Generate(level, cfg)
	if err != nil {
		return nil, err
	}

	r := &Round{
		cfg:         cfg,
		level:       level,
		rng:         rng,
		paddle:      NewPaddle(cfg),
		bricks:      bricks,
		state:       StateServing,
		lives:       cfg.Gameplay.Lives,
		bounceSpeed: math.Hypot(cfg.Ball.Speed, cfg.Ball.Speed),
	}
	r.balls = []*Ball{r.newServingBall()}
	return r, nil
}

// carry seeds the round with score and lives from a previous level.
func (r *Round) carry(score, lives int) {
	r.score = score
	if lives > 0 {
		r.lives = lives
	}
}

func (r *Round) newServingBall() *Ball {
	speed := r.cfg.Ball.Speed
	dx := speed
	if r.rng.IntN(2) == 0 {
		dx = -speed
	}
	b := &Ball{DX: dx, DY: -speed, Radius: r.cfg.Ball.Radius}
	b.Rest(r.paddle)
	return b
}

// MovePaddle moves the paddle one step in dir (-1, 0, +1).
func (r *Round) MovePaddle(dir int) {
	if r.state.Terminal() {
		return
	}
	r.paddle.Move(dir)
}

// Launch puts every resting ball in play.
func (r *Round) Launch() {
	if r.state.Terminal() {
		return
	}
	launched := false
	for _, b := range r.balls {
		if !b.InPlay {
			b.InPlay = true
			launched = true
		}
	}
	if launched {
		r.state = StateInPlay
	}
}

// Tick advances the round by one frame and returns the resulting state.
// Terminal states are sticky: further ticks change nothing.
func (r *Round) Tick(in Input) State {
	if r.state.Terminal() {
		return r.state
	}
	r.events = r.events[:0]
	r.tick++

	r.MovePaddle(in.Move)
	r.paddle.Tick()
	if in.Launch {
		r.Launch()
	}

	r.updateBalls()
	r.sweepBricks()
	r.updatePowerUps()
	r.evaluate()
	return r.state
}

func (r *Round) updateBalls() {
	fieldW := r.cfg.Field.Width
	fieldH := r.cfg.Field.Height
	paddleBox := r.paddle.Box()

	live := r.balls[:0]
	for _, b := range r.balls {
		b.Tick(r.paddle, fieldW)
		if !b.InPlay {
			live = append(live, b)
			continue
		}
		if b.Out(fieldH) {
			continue
		}
		if b.Box().Overlaps(paddleBox) {
			PaddleBounce(b, r.paddle, r.bounceSpeed)
		}
		r.collideBricks(b)
		live = append(live, b)
	}
	clear(r.balls[len(live):])
	r.balls = live
}

// collideBricks hits every live brick the ball overlaps. Bounce sides are
// classified against the velocity the ball entered the pass with and each
// axis flips at most once, so the outcome does not depend on brick order.
func (r *Round) collideBricks(b *Ball) {
	box := b.Box()
	dx, dy := b.DX, b.DY
	var flipX, flipY bool

	for _, br := range r.bricks {
		if br.Destroyed() || !box.Overlaps(br.Box) {
			continue
		}
		switch impact := ImpactOf(box, dx, dy, br.Box); {
		case impact == ImpactNone:
		case impact.Vertical():
			flipY = true
		default:
			flipX = true
		}
		r.hitBrick(br)
	}

	if flipX {
		b.DX = -dx
	}
	if flipY {
		b.DY = -dy
	}
}

func (r *Round) hitBrick(br *Brick) {
	destroyed, points := br.Hit()
	if !destroyed {
		r.events = append(r.events, Event{Kind: EventBrickHit})
		return
	}
	r.score += points
	r.events = append(r.events, Event{Kind: EventBrickDestroyed, Points: points})

	cx, cy := br.Box.Center()
	if p, ok := MaybeSpawn(r.rng, r.cfg.PowerUps, cx, cy); ok {
		r.powerUps = append(r.powerUps, p)
		r.events = append(r.events, Event{Kind: EventPowerUpSpawned, PowerUp: p.Kind})
	}
}

// sweepBricks removes destroyed bricks after the collision pass.
func (r *Round) sweepBricks() {
	alive := r.bricks[:0]
	for _, br := range r.bricks {
		if !br.Destroyed() {
			alive = append(alive, br)
		}
	}
	clear(r.bricks[len(alive):])
	r.bricks = alive
}

func (r *Round) updatePowerUps() {
	paddleBox := r.paddle.Box()
	fieldH := r.cfg.Field.Height

	falling := r.powerUps[:0]
	var caught []Kind
	for _, p := range r.powerUps {
		p.Tick()
		if p.Box.Overlaps(paddleBox) {
			caught = append(caught, p.Kind)
			continue
		}
		if p.Missed(fieldH) {
			continue
		}
		falling = append(falling, p)
	}
	clear(r.powerUps[len(falling):])
	r.powerUps = falling

	for _, k := range caught {
		r.applyPowerUp(k)
	}
}

func (r *Round) applyPowerUp(k Kind) {
	r.events = append(r.events, Event{Kind: EventPowerUpCaught, PowerUp: k})
	switch k {
	case KindExtraLife:
		r.lives++
	case KindMultiBall:
		r.multiBall()
	default:
		r.paddle.ApplyPowerUp(k)
	}
}

// multiBall adds up to two clones of the balls in play: the first two balls
// when there are several, or two clones of a single ball.
func (r *Round) multiBall() {
	var inPlay []*Ball
	for _, b := range r.balls {
		if b.InPlay {
			inPlay = append(inPlay, b)
		}
	}
	if len(inPlay) == 0 {
		return
	}
	for i := range 2 {
		c := inPlay[i%len(inPlay)].Clone(r.rng)
		// Clones of clones would otherwise compound the speed-up
		c.limitSpeed(r.bounceSpeed * config.MaxCloneFactor)
		r.balls = append(r.balls, c)
	}
}

func (r *Round) evaluate() {
	if len(r.bricks) == 0 {
		r.state = StateLevelWon
		return
	}
	if len(r.balls) > 0 {
		return
	}

	r.lives--
	r.events = append(r.events, Event{Kind: EventLifeLost})
	if r.lives <= 0 {
		r.lives = 0
		r.state = StateLevelLost
		return
	}
	r.balls = append(r.balls, r.newServingBall())
	r.state = StateServing
}

// State returns the current round state.
func (r *Round) State() State {
	return r.state
}

// Level returns the level being played.
func (r *Round) Level() LevelName {
	return r.level
}

// Score returns the points earned so far.
func (r *Round) Score() int {
	return r.score
}

// Lives returns the remaining lives.
func (r *Round) Lives() int {
	return r.lives
}

// Ticks returns the number of ticks simulated.
func (r *Round) Ticks() int {
	return r.tick
}

// Paddle returns the paddle. Callers must not mutate it.
func (r *Round) Paddle() *Paddle {
	return r.paddle
}

// Balls returns the live balls. Callers must not mutate the slice.
func (r *Round) Balls() []*Ball {
	return r.balls
}

// Bricks returns the remaining bricks. Callers must not mutate the slice.
func (r *Round) Bricks() []*Brick {
	return r.bricks
}

// PowerUps returns the falling power-ups. Callers must not mutate the slice.
func (r *Round) PowerUps() []*PowerUp {
	return r.powerUps
}

// Events returns what happened during the most recent tick.
func (r *Round) Events() []Event {
	return r.events
}

// Config returns the configuration the round was built with.
func (r *Round) Config() config.BreakoutConfig {
	return r.cfg
}

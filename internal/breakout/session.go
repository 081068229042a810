package breakout

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rosasor/brick-breaker/internal/config"
	"github.com/rosasor/brick-breaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BorderHoriz = '─'
)

// Minimum terminal size Render can draw into.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Mode selects how a session strings rounds together.
type Mode int

const (
	ModeSingle   Mode = iota // One level; clearing it wins
	ModeCampaign             // Every level in order, score and lives carried over
)

// Session is the application-side driver around Round: it turns input
// frames into round commands, advances the campaign, handles pause and
// restart and draws the round onto a cell screen.
type Session struct {
	cfg    config.BreakoutConfig
	mode   Mode
	start  LevelName
	logger *log.Logger

	runtime    core.RuntimeConfig
	rng        Rand
	round      *Round
	levelIndex int
	paused     bool
	over       bool
	won        bool
}

// NewSession validates the configuration and start level. A nil logger
// discards all log output.
func NewSession(cfg config.BreakoutConfig, mode Mode, start LevelName, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := ParseLevel(string(start))
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:    cfg,
		mode:   mode,
		start:  start,
		logger: logger,
	}, nil
}

// ID names the score board this session records to.
func (s *Session) ID() string {
	if s.mode == ModeCampaign {
		return "campaign"
	}
	return s.start.Slug()
}

// Title returns the display name for this session.
func (s *Session) Title() string {
	if s.mode == ModeCampaign {
		return "Brick Breaker: Campaign"
	}
	return "Brick Breaker: " + string(s.start)
}

// Reset seeds the random source from runtime and starts from the first level.
func (s *Session) Reset(runtime core.RuntimeConfig) error {
	s.runtime = runtime
	s.rng = NewRand(runtime.Seed)
	return s.restart()
}

// restart begins again with the current random stream, so a replay after
// game over does not repeat the previous game.
func (s *Session) restart() error {
	s.paused = false
	s.over = false
	s.won = false
	s.levelIndex = levelIndex(s.start)
	return s.startRound(0, 0)
}

func (s *Session) startRound(score, lives int) error {
	level := levels[s.levelIndex].Name
	round, err := NewRound(s.cfg, level, s.rng)
	if err != nil {
		return err
	}
	round.carry(score, lives)
	s.round = round
	s.logger.Info("round started", "level", level, "score", round.Score(), "lives", round.Lives())
	return nil
}

func levelIndex(name LevelName) int {
	for i, l := range levels {
		if l.Name == name {
			return i
		}
	}
	return 0
}

// Round returns the active round.
func (s *Session) Round() *Round {
	return s.round
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.round == nil {
		return core.StepResult{}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && s.over {
		if err := s.restart(); err != nil {
			s.logger.Error("restart failed", "error", err)
		}
		return core.StepResult{State: s.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !s.over {
		s.paused = !s.paused
	}

	if s.paused || s.over {
		return core.StepResult{State: s.State()}
	}

	state := s.round.Tick(Input{
		Move:   in.Direction(),
		Launch: in.Has(core.ActionLaunch),
	})
	s.logEvents()

	switch state {
	case StateLevelWon:
		s.levelWon()
	case StateLevelLost:
		s.over = true
		s.logger.Info("level lost", "level", s.round.Level(), "score", s.round.Score())
	}

	return core.StepResult{State: s.State()}
}

func (s *Session) levelWon() {
	s.logger.Info("level won", "level", s.round.Level(), "score", s.round.Score(), "ticks", s.round.Ticks())

	if s.mode == ModeCampaign && s.levelIndex+1 < len(levels) {
		s.levelIndex++
		if err := s.startRound(s.round.Score(), s.round.Lives()); err != nil {
			// Config was validated up front; treat as end of campaign.
			s.logger.Error("next level failed", "error", err)
			s.over = true
			s.won = true
		}
		return
	}

	s.over = true
	s.won = true
}

func (s *Session) logEvents() {
	for _, e := range s.round.Events() {
		switch e.Kind {
		case EventPowerUpCaught:
			s.logger.Debug("power-up caught", "kind", e.PowerUp, "lives", s.round.Lives(), "balls", len(s.round.Balls()))
		case EventLifeLost:
			s.logger.Debug("life lost", "lives", s.round.Lives())
		}
	}
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	if s.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    s.round.Score(),
		Lives:    s.round.Lives(),
		GameOver: s.over,
		Won:      s.won,
		Paused:   s.paused,
	}
}

// Render draws the current session state to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if s.round == nil {
		return
	}

	snap := s.round.Snapshot()
	v := newViewport(s.cfg.Field, dst)

	s.renderHUD(dst, snap)
	renderBricks(dst, v, snap.Bricks)
	renderPowerUps(dst, v, snap.PowerUps)
	renderPaddle(dst, v, snap.Paddle)
	renderBalls(dst, v, snap.Balls)
	s.renderOverlay(dst, snap)
}

// viewport maps field units to screen cells. Row 0 is the HUD, row 1 a
// separator and the last row is kept for hints.
type viewport struct {
	top    int
	w, h   int
	scaleX float64
	scaleY float64
}

func newViewport(field config.FieldConfig, dst *core.Screen) viewport {
	v := viewport{top: 2, w: dst.Width(), h: dst.Height() - 3}
	v.scaleX = float64(v.w) / field.Width
	v.scaleY = float64(v.h) / field.Height
	return v
}

func (v viewport) x(fx float64) int {
	return int(math.Floor(fx * v.scaleX))
}

func (v viewport) y(fy float64) int {
	return v.top + int(math.Floor(fy*v.scaleY))
}

// rect converts a box to cells, keeping at least one cell in each direction.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.x(b.Left()), v.y(b.Top())
	x1, y1 := v.x(b.Right()), v.y(b.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

func (s *Session) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	if snap.Lives <= 5 {
		lives = "Lives: " + strings.Repeat("♥", snap.Lives)
	}
	x := (dst.Width() - len([]rune(lives))) / 2
	dst.DrawTextColored(x, 0, lives, core.ColorRed)

	var levelText string
	if s.mode == ModeCampaign {
		levelText = fmt.Sprintf("%s %d/%d", snap.Level, s.levelIndex+1, len(levels))
	} else {
		levelText = string(snap.Level)
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	for x := range dst.Width() {
		dst.SetColored(x, 1, BorderHoriz, core.ColorGray)
	}
	info := fmt.Sprintf(" Balls: %d ", snap.BallCount)
	if snap.EffectTicks > 0 {
		info += fmt.Sprintf("Effect: %ds ", (snap.EffectTicks+59)/60)
	}
	dst.DrawTextColored(1, 1, info, core.ColorGray)
}

func renderBricks(dst *core.Screen, v viewport, bricks []BrickView) {
	for _, br := range bricks {
		r := v.rect(br.Box)
		// Leave a one-cell gap between neighbours when there is room
		if r.W > 2 {
			r.W--
		}
		dst.DrawRect(r, brickGlyph(br), br.Color)
	}
}

func brickGlyph(br BrickView) rune {
	if br.Type == BrickNormal {
		return '█'
	}
	switch br.HitsLeft {
	case 3:
		return '█'
	case 2:
		return '▓'
	default:
		return '▒'
	}
}

func renderPowerUps(dst *core.Screen, v viewport, powerUps []PowerUpView) {
	for _, p := range powerUps {
		cx, cy := p.Box.Center()
		dst.SetColored(v.x(cx), v.y(cy), p.Kind.Glyph(), p.Color)
	}
}

func renderPaddle(dst *core.Screen, v viewport, paddle core.Box) {
	r := v.rect(paddle)
	r.H = 1
	dst.DrawRect(r, PaddleChar, core.ColorCyan)
}

func renderBalls(dst *core.Screen, v viewport, balls []BallView) {
	for _, b := range balls {
		dst.SetColored(v.x(b.X), v.y(b.Y), BallChar, core.ColorWhite)
	}
}

// renderOverlay draws state messages.
func (s *Session) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case s.over && s.won:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to play again", snap.Score))
	case s.over:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to play again", snap.Score))
	case s.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case snap.State == StateServing:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/GauBen/le-pire-cube/internal/config"
	"github.com/GauBen/le-pire-cube/internal/core"
	"github.com/GauBen/le-pire-cube/internal/replay"
	"github.com/GauBen/le-pire-cube/internal/sim"
	"github.com/GauBen/le-pire-cube/internal/storage"
)

const (
	// jumpHold is how long a space press keeps the jump input down.
	// Terminals deliver no key-release events, so a short hold window
	// stands in for the held key.
	jumpHold = 250 * time.Millisecond

	// maxFrameElapsed caps how much wall-clock time a single frame may
	// feed into the simulation after a stall.
	maxFrameElapsed = 0.25

	defaultFPS = 60
)

// ModelOptions configures a play session.
type ModelOptions struct {
	Config config.Config
	Seed   float64         // negative picks a time-based seed
	Store  *storage.Store  // run persistence, may be nil
	Record bool            // record live inputs for later replay
	Replay *replay.Record  // when set, inputs come from this recording
	Width  int
	Height int
	FPS    int
}

// Model is the Bubble Tea model for a single play session.
type Model struct {
	opts      ModelOptions
	eng       *sim.Engine
	input     *sim.Input
	screen    *core.Screen
	renderer  *Renderer
	keys      *KeyMapper
	recorder  *replay.Record
	player    *replay.Player
	runID     string
	lastTick  time.Time
	jumpUntil time.Time

	paused     bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a play model. The engine is seeded from the replay
// record when replaying, from the options otherwise.
func NewModel(opts ModelOptions) (Model, error) {
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	seed := opts.Seed
	if opts.Replay != nil {
		seed = opts.Replay.Seed
	} else if seed < 0 {
		seed = TimeSeed()
	}

	input := &sim.Input{}
	eng, err := sim.New(opts.Config, seed, input)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		opts:   opts,
		eng:    eng,
		input:  input,
		screen: core.NewScreen(opts.Width, opts.Height),
		keys:   NewKeyMapper(),
		runID:  uuid.NewString(),
	}
	m.renderer = NewRenderer(eng)

	if opts.Replay != nil {
		m.player = replay.NewPlayer(opts.Replay)
	} else if opts.Record {
		m.recorder = replay.NewRecord(seed)
	}

	return m, nil
}

// TimeSeed derives a fresh fractional seed from the wall clock.
func TimeSeed() float64 {
	return float64(time.Now().UnixNano()%(1<<30)) / float64(1<<30)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := m.keys.MapKey(msg)

	switch intent {
	case IntentQuit:
		m.quitting = true
		return m, tea.Quit

	case IntentPause:
		if !m.eng.GameOver() {
			m.paused = !m.paused
			m.lastTick = time.Now()
		}
		return m, nil

	case IntentRestart:
		if m.eng.GameOver() {
			return m.restart()
		}
		return m, nil

	case IntentBack:
		// Leaving for the menu ends the program here; session wrappers
		// intercept the flag and swallow the quit.
		if m.eng.GameOver() || m.paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil

	case IntentJump:
		if m.player == nil {
			m.jumpUntil = time.Now().Add(jumpHold)
		}
		return m, nil
	}

	// Steering is sticky: the chosen heading stays until replaced.
	if dir, ok := intent.SteerDirection(); ok && m.player == nil {
		m.input.Direction = dir
	}

	return m, nil
}

// restart rebuilds the engine for a fresh run. Replays rewind the same
// recording; fixed seeds replay the same world; otherwise a new seed is
// drawn from the clock.
func (m Model) restart() (tea.Model, tea.Cmd) {
	seed := m.opts.Seed
	if m.player != nil {
		seed = m.eng.Seed()
	} else if seed < 0 {
		seed = TimeSeed()
	}

	input := &sim.Input{}
	eng, err := sim.New(m.opts.Config, seed, input)
	if err != nil {
		return m, nil
	}

	m.eng = eng
	m.input = input
	m.renderer = NewRenderer(eng)
	m.runID = uuid.NewString()
	m.scoreSaved = false
	m.paused = false
	m.jumpUntil = time.Time{}
	m.lastTick = time.Now()

	if m.player != nil {
		m.player = replay.NewPlayer(m.opts.Replay)
	}
	if m.recorder != nil {
		m.recorder = replay.NewRecord(seed)
	}

	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last
// frame, or by the recorded frame time when replaying.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()

	if m.paused {
		m.lastTick = now
		return m, tickCmd(m.opts.FPS)
	}

	elapsed := 1.0 / float64(m.opts.FPS)
	if !m.lastTick.IsZero() {
		elapsed = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameElapsed)
	}
	m.lastTick = now

	if m.player != nil {
		if recorded, ok := m.player.Step(m.input); ok {
			m.eng.Update(recorded)
		}
	} else {
		m.input.Jump = now.Before(m.jumpUntil)
		if m.recorder != nil && !m.eng.GameOver() {
			m.recorder.Append(elapsed, *m.input)
		}
		m.eng.Update(elapsed)
	}

	if m.eng.GameOver() && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.opts.FPS)
}

// saveRun persists the finished run. Replays are never saved.
func (m Model) saveRun() {
	if m.opts.Store == nil || m.player != nil || m.eng.Score() <= 0 {
		return
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.opts.Store.SaveRun(storage.RunEntry{
		RunID:    m.runID,
		Score:    m.eng.Score(),
		Level:    m.eng.Avatar().Level(),
		Duration: m.eng.GameOverAt(),
		Seed:     m.eng.Seed(),
	})
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.paused)
	return RenderScreen(m.screen)
}

// Engine exposes the underlying simulation, mainly for tests.
func (m Model) Engine() *sim.Engine {
	return m.eng
}

// Recording returns the input record of the latest run, or nil when the
// session is not recording.
func (m Model) Recording() *replay.Record {
	return m.recorder
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone play session and returns the final model state.
func Run(opts ModelOptions) (Model, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}

	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}

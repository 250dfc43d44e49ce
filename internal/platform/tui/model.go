package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// presetter is implemented by games that accept a per-game difficulty preset.
type presetter interface {
	SetPreset(preset string)
}

// statsReporter is implemented by games that track swaps and chains.
type statsReporter interface {
	Stats() (swaps, bestChain int)
}

// GameModel runs one game inside Bubble Tea. It is used for local play and
// for SSH sessions, where it hands control back to the menu instead of
// quitting the program.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a game model for player. Scores are not saved when
// store is nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err == nil {
			logger().Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished game. Empty games are skipped.
func (m GameModel) saveResult() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	r := storage.Result{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Won:    m.gameState.Won,
	}
	if sr, ok := m.game.(statsReporter); ok {
		r.Swaps, r.BestChain = sr.Stats()
	}

	if _, err := m.store.SaveResult(r); err != nil {
		logger().Warn("could not save score", "game", r.GameID, "player", r.Player, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under ~/.match3/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".match3", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Outcome reports how a local game ended.
type Outcome struct {
	Quit   bool
	Config core.RuntimeConfig
}

// Run plays game in the local terminal until the player quits or goes back.
// A non-empty preset overrides the difficulty for this game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player, preset string) (Outcome, error) {
	if p, ok := game.(presetter); ok && preset != "" {
		p.SetPreset(preset)
	}

	model := NewGameModel(game, store, cfg, player)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{Config: cfg}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return Outcome{Quit: true, Config: cfg}, nil
	}
	return Outcome{Quit: m.IsQuitting(), Config: m.config}, nil
}

// LocalPlayer returns the name scores are saved under for local play.
func LocalPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
)

// DifficultyOption is one entry of the difficulty picker.
type DifficultyOption struct {
	Preset config.DifficultyPreset
	Label  string
}

// DifficultyOptions lists the presets offered before a game starts.
var DifficultyOptions = []DifficultyOption{
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyEasy, "Easy (+5 moves)"},
	{config.DifficultyHard, "Hard (-5 moves, one more color)"},
	{config.DifficultyFixed, "Fixed (no progression)"},
}

// DifficultyModel lets users choose a difficulty preset for a variant.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
	embedded  bool
}

// NewDifficultyModel creates a picker for the variant title. The cursor
// starts on initial when it names a known preset.
func NewDifficultyModel(title string, initial config.DifficultyPreset, width, height int) DifficultyModel {
	m := DifficultyModel{
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	for i, opt := range DifficultyOptions {
		if opt.Preset == initial {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(DifficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = DifficultyOptions[m.cursor].Preset
		return m, m.leave()
	case MenuActionBack:
		m.back = true
		return m, m.leave()
	}
	return m, nil
}

func (m DifficultyModel) leave() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the picker.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range DifficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-32s", cursor, opt.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset and whether a choice was made.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	return m.selection, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// DifficultyResult holds the outcome of the difficulty picker.
type DifficultyResult struct {
	Preset config.DifficultyPreset
	Back   bool
	Quit   bool
}

// RunDifficultySelector asks for a difficulty preset before a game starts.
func RunDifficultySelector(title string, initial config.DifficultyPreset, cfg core.RuntimeConfig) (DifficultyResult, error) {
	model := NewDifficultyModel(title, initial, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return DifficultyResult{}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() {
		return DifficultyResult{Quit: true}, nil
	}
	if m.WantsBack() {
		return DifficultyResult{Back: true}, nil
	}

	preset, _ := m.Selected()
	return DifficultyResult{Preset: preset}, nil
}

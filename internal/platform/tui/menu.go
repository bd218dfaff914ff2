package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordguess/internal/core"
	"github.com/vovakirdan/wordguess/internal/registry"
)

// MenuItem represents a selectable word pack in the menu.
type MenuItem struct {
	PackID  string
	Title   string
	Answers int // secret words in the pack, 0 if it failed to load
}

// label renders the item for the pack list.
func (i MenuItem) label() string {
	if i.Answers == 0 {
		return fmt.Sprintf("%s (%s)", i.Title, i.PackID)
	}
	return fmt.Sprintf("%s (%s, %d words)", i.Title, i.PackID, i.Answers)
}

// MenuModel is the Bubble Tea model for the word pack picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects a pack
	message   string    // error from the last selection
}

// NewMenuModel creates a menu over every registered pack. The cursor
// starts on current when it is registered.
func NewMenuModel(cfg core.RuntimeConfig, current string) MenuModel {
	packs := registry.List()
	items := make([]MenuItem, 0, len(packs))
	cursor := 0

	for i, p := range packs {
		item := MenuItem{PackID: p.ID, Title: p.Title}
		if pack, err := registry.Create(p.ID); err == nil {
			if answers, _, err := pack.Words(); err == nil {
				item.Answers = len(answers)
			}
		}
		items = append(items, item)
		if p.ID == current {
			cursor = i
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKey(msg, false) {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("W O R D   G U E S S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a word pack", m.width))
	b.WriteString("\n\n")
	if m.message != "" {
		b.WriteString(centerText(errorStyle.Render(m.message), m.width))
		b.WriteString("\n\n")
	}

	// Pack list
	for i, item := range m.items {
		line := "  " + item.label()
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.label())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(subtleStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// WithMessage shows text above the pack list.
func (m MenuModel) WithMessage(text string) MenuModel {
	m.message = text
	return m
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PackID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, current string) (MenuResult, error) {
	model := NewMenuModel(cfg, current)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.PackID = m.Selected().PackID
	return result, nil
}

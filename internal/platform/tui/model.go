package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordguess/internal/config"
	"github.com/vovakirdan/wordguess/internal/core"
	"github.com/vovakirdan/wordguess/internal/events"
	"github.com/vovakirdan/wordguess/internal/games/wordguess"
	"github.com/vovakirdan/wordguess/internal/leaderboard"
	"github.com/vovakirdan/wordguess/internal/router"
	"github.com/vovakirdan/wordguess/internal/words"
)

type screen int

const (
	screenStart screen = iota
	screenPlaying
	screenWon
	screenLost
	screenConfirmEnd
	screenLeaderboard
)

// startItems are the entries of the welcome screen.
var startItems = []string{"Start Game", "View Leaderboard", "Quit"}

// Deps are the collaborators a game model works with. Bank and Rules are
// required; everything else is optional.
type Deps struct {
	Bank      *words.Bank
	Rules     config.Rules
	Board     leaderboard.Board
	Sink      events.Sink
	PackID    string
	PackTitle string
	Player    string // prefilled winner name
	Logger    *log.Logger
	Context   context.Context
}

// Model is the Bubble Tea model for one player's games.
type Model struct {
	deps      Deps
	ctx       context.Context
	logger    *log.Logger
	engine    *wordguess.Engine
	tracker   *events.Tracker
	snap      wordguess.Snapshot
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      KeyMap
	help      help.Model
	guess     textinput.Model
	name      textinput.Model
	board     LeaderboardView
	screen    screen
	cursor    int
	notice    string
	noticeID  int
	quitting  bool

	menuEnabled bool // esc on the start screen leaves for the pack menu
	backToMenu  bool
}

// NewModel creates a game model. The engine is seeded from cfg.Seed, or
// from the clock when it is zero.
func NewModel(deps Deps, cfg core.RuntimeConfig) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.PackTitle == "" {
		deps.PackTitle = deps.PackID
	}

	engine, err := wordguess.NewEngine(deps.Bank, deps.Rules, wordguess.WithSeed(cfg.Seed))
	if err != nil {
		return Model{}, err
	}

	guess := textinput.New()
	guess.Placeholder = "Enter your word guess"
	guess.CharLimit = 32
	guess.Width = 24
	guess.Prompt = "> "

	name := textinput.New()
	name.Placeholder = "Enter your name"
	name.CharLimit = leaderboard.MaxNameLength
	name.Width = leaderboard.MaxNameLength
	name.Prompt = "Name: "

	km := NewKeyMapper()
	m := Model{
		deps:      deps,
		ctx:       deps.Context,
		logger:    deps.Logger.With("component", "tui"),
		engine:    engine,
		tracker:   events.NewTracker(deps.Sink, deps.PackID, events.WithTrackerLogger(deps.Logger)),
		snap:      engine.Snapshot(),
		config:    cfg,
		keyMapper: km,
		keys:      km.Keys(),
		help:      help.New(),
		guess:     guess,
		name:      name,
		board:     NewLeaderboardView(deps.Board, cfg.ScreenW, cfg.ScreenH),
		screen:    screenStart,
	}
	return m, nil
}

// Navigate applies a deep link before or between games.
func (m Model) Navigate(r router.Route) Model {
	switch r.Kind {
	case router.RouteGame:
		if m.snap.State == wordguess.StateWaiting {
			m.startGame()
		}
	case router.RouteNewGame, router.RouteGameWithWord:
		// A linked word is only shown; the secret is always random.
		if m.snap.State != wordguess.StateWaiting {
			m.finishGame()
		}
		m.startGame()
	case router.RouteLeaderboard:
		m.openLeaderboard()
	}
	m.setNotice(r.Notice())
	return m
}

// WithMenu lets esc on the start screen return to the pack menu.
func (m Model) WithMenu() Model {
	m.menuEnabled = true
	return m
}

// Init starts the cursor blink and the expiry of a pending notice.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.notice != "" {
		cmds = append(cmds, noticeCmd(m.noticeID, noticeTTL))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.board.SetSize(msg.Width, msg.Height)
		return m, nil

	case NoticeExpiredMsg:
		if msg.ID == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards other messages (cursor blink) to the focused input.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenPlaying:
		m.guess, cmd = m.guess.Update(msg)
	case screenWon:
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

func (m Model) typing() bool {
	return m.screen == screenPlaying || m.screen == screenWon
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg, m.typing())
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenStart:
		return m.handleStartKey(action)
	case screenPlaying:
		return m.handlePlayingKey(msg, action)
	case screenWon:
		return m.handleWonKey(msg, action)
	case screenLost:
		if action == core.ActionConfirm || action == core.ActionBack {
			return m.finishAndShowLeaderboard()
		}
	case screenConfirmEnd:
		return m.handleConfirmEndKey(msg)
	case screenLeaderboard:
		return m.handleLeaderboardKey(msg, action)
	}

	return m, nil
}

func (m Model) handleStartKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(startItems)-1)
	case core.ActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(startItems)-1)
	case core.ActionNewGame:
		m.startGame()
		return m, textinput.Blink
	case core.ActionLeaderboard:
		m.openLeaderboard()
	case core.ActionBack:
		if m.menuEnabled {
			m.backToMenu = true
		}
	case core.ActionConfirm:
		switch m.cursor {
		case 0:
			m.startGame()
			return m, textinput.Blink
		case 1:
			m.openLeaderboard()
		default:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionConfirm:
		return m.submitGuess()
	case core.ActionHint:
		return m.useHint()
	case core.ActionRestart:
		m.snap = m.engine.RestartGame()
		m.tracker.GameRestarted(m.ctx)
		m.guess.Reset()
		cmd := m.setNotice("New word! Good luck.")
		return m, cmd
	case core.ActionEnd:
		m.screen = screenConfirmEnd
		return m, nil
	case core.ActionBack:
		m.guess.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.guess, cmd = m.guess.Update(msg)
	return m, cmd
}

// submitGuess sends the input to the engine and reports the result.
func (m Model) submitGuess() (tea.Model, tea.Cmd) {
	text := m.guess.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}
	m.guess.Reset()

	res := m.engine.GuessWord(text)
	m.snap = res.Snapshot
	if !res.Accepted {
		m.tracker.ErrorEncountered(m.ctx, strings.ToUpper(text), m.snap.ErrorMessage)
		return m, nil
	}

	last := m.snap.History[len(m.snap.History)-1]
	m.tracker.WordGuessed(m.ctx, last.Normalized, m.snap.WordLength, res.Summary.Correct, res.Summary.Misplaced)

	switch m.snap.State {
	case wordguess.StateWon:
		m.screen = screenWon
		m.name.SetValue(m.deps.Player)
		m.name.CursorEnd()
		cmd := m.name.Focus()
		return m, cmd
	case wordguess.StateLost:
		m.screen = screenLost
	}
	return m, nil
}

func (m Model) useHint() (tea.Model, tea.Cmd) {
	res := m.engine.UseHint()
	m.snap = res.Snapshot
	switch {
	case res.Applied:
		m.tracker.HintRequested(m.ctx, res.Index, -res.Penalty)
		cmd := m.setNotice(fmt.Sprintf("Hint %d: letter %c at position %d (%d points)",
			res.Index, res.Letter, res.Position+1, res.Penalty))
		return m, cmd
	case errors.Is(res.Err, wordguess.ErrNoHintsLeft):
		cmd := m.setNotice("No hints left")
		return m, cmd
	case errors.Is(res.Err, wordguess.ErrNothingToReveal):
		cmd := m.setNotice("Every letter is already revealed")
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWonKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionConfirm:
		cmd := m.saveScore(m.name.Value())
		next, finishCmd := m.finishAndShowLeaderboard()
		return next, tea.Batch(cmd, finishCmd)
	case core.ActionBack:
		return m.finishAndShowLeaderboard()
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// saveScore submits the won game to the board. An empty name skips it.
func (m *Model) saveScore(name string) tea.Cmd {
	if strings.TrimSpace(name) == "" || m.deps.Board == nil {
		return nil
	}
	entry, err := leaderboard.NewEntry(name, m.snap.DisplayScore, m.snap.Secret, m.snap.GuessCount)
	if err != nil {
		return m.setNotice("Score not saved: " + err.Error())
	}
	rank, err := m.deps.Board.Add(m.ctx, entry)
	if err != nil {
		m.logger.Warn("could not save score", "err", err)
		return m.setNotice("Score not saved: " + err.Error())
	}
	if rank == 0 {
		return m.setNotice("Score saved, but it did not make the top list")
	}
	return m.setNotice(fmt.Sprintf("Score saved at #%d", rank))
}

func (m Model) handleConfirmEndKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		return m.finishAndShowLeaderboard()
	case key.Matches(msg, m.keys.No):
		m.screen = screenPlaying
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleLeaderboardKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNewGame:
		m.startGame()
		return m, textinput.Blink
	case core.ActionBack, core.ActionConfirm:
		m.screen = screenStart
		if m.snap.State == wordguess.StatePlaying {
			m.screen = screenPlaying // opened by a link mid-game
		}
		return m, nil
	case core.ActionClear:
		if err := m.board.Clear(m.ctx); err != nil {
			cmd := m.setNotice("Could not clear scores: " + err.Error())
			return m, cmd
		}
		cmd := m.setNotice("Scores cleared")
		return m, cmd
	case core.ActionUp, core.ActionDown:
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startGame opens a new game from the waiting state. With a game already
// in progress it returns to that game.
func (m *Model) startGame() {
	snap, err := m.engine.StartNewGame()
	m.snap = snap
	if err != nil {
		m.logger.Debug("start ignored", "err", err)
	} else {
		m.tracker.GameStarted(m.ctx)
	}
	m.guess.Reset()
	m.guess.Focus()
	m.name.Blur()
	m.screen = screenPlaying
}

// finishGame closes the current game and reports its outcome.
func (m *Model) finishGame() wordguess.Outcome {
	out, snap := m.engine.EndGame()
	m.snap = snap
	m.tracker.GameEnded(m.ctx, events.GameEnded{
		Won:       out.Won,
		Completed: out.Completed,
		Score:     out.DisplayScore,
		Guesses:   out.Guesses,
		HintsUsed: out.HintsUsed,
		Word:      out.Secret,
	})
	m.guess.Blur()
	m.name.Blur()
	m.name.Reset()
	return out
}

func (m Model) finishAndShowLeaderboard() (tea.Model, tea.Cmd) {
	out := m.finishGame()
	m.openLeaderboard()
	if out.Completed || out.Secret == "" {
		return m, nil
	}
	cmd := m.setNotice(fmt.Sprintf("The word was %s. Thanks for playing!", out.Secret))
	return m, cmd
}

func (m *Model) openLeaderboard() {
	if err := m.board.Load(m.ctx); err != nil {
		m.logger.Warn("could not load leaderboard", "err", err)
	}
	m.screen = screenLeaderboard
}

// setNotice shows a transient message and returns the command expiring it.
func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeID++
	m.notice = text
	return noticeCmd(m.noticeID, noticeTTL)
}

// Snapshot returns the engine state the model last rendered.
func (m Model) Snapshot() wordguess.Snapshot {
	return m.snap
}

// Notice returns the current transient message.
func (m Model) Notice() string {
	return m.notice
}

// BackToMenu reports whether the player asked for the pack menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.config.TooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			core.MinScreenW, core.MinScreenH, m.config.ScreenW, m.config.ScreenH)
	}

	var body string
	switch m.screen {
	case screenStart:
		body = m.viewStart()
	case screenPlaying:
		body = m.viewPlaying()
	case screenWon:
		body = m.viewWon()
	case screenLost:
		body = m.viewLost()
	case screenConfirmEnd:
		body = m.viewConfirmEnd()
	case screenLeaderboard:
		body = m.viewLeaderboard()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("W O R D   G U E S S"), m.config.ScreenW))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.deps.PackTitle), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(body)
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(centerText(noticeStyle.Render(m.notice), m.config.ScreenW))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewStart() string {
	var b strings.Builder
	b.WriteString(centerText("Welcome to Word Guess!", m.config.ScreenW))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(fmt.Sprintf(
		"Guess the %s before you run out of %d tries.", wordLabel(m.deps.Bank), m.deps.Rules.MaxGuesses)),
		m.config.ScreenW))
	b.WriteString("\n\n")

	for i, item := range startItems {
		line := "  " + item
		if i == m.cursor {
			line = cursorStyle.Render("> " + item)
		}
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")
	}

	bindings := m.keys.startHelp()
	if m.menuEnabled {
		bindings = append(bindings, m.keys.Back)
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(bindings), m.config.ScreenW))
	return b.String()
}

func wordLabel(bank *words.Bank) string {
	lengths := bank.Lengths()
	if len(lengths) == 1 {
		return fmt.Sprintf("%d-letter word", lengths[0])
	}
	return "mystery word"
}

func (m Model) viewPlaying() string {
	s := m.snap
	w := m.config.ScreenW

	header := fmt.Sprintf("Score: %d    Guesses: %d/%d    %s",
		s.DisplayScore, s.GuessCount, s.MaxGuesses,
		wrongStyle.Render(fmt.Sprintf("Wrong: %d/%d", s.IncorrectGuesses, s.MaxGuesses)))

	var b strings.Builder
	b.WriteString(centerText(header, w))
	b.WriteString("\n\n")
	b.WriteString(centerText(RenderDisplayWord(s.DisplayWord), w))
	b.WriteString("\n")
	if hist := renderHistory(s.History); hist != "" {
		b.WriteString("\n")
		b.WriteString(centerText(hist, w))
		b.WriteString("\n")
	}
	if s.ErrorMessage != "" {
		b.WriteString("\n")
		b.WriteString(centerText(errorStyle.Render(s.ErrorMessage), w))
		b.WriteString("\n")
	}

	hint := fmt.Sprintf("Hint (%d/%d)", s.HintsUsed, s.MaxHints)
	if !s.CanHint {
		hint = subtleStyle.Render(hint)
	}
	b.WriteString("\n")
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Center, m.guess.View(), "   ", hint), w))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keys.playingHelp()), w))
	return b.String()
}

func (m Model) viewWon() string {
	s := m.snap
	var b strings.Builder
	b.WriteString(titleStyle.Render("YOU WON!"))
	b.WriteString("\n\n")
	b.WriteString(RenderTiles(s.History[len(s.History)-1].Feedback))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Congratulations! You guessed '%s' with a score of %d points!", s.Secret, s.DisplayScore))
	b.WriteString("\n\n")
	b.WriteString(m.name.View())
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("enter save score • esc skip"))
	return centerText(panelStyle.Render(b.String()), m.config.ScreenW)
}

func (m Model) viewLost() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Game Over"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("The word was '%s'. Better luck next time!", m.snap.Secret))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("enter continue"))
	return centerText(panelStyle.Render(b.String()), m.config.ScreenW)
}

func (m Model) viewConfirmEnd() string {
	var b strings.Builder
	b.WriteString("End this game?")
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("y end game • n keep playing"))
	return centerText(panelStyle.Render(b.String()), m.config.ScreenW)
}

func (m Model) viewLeaderboard() string {
	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.board.View(), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keys.leaderboardHelp()), m.config.ScreenW))
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

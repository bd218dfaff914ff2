package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/wordguess/internal/core"
	"github.com/vovakirdan/wordguess/internal/registry"
	"github.com/vovakirdan/wordguess/internal/storage"
	"github.com/vovakirdan/wordguess/internal/words"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.wordguess/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Seed fixes the word sequence of every session; 0 seeds from the clock.
	Seed int64

	// Pack starts every session directly in this pack. Empty shows the
	// pack menu first.
	Pack string
}

// DepsFunc builds the collaborators of a game on the given pack.
type DepsFunc func(packID string) (Deps, error)

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server. Every session plays its own games;
// the leaderboard and event sink behind open are shared.
type SSHServer struct {
	config SSHServerConfig
	open   DepsFunc
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. open is called for every game a
// session starts; the caller keeps ownership of what it returns.
func NewSSHServer(cfg SSHServerConfig, open DepsFunc, logger *log.Logger) (*SSHServer, error) {
	if open == nil {
		return nil, errors.New("tui: SSH server needs a pack opener")
	}
	if cfg.Pack != "" {
		if _, err := open(cfg.Pack); err != nil {
			return nil, err
		}
	} else if len(registry.List()) == 0 {
		return nil, errors.New("tui: no word packs registered")
	}
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("component", "ssh")

	srv := &SSHServer{
		config: cfg,
		open:   open,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = "~/.wordguess/host_key"
	}
	hostKeyPath, err := storage.ExpandPath(hostKeyPath)
	if err != nil {
		return nil, err
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model, err := s.newSession(sshSession.Context(), sshSession.User(), pty.Window.Width, pty.Window.Height)
	if err != nil {
		s.logger.Error("cannot start session", "user", sshSession.User(), "err", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newSession builds the session model of one connection.
func (s *SSHServer) newSession(ctx context.Context, user string, width, height int) (SessionModel, error) {
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    s.config.Seed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := s.logger.With("user", user)
	open := func(packID string) (Deps, error) {
		deps, err := s.open(packID)
		if err != nil {
			return Deps{}, err
		}
		deps.Player = user
		deps.Context = ctx
		deps.Logger = logger
		return deps, nil
	}
	return NewSessionModel(open, cfg, s.config.Pack)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "err", err)
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel moves an SSH user between the pack menu and games:
// menu -> game -> menu.
type SessionModel struct {
	open     DepsFunc
	config   core.RuntimeConfig
	pack     string
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a session. With pack set it starts in that
// pack's game, otherwise at the pack menu.
func NewSessionModel(open DepsFunc, cfg core.RuntimeConfig, pack string) (SessionModel, error) {
	m := SessionModel{
		open:   open,
		config: cfg,
		pack:   pack,
	}
	if pack == "" {
		m.menu = NewMenuModel(cfg, words.DefaultPack)
		return m, nil
	}
	if err := m.openGame(pack); err != nil {
		return SessionModel{}, err
	}
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The menu quits its own program on selection; here it hands over.
	if selected := m.menu.Selected(); selected != nil {
		if err := m.openGame(selected.PackID); err != nil {
			m.menu = NewMenuModel(m.config, selected.PackID).WithMessage(err.Error())
			return m, nil
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = &game
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.config, m.pack)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *SessionModel) openGame(packID string) error {
	deps, err := m.open(packID)
	if err != nil {
		return err
	}
	game, err := NewModel(deps, m.config)
	if err != nil {
		return err
	}
	game = game.WithMenu()
	m.game = &game
	m.pack = packID
	return nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// InGame reports whether the session is playing rather than picking a pack.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Pack returns the pack of the current or last game.
func (m SessionModel) Pack() string {
	return m.pack
}

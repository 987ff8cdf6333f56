package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-contra/internal/config"
	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/registry"
	"github.com/vovakirdan/tui-contra/internal/storage"
)

// GameFactory builds a game for a session at the chosen difficulty.
type GameFactory func(preset config.DifficultyPreset) registry.Game

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.contra/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// GameID identifies the game's runs in the database.
	GameID string

	// NewGame creates the game of each session. Sessions never play audio,
	// so the factory should build silent games.
	NewGame GameFactory
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.contra/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.NewGame == nil || cfg.GameID == "" {
		return nil, errors.New("ssh: no game configured")
	}

	logger := log.Default().WithPrefix("contra-ssh")

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("ssh: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".contra", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", mkdirErr)
	}

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
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
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

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, s.config.GameID, s.config.NewGame, cfg)
	model.palette = NewPalette(bubbletea.MakeRenderer(sshSession))

	// Release the game when the connection drops.
	go func() {
		<-sshSession.Context().Done()
		model.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
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

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// gameRef is shared by the copies of a SessionModel so the game can be
// closed from outside the program loop.
type gameRef struct {
	mu   sync.Mutex
	game registry.Game
}

func (r *gameRef) set(g registry.Game) {
	r.mu.Lock()
	r.game = g
	r.mu.Unlock()
}

func (r *gameRef) close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.game.(registry.Closer); ok {
		c.Close()
	}
}

// SessionModel manages one SSH session: title menu, then the game.
type SessionModel struct {
	store     *storage.Store
	newGame   GameFactory
	config    core.RuntimeConfig
	palette   *Palette
	menu      MenuModel
	gameModel *Model
	ref       *gameRef
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, gameID string, newGame GameFactory, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:   store,
		newGame: newGame,
		config:  cfg,
		menu:    NewMenuModel(store, gameID, cfg),
		ref:     &gameRef{},
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The scoreboard runs as its own program locally; over SSH the title
	// screen already shows the best score.
	if m.menu.WantsScoreboard() {
		m.menu.openScoreboard = false
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		game := m.newGame(selected.Preset)
		m.ref.set(game)

		gm := NewModel(game, m.store, m.config)
		if m.palette != nil {
			gm.palette = m.palette
		}
		m.gameModel = &gm
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(Model); ok {
		m.gameModel = &gm
	}

	if m.gameModel.quitting {
		m.quitting = true
		m.Close()
		return m, tea.Quit
	}
	return m, cmd
}

// Close releases the session's game.
func (m SessionModel) Close() {
	m.ref.close()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

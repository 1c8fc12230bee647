// Package server exposes the desk over SSH, so a writing session can be
// reached from any terminal.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"

	"github.com/christopherAlberts/storydesk/internal/app"
	"github.com/christopherAlberts/storydesk/internal/config"
	"github.com/christopherAlberts/storydesk/internal/input"
)

// Config holds the SSH listener settings.
type Config struct {
	Host    string
	Port    string
	KeyPath string
}

// Start runs the SSH server until the context is cancelled. Each
// connection gets its own desk.
func Start(ctx context.Context, cfg *Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "storydesk_host_key")
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	go func() {
		log.Info("starting SSH server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil {
			log.Error("SSH server error", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down SSH server")
	return srv.Shutdown(ctx)
}

// teaHandler builds a desk sized to the connecting client's PTY.
func teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sshSession.Pty()
	if !active {
		return nil, nil
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warn("failed to load config for SSH session, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	app.SetInputHandler(input.Handle)

	desk := app.New(pty.Window.Width, pty.Window.Height, cfg)
	desk.LogInfo("ssh session from %s", sshSession.User())

	return desk, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}

package main

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/christopherAlberts/storydesk/internal/app"
	"github.com/christopherAlberts/storydesk/internal/config"
	"github.com/christopherAlberts/storydesk/internal/input"
	"github.com/christopherAlberts/storydesk/internal/session"
	"github.com/christopherAlberts/storydesk/internal/theme"
)

const saveDebounce = 2 * time.Second

// filterMouseMotion drops motion events while no gesture is active, so
// idle mouse movement does not wake the update loop.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	desk, ok := model.(*app.Desk)
	if !ok {
		return msg
	}
	if desk.State != app.StateIdle {
		return msg
	}
	return nil
}

func runLocal() error {
	if noAnimations {
		config.AnimationsEnabled = false
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		log.Warn("failed to initialize theme", "err", err)
	}

	app.SetInputHandler(input.Handle)

	desk := app.New(0, 0, cfg)

	// Saved layout, restored once the terminal reports its size.
	layoutPath, err := session.DefaultPath(projectName)
	if err != nil {
		log.Warn("session persistence disabled", "err", err)
	} else {
		layout, err := session.Load(layoutPath)
		if err != nil {
			desk.LogWarn("could not load saved layout: %v", err)
		} else if len(layout.Windows) > 0 {
			desk.PendingLayout = &layout
		}

		saver := session.NewSaver(layoutPath, saveDebounce,
			func() session.Layout { return session.Snapshot(desk.Registry) },
			func(err error) { desk.LogError("layout save failed: %v", err) },
		)
		desk.Saver = saver
		defer saver.Close()
	}

	p := tea.NewProgram(
		desk,
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(filterMouseMotion),
	)

	// Reload config edits live.
	if configPath, err := config.GetConfigPath(); err == nil {
		watcher, err := config.Watch(configPath,
			func(cfg *config.Config) { p.Send(app.ConfigReloadMsg{Config: cfg}) },
			func(err error) { desk.LogWarn("config watch: %v", err) },
		)
		if err != nil {
			log.Warn("config hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

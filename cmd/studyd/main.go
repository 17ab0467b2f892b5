package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nishantrao/studyd/internal/gen"
	"github.com/nishantrao/studyd/internal/notify"
	"github.com/nishantrao/studyd/internal/reminder"
	"github.com/nishantrao/studyd/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	genCfg := gen.LoadConfig()

	engine := reminder.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	var notifier notify.DesktopNotifier = notify.Noop{}
	if cfg.DesktopNotifications {
		notifier = notify.Exec{}
	}

	var client gen.Client
	if genCfg.Enabled {
		client = gen.NewHTTPClient(genCfg)
	}

	model := update.NewModelWithConfig(engine, notifier, client, cfg)
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "studyd failed: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/ripple/internal/app"
	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/errmsg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpLoggerInit, cfg.DebugLog, err))
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	m := app.New(cfg, logger)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStartup, err))
		os.Exit(1)
	}
}

// buildLogger returns a file-backed debug logger when configured, otherwise
// a no-op logger so dispatch logging costs nothing.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if !cfg.HasDebugLog() {
		return zap.NewNop(), nil
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zcfg.OutputPaths = []string{cfg.DebugLog}
	zcfg.ErrorOutputPaths = []string{cfg.DebugLog}
	return zcfg.Build()
}

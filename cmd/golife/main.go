package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golife/internal/app"
	"golife/internal/core"
	"golife/internal/pattern"
	"golife/internal/session"
	"golife/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadFile(app.ConfigPath()); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		log.Fatal("golife needs an interactive terminal")
	}
	if cfg.Max {
		if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
			cfg.FitToTerminal(w, h)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	lib, err := pattern.Load(pattern.NewFileStore(cfg.Patterns))
	if err != nil {
		log.Fatal(err)
	}

	sess := session.New(session.Config{
		Rows:             cfg.Rows,
		Cols:             cfg.Cols,
		Density:          cfg.Density,
		Torus:            cfg.Torus,
		Endless:          cfg.Endless,
		KeepAlive:        cfg.KeepAlive,
		HeaderShown:      len(cfg.HeaderItems()) > 0,
		StagnationWindow: cfg.Stagnate,
	}, lib, core.NewRNG(cfg.Seed))

	p := tea.NewProgram(tui.New(cfg, sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}

	fmt.Print(tui.ResultsView(sess.Stats(), sess.DeadReason()))
}

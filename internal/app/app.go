package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/chatroom/internal/source"
	"github.com/atomicstack/chatroom/internal/ui"
	"github.com/atomicstack/chatroom/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var (
	// ErrTerminalInit reports that the terminal could not be prepared.
	ErrTerminalInit = errors.New("terminal initialisation failed")
	// ErrRender reports that drawing to or reading from the terminal failed.
	ErrRender = errors.New("render failed")
)

// Config describes user-provided application options.
type Config struct {
	TickRate time.Duration
	Width    int
	Height   int
}

type runner func(m tea.Model) (tea.Model, error)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	return run(cfg, isTerminal, runProgram)
}

func run(cfg Config, probe func(int) bool, exec runner) error {
	if !probe(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: stdout is not a terminal", ErrTerminalInit)
	}
	src := source.New(cfg.TickRate)
	defer func() {
		src.Stop()
		src.Wait()
	}()

	model := ui.NewModel(state.DefaultItems(), cfg.Width, cfg.Height, src)
	final, err := exec(model)
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	if m, ok := final.(*ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func runProgram(m tea.Model) (tea.Model, error) {
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	return program.Run()
}

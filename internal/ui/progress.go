package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"mergerModel/internal/config"
	"mergerModel/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Step is one stage of the run, executed in order.
type Step struct {
	Name string
	Run  func() error
}

type stepState int

const (
	statePending stepState = iota
	stateRunning
	stateDone
	stateFailed
)

type stepDoneMsg struct {
	index int
	err   error
}

// progressModel drives the steps one at a time and quits on its own; it never reads input.
type progressModel struct {
	steps  []Step
	states []stepState
	err    error

	titleStyle   lipgloss.Style
	doneStyle    lipgloss.Style
	runningStyle lipgloss.Style
	pendingStyle lipgloss.Style
	failedStyle  lipgloss.Style
}

func newModel(steps []Step) progressModel {
	return progressModel{
		steps:  steps,
		states: make([]stepState, len(steps)),

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		doneStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		runningStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")),
		pendingStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		failedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}

func runStep(index int, step Step) tea.Cmd {
	return func() tea.Msg {
		return stepDoneMsg{index: index, err: step.Run()}
	}
}

func (m progressModel) Init() tea.Cmd {
	if len(m.steps) == 0 {
		return tea.Quit
	}
	m.states[0] = stateRunning
	return runStep(0, m.steps[0])
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepDoneMsg:
		if msg.err != nil {
			m.states[msg.index] = stateFailed
			m.err = fmt.Errorf("%s: %w", m.steps[msg.index].Name, msg.err)
			return m, tea.Quit
		}
		m.states[msg.index] = stateDone

		next := msg.index + 1
		if next >= len(m.steps) {
			return m, tea.Quit
		}
		m.states[next] = stateRunning
		return m, runStep(next, m.steps[next])
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Merger Model"))
	b.WriteString("\n\n")

	for i, step := range m.steps {
		switch m.states[i] {
		case stateDone:
			b.WriteString(m.doneStyle.Render("✓ " + step.Name))
		case stateRunning:
			b.WriteString(m.runningStyle.Render("> " + step.Name))
		case stateFailed:
			b.WriteString(m.failedStyle.Render("✗ " + step.Name))
		default:
			b.WriteString(m.pendingStyle.Render("  " + step.Name))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Interactive reports whether mode should use the bubbletea view when writing to out.
func Interactive(mode string, out io.Writer) bool {
	switch mode {
	case config.UIModeTUI:
		return true
	case config.UIModePlain:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RunSteps executes steps in order and stops at the first failure.
func RunSteps(steps []Step, mode string, out io.Writer) error {
	if Interactive(mode, out) {
		return runProgram(steps, out)
	}
	return runPlain(steps, out)
}

func runProgram(steps []Step, out io.Writer) error {
	p := tea.NewProgram(newModel(steps), tea.WithInput(nil), tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running progress view: %v", err)
	}
	return finalModel.(progressModel).err
}

func runPlain(steps []Step, out io.Writer) error {
	for i, step := range steps {
		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(steps), step.Name)
		logger.Info("Running step", "step", step.Name, "progress", fmt.Sprintf("%d/%d", i+1, len(steps)))

		if err := step.Run(); err != nil {
			fmt.Fprintf(out, "✗ %s failed\n", step.Name)
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return nil
}

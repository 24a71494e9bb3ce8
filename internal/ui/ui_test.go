package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mergerModel/internal/model"
	"mergerModel/internal/scenario"

	tea "github.com/charmbracelet/bubbletea"
)

func recordingSteps(order *[]string, failAt string) []Step {
	var steps []Step
	for _, name := range []string{"Compute deal metrics", "Render dashboard", "Verify dashboard"} {
		name := name
		steps = append(steps, Step{Name: name, Run: func() error {
			*order = append(*order, name)
			if name == failAt {
				return errors.New("disk full")
			}
			return nil
		}})
	}
	return steps
}

func TestRunPlainRunsStepsInOrder(t *testing.T) {
	var order []string
	var out bytes.Buffer

	if err := RunSteps(recordingSteps(&order, ""), "plain", &out); err != nil {
		t.Fatalf("RunSteps failed: %v", err)
	}

	if strings.Join(order, ",") != "Compute deal metrics,Render dashboard,Verify dashboard" {
		t.Errorf("steps ran as %v", order)
	}
	if !strings.Contains(out.String(), "[3/3] Verify dashboard") {
		t.Errorf("missing progress line in %q", out.String())
	}
}

func TestRunPlainStopsAtFailure(t *testing.T) {
	var order []string
	var out bytes.Buffer

	err := RunSteps(recordingSteps(&order, "Render dashboard"), "plain", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Render dashboard: disk full") {
		t.Errorf("error = %v", err)
	}
	if len(order) != 2 {
		t.Errorf("steps after the failure should not run, ran %v", order)
	}
}

func TestInteractive(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode string
		want bool
	}{
		{"tui", true},
		{"plain", false},
		{"auto", false}, // a buffer is never a terminal
	}
	for _, tt := range tests {
		if got := Interactive(tt.mode, &buf); got != tt.want {
			t.Errorf("Interactive(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

// drive feeds the model its own commands until it quits, as tea.Program would.
func drive(t *testing.T, m progressModel) progressModel {
	t.Helper()
	cmd := m.Init()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return m
		}
		next, nextCmd := m.Update(msg)
		m = next.(progressModel)
		cmd = nextCmd
	}
	t.Fatal("model did not quit")
	return m
}

func TestModelCompletesAllSteps(t *testing.T) {
	var order []string
	m := drive(t, newModel(recordingSteps(&order, "")))

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	for i, s := range m.states {
		if s != stateDone {
			t.Errorf("step %d state = %v, want done", i, s)
		}
	}
	if !strings.Contains(m.View(), "✓ Verify dashboard") {
		t.Errorf("view missing completed step:\n%s", m.View())
	}
}

func TestModelQuitsOnFailure(t *testing.T) {
	var order []string
	m := drive(t, newModel(recordingSteps(&order, "Compute deal metrics")))

	if m.err == nil || !strings.Contains(m.err.Error(), "disk full") {
		t.Fatalf("err = %v", m.err)
	}
	if m.states[0] != stateFailed || m.states[1] != statePending {
		t.Errorf("states = %v", m.states)
	}
	if len(order) != 1 {
		t.Errorf("ran %v after failure", order)
	}
}

func TestSummary(t *testing.T) {
	a, err := model.Analyze(scenario.Acquirer(), scenario.Target(), scenario.Deal(), model.DefaultAssumptions())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	out := Summary(a)
	for _, want := range []string{"Pro Forma EPS", "6.38", "$4500.00", "$7000.00", "1.38", "Accretive"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

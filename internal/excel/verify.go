package excel

import (
	"fmt"
	"slices"
	"strings"

	"mergerModel/internal/logger"
	"mergerModel/internal/model"
)

// VerifyDashboard re-opens a written dashboard and checks it against layout.
func VerifyDashboard(path string, layout Layout, want model.DealStatus) error {
	editor, err := OpenFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	defer editor.Close()

	if err := checkDashboard(editor, layout, want); err != nil {
		logger.Error("Dashboard verification failed", "path", path, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrRender, path, err)
	}

	logger.Info("Verified dashboard", "path", path, "status", want)
	return nil
}

func checkDashboard(e *Editor, layout Layout, want model.DealStatus) error {
	sheets := e.GetSheetNames()
	if !slices.Equal(sheets, []string{layout.Sheet}) {
		return fmt.Errorf("expected only sheet %q, found %v", layout.Sheet, sheets)
	}

	title, err := e.GetCellValue(layout.Sheet, "A1")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title != DashboardTitle {
		return fmt.Errorf("unexpected title %q", title)
	}

	rows, err := e.GetAllRows(layout.Sheet)
	if err != nil {
		return fmt.Errorf("failed to read rows: %w", err)
	}
	labels := make(map[string]string)
	for i, r := range rows {
		if len(r) > 0 {
			labels[cellName(labelColumn, i+1)] = strings.TrimSpace(r[0])
		}
	}
	for _, placed := range layout.Rows {
		if got := labels[placed.LabelCell]; got != placed.Label {
			return fmt.Errorf("cell %s holds %q, expected label %q", placed.LabelCell, got, placed.Label)
		}
	}

	if layout.StatusCell == "" {
		return fmt.Errorf("layout has no deal status cell")
	}
	status, err := e.GetCellValue(layout.Sheet, layout.StatusCell)
	if err != nil {
		return fmt.Errorf("failed to read deal status: %w", err)
	}
	if status != string(want) {
		return fmt.Errorf("deal status cell %s holds %q, expected %q", layout.StatusCell, status, want)
	}
	return nil
}

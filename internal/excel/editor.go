package excel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ErrRender marks failures to build or write the workbook.
var ErrRender = errors.New("render failed")

type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	return &Editor{
		file: excelize.NewFile(),
	}
}

// RenameSheet renames a sheet, e.g. the default "Sheet1" of a new file
func (e *Editor) RenameSheet(oldName, newName string) error {
	return e.file.SetSheetName(oldName, newName)
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// NewStyle registers a cell style and returns its ID
func (e *Editor) NewStyle(style *excelize.Style) (int, error) {
	return e.file.NewStyle(style)
}

// NewConditionalStyle registers a differential style for conditional formats
func (e *Editor) NewConditionalStyle(style *excelize.Style) (int, error) {
	return e.file.NewConditionalStyle(style)
}

// SetCellStyle applies a style to a cell range
func (e *Editor) SetCellStyle(sheet, topLeft, bottomRight string, styleID int) error {
	return e.file.SetCellStyle(sheet, topLeft, bottomRight, styleID)
}

// MergeCells merges a range and applies styleID to all of it
func (e *Editor) MergeCells(sheet, topLeft, bottomRight string, styleID int) error {
	if err := e.file.MergeCell(sheet, topLeft, bottomRight); err != nil {
		return fmt.Errorf("failed to merge %s:%s: %w", topLeft, bottomRight, err)
	}
	return e.file.SetCellStyle(sheet, topLeft, bottomRight, styleID)
}

// SetColumnWidth sets the width of a single column
func (e *Editor) SetColumnWidth(sheet, column string, width float64) error {
	return e.file.SetColWidth(sheet, column, column, width)
}

// SetConditionalFormat attaches conditional format rules to a range
func (e *Editor) SetConditionalFormat(sheet, rangeRef string, rules []excelize.ConditionalFormatOptions) error {
	return e.file.SetConditionalFormat(sheet, rangeRef, rules)
}

// GetCellValue returns the value in a specific cell
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// GetAllRows returns all rows from a sheet
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// SaveAs writes the workbook next to path and renames it into place,
// so path is either the complete new file or untouched.
func (e *Editor) SaveAs(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := e.file.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set workbook permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush workbook: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move workbook into place: %w", err)
	}

	e.filepath = path
	return nil
}

// Path returns where the workbook was opened from or last saved to
func (e *Editor) Path() string {
	return e.filepath
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

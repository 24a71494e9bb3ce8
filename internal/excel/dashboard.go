package excel

import (
	"fmt"

	"mergerModel/internal/logger"
	"mergerModel/internal/model"

	"github.com/shopspring/decimal"
)

const (
	OutputFile     = "Merger_Model_Dashboard.xlsx"
	SheetName      = "Dashboard"
	DashboardTitle = "Dynamic Merger Model Dashboard"

	labelColumn = "A"
	valueColumn = "B"
	lastColumn  = "D"

	labelWidth = 25
	valueWidth = 20
)

// A row is one labeled value on the dashboard.
type row struct {
	label string
	kind  valueKind
	value func(a model.Analysis) any
}

type group struct {
	heading string // optional sub-heading above the rows
	rows    []row
}

type section struct {
	title  string
	groups []group
}

func profileGroup(heading string, pick func(a model.Analysis) model.CompanyProfile) group {
	field := func(f func(p model.CompanyProfile) decimal.Decimal) func(a model.Analysis) any {
		return func(a model.Analysis) any { return f(pick(a)) }
	}
	return group{heading: heading, rows: []row{
		{"Revenue", kindCurrency, field(func(p model.CompanyProfile) decimal.Decimal { return p.Revenue })},
		{"EBITDA", kindCurrency, field(func(p model.CompanyProfile) decimal.Decimal { return p.EBITDA })},
		{"Net Income", kindCurrency, field(func(p model.CompanyProfile) decimal.Decimal { return p.NetIncome })},
		{"Shares Outstanding", kindNumber, field(func(p model.CompanyProfile) decimal.Decimal { return p.SharesOutstanding })},
		{"Share Price", kindCurrency, field(func(p model.CompanyProfile) decimal.Decimal { return p.SharePrice })},
		{"Tax Rate", kindPercent, field(func(p model.CompanyProfile) decimal.Decimal { return p.TaxRate })},
	}}
}

func metric(f func(m model.DerivedMetrics) any) func(a model.Analysis) any {
	return func(a model.Analysis) any { return f(a.Metrics) }
}

var dashboardLayout = []section{
	{
		title: "Input Parameters",
		groups: []group{
			profileGroup("Acquirer Data", func(a model.Analysis) model.CompanyProfile { return a.Acquirer }),
			profileGroup("Target Data", func(a model.Analysis) model.CompanyProfile { return a.Target }),
			{heading: "Deal Terms", rows: []row{
				{"Purchase Price per Share", kindCurrency, func(a model.Analysis) any { return a.Deal.PurchasePricePerShare }},
				{"Cash Consideration (%)", kindNumber, func(a model.Analysis) any { return a.Deal.PaymentMix.CashPct }},
				{"Stock Consideration (%)", kindNumber, func(a model.Analysis) any { return a.Deal.PaymentMix.StockPct }},
				{"Synergies", kindCurrency, func(a model.Analysis) any { return a.Deal.Synergies }},
				{"New Debt Financing", kindCurrency, func(a model.Analysis) any { return a.Deal.NewDebtFinancing }},
				{"Interest Rate on New Debt", kindPercent, func(a model.Analysis) any { return a.Assumptions.InterestRate }},
			}},
		},
	},
	{
		title: "Pro Forma Output",
		groups: []group{{rows: []row{
			{"Target Equity Value", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.TargetEquityValue })},
			{"Target Enterprise Value", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.TargetEnterpriseValue })},
			{"Cash Payment", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.CashPayment })},
			{"Stock Payment", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.StockPayment })},
			{"Exchange Ratio", kindDecimal, metric(func(m model.DerivedMetrics) any { return m.ExchangeRatio })},
			{"New Shares Issued", kindNumber, metric(func(m model.DerivedMetrics) any { return m.NewSharesIssued })},
			{"Synergies (After Tax)", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.SynergiesAfterTax })},
			{"Interest Expense", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.InterestExpense })},
			{"Interest Expense (After Tax)", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.InterestAfterTax })},
			{"Pro Forma Revenue", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.ProFormaRevenue })},
			{"Pro Forma EBITDA", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.ProFormaEBITDA })},
			{"Pro Forma Net Income", kindCurrency, metric(func(m model.DerivedMetrics) any { return m.ProFormaNetIncome })},
			{"Pro Forma Shares Outstanding", kindNumber, metric(func(m model.DerivedMetrics) any { return m.ProFormaShares })},
			{"Pro Forma EPS", kindDecimal, metric(func(m model.DerivedMetrics) any { return m.ProFormaEPS })},
			{"Standalone Acquirer EPS", kindDecimal, metric(func(m model.DerivedMetrics) any { return m.AcquirerEPS })},
			{"EPS Impact", kindDecimal, metric(func(m model.DerivedMetrics) any { return m.EPSImpact })},
			{"Deal Status", kindStatus, metric(func(m model.DerivedMetrics) any { return m.Status })},
		}}},
	},
}

// PlacedRow records where a dashboard row ended up.
type PlacedRow struct {
	Section   string
	Group     string
	Label     string
	LabelCell string
	ValueCell string
	Kind      string
}

// Layout describes a rendered dashboard.
type Layout struct {
	Sheet      string
	StatusCell string
	Rows       []PlacedRow
}

// Find returns the row with the given group and label.
func (l Layout) Find(group, label string) (PlacedRow, bool) {
	for _, r := range l.Rows {
		if r.Group == group && r.Label == label {
			return r, true
		}
	}
	return PlacedRow{}, false
}

// RenderDashboard writes the dashboard for a to path with a single sheet.
func RenderDashboard(path, sheet string, a model.Analysis) (Layout, error) {
	logger.Info("Rendering dashboard", "path", path, "sheet", sheet)

	editor := CreateNewFile()
	defer editor.Close()

	layout, err := writeDashboard(editor, sheet, a)
	if err != nil {
		logger.Error("Failed to build dashboard", "error", err)
		return Layout{}, fmt.Errorf("%w: %w", ErrRender, err)
	}

	if err := editor.SaveAs(path); err != nil {
		logger.Error("Failed to save dashboard", "path", path, "error", err)
		return Layout{}, fmt.Errorf("%w: failed to save %s: %w", ErrRender, path, err)
	}

	logger.Info("Saved dashboard", "path", editor.Path(), "rows", len(layout.Rows))
	return layout, nil
}

func writeDashboard(e *Editor, sheet string, a model.Analysis) (Layout, error) {
	if err := e.RenameSheet(e.GetSheetNames()[0], sheet); err != nil {
		return Layout{}, fmt.Errorf("failed to name sheet %q: %w", sheet, err)
	}

	styles, err := newDashboardStyles(e)
	if err != nil {
		return Layout{}, err
	}

	layout := Layout{Sheet: sheet}

	if err := e.SetCellValue(sheet, "A1", DashboardTitle); err != nil {
		return Layout{}, err
	}
	if err := e.MergeCells(sheet, "A1", lastColumn+"1", styles.title); err != nil {
		return Layout{}, err
	}

	r := 3
	for _, sec := range dashboardLayout {
		if err := writeBanner(e, sheet, r, sec.title, styles.section); err != nil {
			return Layout{}, err
		}
		r++

		for _, g := range sec.groups {
			if g.heading != "" {
				if err := writeLabel(e, sheet, r, g.heading, styles.group); err != nil {
					return Layout{}, err
				}
				r++
			}

			for _, rw := range g.rows {
				placed, err := writeRow(e, sheet, r, rw, a, styles)
				if err != nil {
					return Layout{}, fmt.Errorf("failed to write %q: %w", rw.label, err)
				}
				placed.Section = sec.title
				placed.Group = g.heading
				layout.Rows = append(layout.Rows, placed)
				if rw.kind == kindStatus {
					layout.StatusCell = placed.ValueCell
				}
				r++
			}
		}
		// blank line between sections
		r++
	}

	if err := e.SetColumnWidth(sheet, labelColumn, labelWidth); err != nil {
		return Layout{}, err
	}
	if err := e.SetColumnWidth(sheet, valueColumn, valueWidth); err != nil {
		return Layout{}, err
	}

	if layout.StatusCell != "" {
		if err := e.SetConditionalFormat(sheet, layout.StatusCell, styles.statusRules(layout.StatusCell)); err != nil {
			return Layout{}, fmt.Errorf("failed to set status highlight: %w", err)
		}
	}

	return layout, nil
}

func cellName(column string, r int) string {
	return fmt.Sprintf("%s%d", column, r)
}

func writeBanner(e *Editor, sheet string, r int, text string, style int) error {
	if err := e.SetCellValue(sheet, cellName(labelColumn, r), text); err != nil {
		return err
	}
	return e.MergeCells(sheet, cellName(labelColumn, r), cellName(lastColumn, r), style)
}

func writeLabel(e *Editor, sheet string, r int, text string, style int) error {
	cell := cellName(labelColumn, r)
	if err := e.SetCellValue(sheet, cell, text); err != nil {
		return err
	}
	return e.SetCellStyle(sheet, cell, cell, style)
}

func writeRow(e *Editor, sheet string, r int, rw row, a model.Analysis, styles *dashboardStyles) (PlacedRow, error) {
	labelCell := cellName(labelColumn, r)
	valueCell := cellName(valueColumn, r)

	if err := writeLabel(e, sheet, r, rw.label, styles.label); err != nil {
		return PlacedRow{}, err
	}

	value := rw.value(a)
	style := styles.values[rw.kind]

	switch v := value.(type) {
	case decimal.Decimal:
		value = v.InexactFloat64()
	case model.DealStatus:
		value = string(v)
		switch v {
		case model.Accretive:
			style = styles.accretive
		case model.Dilutive:
			style = styles.dilutive
		}
	}

	if err := e.SetCellValue(sheet, valueCell, value); err != nil {
		return PlacedRow{}, err
	}
	if err := e.SetCellStyle(sheet, valueCell, valueCell, style); err != nil {
		return PlacedRow{}, err
	}

	return PlacedRow{
		Label:     rw.label,
		LabelCell: labelCell,
		ValueCell: valueCell,
		Kind:      rw.kind.String(),
	}, nil
}

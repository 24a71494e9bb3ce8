package ui

import (
	"strings"

	"mergerModel/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

var (
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	accretiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3C763D")).Background(lipgloss.Color("#DFF0D8"))
	dilutiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A94442")).Background(lipgloss.Color("#F2DEDE"))
)

func currency(d decimal.Decimal) string { return "$" + d.StringFixed(2) }

func number(d decimal.Decimal) string { return d.StringFixed(2) }

// StatusLabel renders a deal status in its highlight colors.
func StatusLabel(s model.DealStatus) string {
	if s == model.Accretive {
		return accretiveStyle.Render(" " + string(s) + " ")
	}
	return dilutiveStyle.Render(" " + string(s) + " ")
}

// Summary renders the headline figures of an analysis for the terminal.
func Summary(a model.Analysis) string {
	m := a.Metrics

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Value").
		Row("Target Equity Value", currency(m.TargetEquityValue)).
		Row("Target Enterprise Value", currency(m.TargetEnterpriseValue)).
		Row("Exchange Ratio", number(m.ExchangeRatio)).
		Row("New Shares Issued", number(m.NewSharesIssued)).
		Row("Pro Forma Revenue", currency(m.ProFormaRevenue)).
		Row("Pro Forma EBITDA", currency(m.ProFormaEBITDA)).
		Row("Pro Forma Net Income", currency(m.ProFormaNetIncome)).
		Row("Pro Forma EPS", number(m.ProFormaEPS)).
		Row("Standalone Acquirer EPS", number(m.AcquirerEPS)).
		Row("EPS Impact", number(m.EPSImpact))

	var b strings.Builder
	b.WriteString(headingStyle.Render("Pro Forma Summary"))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString("Deal Status: ")
	b.WriteString(StatusLabel(m.Status))
	b.WriteString("\n")
	return b.String()
}

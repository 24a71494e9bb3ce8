package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Number formats for value cells
const (
	currencyNumFmt = "$#,##0.00"
	decimalNumFmt  = 2  // built-in 0.00
	percentNumFmt  = 10 // built-in 0.00%
)

// Highlight colors for the deal status cell
const (
	accretiveFill = "DFF0D8"
	accretiveFont = "3C763D"
	dilutiveFill  = "F2DEDE"
	dilutiveFont  = "A94442"
)

type valueKind int

const (
	kindText valueKind = iota
	kindCurrency
	kindDecimal
	kindPercent
	kindNumber
	kindStatus
)

func (k valueKind) String() string {
	switch k {
	case kindCurrency:
		return "currency"
	case kindDecimal:
		return "decimal"
	case kindPercent:
		return "percent"
	case kindNumber:
		return "number"
	case kindStatus:
		return "status"
	}
	return "text"
}

type dashboardStyles struct {
	title   int
	section int
	group   int
	label   int
	values  map[valueKind]int

	accretive int
	dilutive  int

	// differential styles used by the conditional format rules
	accretiveRule int
	dilutiveRule  int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func highlight(fill, font string) *excelize.Style {
	return &excelize.Style{
		Font:   &excelize.Font{Color: font},
		Fill:   solidFill(fill),
		Border: thinBorder(),
	}
}

type styleSpec struct {
	name  string
	dst   *int
	style *excelize.Style
}

// newDashboardStyles registers every style the dashboard uses
func newDashboardStyles(e *Editor) (*dashboardStyles, error) {
	currency := currencyNumFmt
	s := &dashboardStyles{values: make(map[valueKind]int)}
	var text, curr, dec, pct, num int

	specs := []styleSpec{
		{"title", &s.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      solidFill("4CAF50"),
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    thinBorder(),
		}},
		{"section", &s.section, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      solidFill("FFC107"),
			Alignment: &excelize.Alignment{Horizontal: "left"},
			Border:    thinBorder(),
		}},
		{"group", &s.group, &excelize.Style{Font: &excelize.Font{Bold: true}, Border: thinBorder()}},
		{"label", &s.label, &excelize.Style{Border: thinBorder()}},
		{"text", &text, &excelize.Style{Border: thinBorder()}},
		{"currency", &curr, &excelize.Style{CustomNumFmt: &currency, Border: thinBorder()}},
		{"decimal", &dec, &excelize.Style{NumFmt: decimalNumFmt, Border: thinBorder()}},
		{"percent", &pct, &excelize.Style{NumFmt: percentNumFmt, Border: thinBorder()}},
		{"number", &num, &excelize.Style{Border: thinBorder()}},
		{"accretive", &s.accretive, highlight(accretiveFill, accretiveFont)},
		{"dilutive", &s.dilutive, highlight(dilutiveFill, dilutiveFont)},
	}

	for _, spec := range specs {
		id, err := e.NewStyle(spec.style)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s style: %w", spec.name, err)
		}
		*spec.dst = id
	}

	var err error
	if s.accretiveRule, err = e.NewConditionalStyle(highlight(accretiveFill, accretiveFont)); err != nil {
		return nil, fmt.Errorf("failed to create accretive rule style: %w", err)
	}
	if s.dilutiveRule, err = e.NewConditionalStyle(highlight(dilutiveFill, dilutiveFont)); err != nil {
		return nil, fmt.Errorf("failed to create dilutive rule style: %w", err)
	}

	s.values[kindText] = text
	s.values[kindCurrency] = curr
	s.values[kindDecimal] = dec
	s.values[kindPercent] = pct
	s.values[kindNumber] = num
	s.values[kindStatus] = text
	return s, nil
}

// statusRules highlights cell green when it mentions "Accretive" and red for "Dilutive"
func (s *dashboardStyles) statusRules(cell string) []excelize.ConditionalFormatOptions {
	containing := func(text string) string {
		return fmt.Sprintf(`NOT(ISERROR(SEARCH("%s",%s)))`, text, cell)
	}
	accretive, dilutive := s.accretiveRule, s.dilutiveRule
	return []excelize.ConditionalFormatOptions{
		{Type: "formula", Criteria: containing("Accretive"), Format: &accretive},
		{Type: "formula", Criteria: containing("Dilutive"), Format: &dilutive},
	}
}

package model

import (
	"mergerModel/internal/logger"

	"github.com/shopspring/decimal"
)

// Compute derives the pro forma metrics of the combined company.
// Inputs are validated first; no metric is produced for invalid inputs.
func Compute(acquirer, target CompanyProfile, deal DealTerms, a Assumptions) (DerivedMetrics, error) {
	if err := Validate(acquirer, target, deal, a); err != nil {
		return DerivedMetrics{}, err
	}

	var m DerivedMetrics
	price := deal.PurchasePricePerShare

	// Purchase price
	m.TargetEquityValue = target.SharesOutstanding.Mul(price)
	m.TargetEnterpriseValue = m.TargetEquityValue.Add(target.Debt).Sub(target.Cash)

	// Consideration split
	m.CashPayment = deal.PaymentMix.CashPct.Div(hundred).Mul(m.TargetEquityValue)
	m.StockPayment = deal.PaymentMix.StockPct.Div(hundred).Mul(m.TargetEquityValue)

	// Share issuance. New shares are priced at the offer price, not the acquirer's.
	m.ExchangeRatio = price.Div(acquirer.SharePrice)
	m.NewSharesIssued = m.StockPayment.Div(price)
	m.ProFormaShares = acquirer.SharesOutstanding.Add(m.NewSharesIssued)

	// Earnings adjustments, taxed at the acquirer's rate
	keep := decimal.NewFromInt(1).Sub(acquirer.TaxRate)
	m.SynergiesAfterTax = deal.Synergies.Mul(keep)
	m.InterestExpense = deal.NewDebtFinancing.Mul(a.InterestRate)
	m.InterestAfterTax = m.InterestExpense.Mul(keep)

	m.ProFormaNetIncome = acquirer.NetIncome.
		Add(target.NetIncome).
		Add(m.SynergiesAfterTax).
		Sub(m.InterestAfterTax)

	m.ProFormaEPS = m.ProFormaNetIncome.Div(m.ProFormaShares)
	m.AcquirerEPS = acquirer.NetIncome.Div(acquirer.SharesOutstanding)
	m.EPSImpact = m.ProFormaEPS.Sub(m.AcquirerEPS)
	m.Status = ClassifyEPSImpact(m.EPSImpact)

	m.ProFormaRevenue = acquirer.Revenue.Add(target.Revenue)
	m.ProFormaEBITDA = acquirer.EBITDA.Add(target.EBITDA).Add(deal.Synergies)

	logger.Debug("Computed deal metrics",
		"pro_forma_eps", m.ProFormaEPS.String(),
		"acquirer_eps", m.AcquirerEPS.String(),
		"status", m.Status)

	return m, nil
}

// ClassifyEPSImpact labels a deal Accretive only when it strictly raises EPS.
func ClassifyEPSImpact(impact decimal.Decimal) DealStatus {
	if impact.IsPositive() {
		return Accretive
	}
	return Dilutive
}

// Analyze runs Compute and bundles the result with its inputs.
func Analyze(acquirer, target CompanyProfile, deal DealTerms, a Assumptions) (Analysis, error) {
	metrics, err := Compute(acquirer, target, deal, a)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		Acquirer:    acquirer,
		Target:      target,
		Deal:        deal,
		Assumptions: a,
		Metrics:     metrics,
	}, nil
}

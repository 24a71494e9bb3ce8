package model

import "github.com/shopspring/decimal"

// CompanyProfile is a standalone snapshot of one side of the deal.
type CompanyProfile struct {
	Name              string
	Revenue           decimal.Decimal
	EBITDA            decimal.Decimal
	NetIncome         decimal.Decimal
	SharesOutstanding decimal.Decimal
	SharePrice        decimal.Decimal
	Debt              decimal.Decimal
	Cash              decimal.Decimal
	TaxRate           decimal.Decimal // effective rate in [0,1]
}

// PaymentMix splits the consideration in percent; the two parts sum to 100.
type PaymentMix struct {
	CashPct  decimal.Decimal
	StockPct decimal.Decimal
}

// DealTerms describes the offer made for the target.
type DealTerms struct {
	PurchasePricePerShare decimal.Decimal
	PaymentMix            PaymentMix
	Synergies             decimal.Decimal
	NewDebtFinancing      decimal.Decimal
}

// Assumptions holds model parameters that are not part of either company or the offer.
type Assumptions struct {
	InterestRate decimal.Decimal
}

// DefaultInterestRate is the rate charged on new acquisition debt.
var DefaultInterestRate = decimal.RequireFromString("0.05")

func DefaultAssumptions() Assumptions {
	return Assumptions{InterestRate: DefaultInterestRate}
}

type DealStatus string

const (
	Accretive DealStatus = "Accretive"
	Dilutive  DealStatus = "Dilutive"
)

// DerivedMetrics is the full output of Compute.
type DerivedMetrics struct {
	TargetEquityValue     decimal.Decimal
	TargetEnterpriseValue decimal.Decimal

	CashPayment  decimal.Decimal
	StockPayment decimal.Decimal

	ExchangeRatio   decimal.Decimal
	NewSharesIssued decimal.Decimal
	ProFormaShares  decimal.Decimal

	SynergiesAfterTax decimal.Decimal
	InterestExpense   decimal.Decimal
	InterestAfterTax  decimal.Decimal

	ProFormaNetIncome decimal.Decimal
	ProFormaEPS       decimal.Decimal
	AcquirerEPS       decimal.Decimal
	EPSImpact         decimal.Decimal
	Status            DealStatus

	ProFormaRevenue decimal.Decimal
	ProFormaEBITDA  decimal.Decimal
}

// Analysis bundles the inputs of a run with its results for presentation.
type Analysis struct {
	Acquirer    CompanyProfile
	Target      CompanyProfile
	Deal        DealTerms
	Assumptions Assumptions
	Metrics     DerivedMetrics
}

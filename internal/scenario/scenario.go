// Package scenario holds the built-in deal that the dashboard is generated for.
package scenario

import (
	"mergerModel/internal/model"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Acquirer returns the bidding company.
func Acquirer() model.CompanyProfile {
	return model.CompanyProfile{
		Name:              "Acquirer",
		Revenue:           d(5000),
		EBITDA:            d(1500),
		NetIncome:         d(1000),
		SharesOutstanding: d(200),
		SharePrice:        d(50),
		Debt:              d(2000),
		Cash:              d(500),
		TaxRate:           decimal.RequireFromString("0.25"),
	}
}

// Target returns the company being bought.
func Target() model.CompanyProfile {
	return model.CompanyProfile{
		Name:              "Target",
		Revenue:           d(2000),
		EBITDA:            d(600),
		NetIncome:         d(400),
		SharesOutstanding: d(100),
		SharePrice:        d(40),
		Debt:              d(500),
		Cash:              d(200),
		TaxRate:           decimal.RequireFromString("0.25"),
	}
}

// Deal returns the offer: $45 per share, half cash and half stock.
func Deal() model.DealTerms {
	return model.DealTerms{
		PurchasePricePerShare: d(45),
		PaymentMix: model.PaymentMix{
			CashPct:  d(50),
			StockPct: d(50),
		},
		Synergies:        d(300),
		NewDebtFinancing: d(800),
	}
}

// Assumptions returns the model parameters with the given debt interest rate.
func Assumptions(interestRate float64) model.Assumptions {
	return model.Assumptions{InterestRate: decimal.NewFromFloat(interestRate)}
}

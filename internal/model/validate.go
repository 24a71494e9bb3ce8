package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks inputs the engine refuses to compute with.
var ErrInvalidInput = errors.New("invalid input")

var hundred = decimal.NewFromInt(100)

// Validate checks the engine's preconditions and returns every violation joined together.
func Validate(acquirer, target CompanyProfile, deal DealTerms, a Assumptions) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...)))
	}

	for _, p := range []struct {
		role    string
		profile CompanyProfile
	}{{"acquirer", acquirer}, {"target", target}} {
		if !p.profile.SharesOutstanding.IsPositive() {
			fail("%s shares outstanding must be positive, got %s", p.role, p.profile.SharesOutstanding)
		}
		checkNonNegative(fail, p.role+" revenue", p.profile.Revenue)
		checkNonNegative(fail, p.role+" EBITDA", p.profile.EBITDA)
		checkNonNegative(fail, p.role+" share price", p.profile.SharePrice)
		checkNonNegative(fail, p.role+" debt", p.profile.Debt)
		checkNonNegative(fail, p.role+" cash", p.profile.Cash)
		checkUnitInterval(fail, p.role+" tax rate", p.profile.TaxRate)
	}

	if !acquirer.SharePrice.IsPositive() {
		fail("acquirer share price must be positive, got %s", acquirer.SharePrice)
	}
	if !deal.PurchasePricePerShare.IsPositive() {
		fail("purchase price per share must be positive, got %s", deal.PurchasePricePerShare)
	}

	mix := deal.PaymentMix
	if mix.CashPct.IsNegative() || mix.CashPct.GreaterThan(hundred) {
		fail("cash percentage must be within [0,100], got %s", mix.CashPct)
	}
	if mix.StockPct.IsNegative() || mix.StockPct.GreaterThan(hundred) {
		fail("stock percentage must be within [0,100], got %s", mix.StockPct)
	}
	if sum := mix.CashPct.Add(mix.StockPct); !sum.Equal(hundred) {
		fail("payment mix must sum to 100, got %s", sum)
	}

	checkNonNegative(fail, "synergies", deal.Synergies)
	checkNonNegative(fail, "new debt financing", deal.NewDebtFinancing)
	checkUnitInterval(fail, "interest rate", a.InterestRate)

	return errors.Join(errs...)
}

func checkNonNegative(fail func(string, ...any), field string, v decimal.Decimal) {
	if v.IsNegative() {
		fail("%s must not be negative, got %s", field, v)
	}
}

func checkUnitInterval(fail func(string, ...any), field string, v decimal.Decimal) {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
		fail("%s must be within [0,1], got %s", field, v)
	}
}

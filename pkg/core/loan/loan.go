// Package loan provides deterministic mortgage arithmetic: loan sizing,
// amortized and interest-only debt service, DSCR, and the extended NOI
// breakdown.
package loan

import "math"

// Terms is the sized loan for a purchase.
type Terms struct {
	Principal           float64 `json:"loan_amount"`
	DownPaymentAmount   float64 `json:"down_payment_amount"`
	DownPaymentFraction float64 `json:"down_payment_percent"`
}

// DefaultDownPaymentFraction applies when the caller specifies neither an
// amount nor a fraction.
const DefaultDownPaymentFraction = 0.20

// SizeLoan computes the loan principal from price and down payment.
//
// Precedence: explicit positive amount > explicit positive fraction >
// default fraction. Principal floors at zero (a down payment above the
// price is all equity, not a negative loan).
func SizeLoan(price, downPaymentAmount, downPaymentFraction float64) Terms {
	var amount, fraction float64

	switch {
	case downPaymentAmount > 0:
		amount = downPaymentAmount
		if price > 0 {
			fraction = downPaymentAmount / price
		}
	case downPaymentFraction > 0:
		fraction = downPaymentFraction
		amount = price * downPaymentFraction
	default:
		fraction = DefaultDownPaymentFraction
		amount = price * fraction
	}

	principal := price - amount
	if principal < 0 {
		principal = 0
	}
	return Terms{
		Principal:           principal,
		DownPaymentAmount:   amount,
		DownPaymentFraction: fraction,
	}
}

// DebtService computes the monthly payment for a loan.
//
// Interest-only:
//
//	PAYMENT = P x r/12
//
// Fully amortized (ordinary annuity):
//
//	PAYMENT = P x r(1+r)^n / ((1+r)^n - 1)   with r = annual/12, n = years x 12
//
// Zero principal pays zero; a zero rate amortizes to straight principal
// over the term (avoids the 0/0 in the annuity formula).
func DebtService(principal, annualRate float64, termYears int, interestOnly bool) float64 {
	if principal <= 0 {
		return 0
	}

	if interestOnly {
		return principal * (annualRate / 12)
	}

	r := annualRate / 12
	n := float64(termYears * 12)
	if n <= 0 {
		return 0
	}
	if r == 0 {
		return principal / n
	}

	pow := math.Pow(1+r, n)
	return principal * (r * pow) / (pow - 1)
}

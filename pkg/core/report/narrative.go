package report

import (
	"fmt"
	"math"
	"strings"

	"rent_dscr/pkg/core/tax"
	"rent_dscr/pkg/core/utils"
)

// Disclaimer is appended verbatim to every result.
const Disclaimer = "IMPORTANT: This is a rough estimate based on general market " +
	"patterns and assumptions. It is NOT a substitute for professional property " +
	"appraisal, rental market analysis, or underwriting. Actual rental income may " +
	"vary significantly based on specific property features, local market conditions, " +
	"property management, and numerous other factors. Do NOT make investment decisions " +
	"based solely on this estimate. Always conduct thorough due diligence including " +
	"professional inspections, appraisals, and market research."

// Note trigger thresholds.
const (
	lowConfidenceThreshold = 0.60
	cautionDSCRThreshold   = 1.10
	tightCashflowThreshold = 200.0
)

func inputsSummary(r *Result) string {
	return fmt.Sprintf("%s | $%s purchase | %.0f%% down | %.2f%% rate | %dyr term",
		r.Address,
		formatThousands(r.PurchasePrice),
		r.DownPaymentFraction*100,
		r.InterestRateAnnual*100,
		r.TermYears)
}

// humanSummary branches its closing sentence on the same thresholds that
// drive the risk label, so the wording and the label can never disagree.
func humanSummary(r *Result) string {
	cashflow := fmt.Sprintf("$%s/month %s cashflow",
		formatThousands(math.Abs(r.MonthlyCashflow)), cashflowDirection(r.MonthlyCashflow))

	summary := fmt.Sprintf(
		"For %s, estimated market rent is $%s/month. "+
			"With the given loan terms and operating assumptions, the property shows a DSCR of %.2f "+
			"(%s rating) with %s. ",
		r.Address, formatThousands(r.EstimatedMonthlyRent), r.DSCR, r.RiskLabel, cashflow)

	switch {
	case r.AnnualDebtService == 0:
		summary += "The loan is fully paid down, so debt coverage does not apply; cashflow equals net operating income."
	case r.DSCR >= 1.30:
		summary += "This indicates strong debt coverage with healthy margin for unexpected expenses."
	case r.DSCR >= 1.10:
		summary += "This indicates borderline debt coverage - carefully verify rent estimates and expenses."
	default:
		summary += "This indicates weak debt coverage - property may have negative cashflow or tight margins."
	}
	return summary
}

// investorNotes builds the conditional warning list plus the always-present
// boilerplate caveats, in a fixed order.
func investorNotes(r *Result) []string {
	var notes []string

	if r.ConfidenceScore < lowConfidenceThreshold {
		notes = append(notes, "LOW CONFIDENCE in rent estimate due to limited property information.")
	}
	if r.AnnualDebtService == 0 {
		notes = append(notes, "No debt service on this scenario - DSCR is reported as 0 by convention and should be read as \"not applicable\", not as weak coverage.")
	} else if r.DSCR < cautionDSCRThreshold {
		notes = append(notes, "CAUTION: DSCR below 1.10 indicates property may not generate sufficient income to cover debt.")
	}
	if r.MonthlyCashflow < 0 {
		notes = append(notes, "WARNING: Projected negative monthly cashflow. Property would require ongoing capital contributions.")
	} else if r.MonthlyCashflow < tightCashflowThreshold {
		notes = append(notes, "Tight cashflow margins - ensure reserve funds for repairs and vacancies.")
	}

	switch r.Tax.Accuracy {
	case tax.AccuracyGenericFallback:
		notes = append(notes, "Property tax uses a generic flat-rate fallback because the county could not be resolved - verify the actual county millage rate.")
	case tax.AccuracyManual:
		notes = append(notes, "Property tax uses your manual figure - confirm it reflects the rental (non-owner-occupied) assessment.")
	}

	notes = append(notes,
		"Verify actual rents with local property managers or recent comparable leases.",
		"Consider getting professional appraisal and rent study before proceeding.",
		fmt.Sprintf("Insurance estimate of $%.0f/month is generic - get actual quote for this property.", r.InsuranceMonthly),
	)
	return notes
}

// MarkdownReport renders the result as a multi-section Markdown document.
// The output is validated with the Markdown parser; composition bugs fail
// loudly here instead of surfacing as broken rendering downstream.
func MarkdownReport(r *Result) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Investment Analysis: %s\n\n", r.Address)

	b.WriteString("## Inputs\n\n")
	fmt.Fprintf(&b, "- Purchase price: $%s\n", formatThousands(r.PurchasePrice))
	fmt.Fprintf(&b, "- Down payment: $%s (%.1f%%)\n", formatThousands(r.DownPaymentAmount), r.DownPaymentFraction*100)
	fmt.Fprintf(&b, "- Loan amount: $%s\n", formatThousands(r.LoanAmount))
	fmt.Fprintf(&b, "- Rate / term: %.2f%% / %d years (%s)\n\n", r.InterestRateAnnual*100, r.TermYears, loanType(r.InterestOnly))

	b.WriteString("## Rent Estimate\n\n")
	fmt.Fprintf(&b, "- Estimated monthly rent: $%s (range $%s - $%s)\n",
		formatThousands(r.EstimatedMonthlyRent), formatThousands(r.LowEstimateRent), formatThousands(r.HighEstimateRent))
	fmt.Fprintf(&b, "- Confidence: %.0f%%\n\n", r.ConfidenceScore*100)

	b.WriteString("## Financial Metrics\n\n")
	fmt.Fprintf(&b, "- Monthly debt service: $%.2f\n", r.MonthlyDebtService)
	fmt.Fprintf(&b, "- Annual NOI: $%.2f\n", r.NOIAnnual)
	fmt.Fprintf(&b, "- DSCR: %.2f (%s)\n", r.DSCR, r.RiskLabel)
	fmt.Fprintf(&b, "- Monthly cashflow: $%.2f\n\n", r.MonthlyCashflow)

	if r.Tax.Accuracy == tax.AccuracyOK {
		b.WriteString("## Property Tax\n\n")
		fmt.Fprintf(&b, "- County: %s\n", *r.Tax.County)
		fmt.Fprintf(&b, "- Millage rate: %.4f (assessment ratio %.1f%%)\n", *r.Tax.MillageRate, *r.Tax.AssessmentRatio*100)
		fmt.Fprintf(&b, "- Annual taxes: $%.2f\n\n", *r.Tax.AnnualTax)
	}

	b.WriteString("## Assumptions\n\n")
	for _, a := range r.Assumptions {
		fmt.Fprintf(&b, "- %s\n", a)
	}
	b.WriteString("\n## Notes for Investor\n\n")
	for _, n := range r.NotesForInvestor {
		fmt.Fprintf(&b, "- %s\n", n)
	}

	fmt.Fprintf(&b, "\n---\n\n%s\n", r.Disclaimer)

	doc := b.String()
	if !utils.ValidateMarkdown(doc) {
		return "", fmt.Errorf("composed report failed markdown validation")
	}
	return doc, nil
}

func cashflowDirection(cashflow float64) string {
	if cashflow >= 0 {
		return "positive"
	}
	return "negative"
}

func loanType(interestOnly bool) string {
	if interestOnly {
		return "interest-only"
	}
	return "fully amortized"
}

// formatThousands renders a currency amount with comma grouping and no
// decimals, matching the summary formats.
func formatThousands(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

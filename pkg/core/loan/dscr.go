package loan

// RiskThreshold is one row of the DSCR risk table, evaluated high to low.
type RiskThreshold struct {
	Min   float64 `yaml:"min" json:"min"`
	Label string  `yaml:"label" json:"label"`
}

// DefaultRiskThresholds is the canonical risk table. The final row is the
// catch-all for any DSCR below the lowest threshold.
var DefaultRiskThresholds = []RiskThreshold{
	{Min: 1.30, Label: "Strong"},
	{Min: 1.10, Label: "Borderline"},
	{Min: 0, Label: "Weak"},
}

// RiskLabel maps a DSCR onto the first threshold row it clears. An empty
// table labels everything Unrated rather than panicking.
func RiskLabel(dscr float64, table []RiskThreshold) string {
	for _, row := range table {
		if dscr >= row.Min {
			return row.Label
		}
	}
	if len(table) > 0 {
		return table[len(table)-1].Label
	}
	return "Unrated"
}

// DSCRResult holds the coverage metrics for one scenario.
type DSCRResult struct {
	EffectiveGrossIncome float64 `json:"effective_gross_income_monthly"`
	NOIMonthly           float64 `json:"NOI_monthly"`
	NOIAnnual            float64 `json:"NOI_annual"`
	AnnualDebtService    float64 `json:"annual_debt_service"`
	DSCR                 float64 `json:"DSCR"`
	RiskLabel            string  `json:"risk_label"`
	CashflowMonthly      float64 `json:"monthly_cashflow"`
}

// CalculateDSCR computes NOI, DSCR, cashflow, and the risk label.
//
//	EGI        = RENT x (1 - VACANCY)
//	NOI        = EGI - OPERATING EXPENSES
//	DSCR       = ANNUAL NOI / ANNUAL DEBT SERVICE
//	CASHFLOW   = MONTHLY NOI - MONTHLY DEBT SERVICE
//
// Zero debt service yields DSCR = 0 by convention (not +Inf, not an
// error); the report layer annotates that case so it is not misread as
// weak coverage.
func CalculateDSCR(rent, vacancyRate, operatingExpensesMonthly, debtServiceMonthly float64, table []RiskThreshold) DSCRResult {
	egi := rent * (1 - vacancyRate)
	noiMonthly := egi - operatingExpensesMonthly
	noiAnnual := noiMonthly * 12
	annualDebt := debtServiceMonthly * 12

	var dscr float64
	if annualDebt > 0 {
		dscr = noiAnnual / annualDebt
	}

	return DSCRResult{
		EffectiveGrossIncome: egi,
		NOIMonthly:           noiMonthly,
		NOIAnnual:            noiAnnual,
		AnnualDebtService:    annualDebt,
		DSCR:                 dscr,
		RiskLabel:            RiskLabel(dscr, table),
		CashflowMonthly:      noiMonthly - debtServiceMonthly,
	}
}

// Extended NOI constants. Utilities are estimated from square footage when
// the landlord pays and no manual figure is given, clamped to a fixed band.
const (
	UtilityRatePerSqft  = 0.12
	UtilityDefaultSqft  = 1500
	UtilityMonthlyFloor = 80
	UtilityMonthlyCap   = 400
)

// ExtendedNOIInput parameterizes the opt-in deeper expense breakdown.
type ExtendedNOIInput struct {
	RentMonthly          float64
	TaxesMonthly         float64
	InsuranceMonthly     float64
	HOAMonthly           float64
	Sqft                 int // 0 = unknown, falls back to UtilityDefaultSqft
	VacancyRate          float64
	MaintenanceRate      float64 // fraction of rent
	TenantPaysUtility    bool
	ManualUtilityMonthly float64 // > 0 overrides the estimate
}

// ExtendedNOIBreakdown itemizes the extended operating expense set.
type ExtendedNOIBreakdown struct {
	TaxesMonthly       float64 `json:"taxes_monthly"`
	InsuranceMonthly   float64 `json:"insurance_monthly"`
	HOAMonthly         float64 `json:"hoa_monthly"`
	MaintenanceMonthly float64 `json:"maintenance_monthly"`
	UtilitiesMonthly   float64 `json:"utilities_monthly"`
	TotalMonthly       float64 `json:"total_monthly"`
	NOIMonthly         float64 `json:"NOI_monthly"`
	NOIAnnual          float64 `json:"NOI_annual"`
}

// ExtendedNOI computes the opt-in expense breakdown. This is deliberately a
// separate operation from CalculateDSCR's default expense set (tax +
// insurance + HOA only); callers choose one or the other.
func ExtendedNOI(in ExtendedNOIInput) ExtendedNOIBreakdown {
	maintenance := in.RentMonthly * in.MaintenanceRate

	var utilities float64
	switch {
	case in.TenantPaysUtility:
		utilities = 0
	case in.ManualUtilityMonthly > 0:
		utilities = in.ManualUtilityMonthly
	default:
		sqft := in.Sqft
		if sqft <= 0 {
			sqft = UtilityDefaultSqft
		}
		utilities = float64(sqft) * UtilityRatePerSqft
		if utilities < UtilityMonthlyFloor {
			utilities = UtilityMonthlyFloor
		}
		if utilities > UtilityMonthlyCap {
			utilities = UtilityMonthlyCap
		}
	}

	total := in.TaxesMonthly + in.InsuranceMonthly + in.HOAMonthly + maintenance + utilities
	egi := in.RentMonthly * (1 - in.VacancyRate)
	noiMonthly := egi - total

	return ExtendedNOIBreakdown{
		TaxesMonthly:       in.TaxesMonthly,
		InsuranceMonthly:   in.InsuranceMonthly,
		HOAMonthly:         in.HOAMonthly,
		MaintenanceMonthly: maintenance,
		UtilitiesMonthly:   utilities,
		TotalMonthly:       total,
		NOIMonthly:         noiMonthly,
		NOIAnnual:          noiMonthly * 12,
	}
}

// Package report assembles the full investment analysis: it wires the
// location classifier, tax resolver, rent estimator, and loan math into the
// single Calculate contract and composes the narrative output.
package report

import (
	"errors"
	"fmt"

	"rent_dscr/pkg/core/config"
	"rent_dscr/pkg/core/loan"
	"rent_dscr/pkg/core/location"
	"rent_dscr/pkg/core/refdata"
	"rent_dscr/pkg/core/rent"
	"rent_dscr/pkg/core/tax"
)

// Sentinel errors surfaced to callers. Malformed optional attributes are
// never errors; they are recovered with defaults and charged to confidence.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrJurisdictionNotFound = errors.New("tax jurisdiction not found")
)

// Input is one investor request. Zero values mean "not provided" except
// where a pointer distinguishes an explicit zero.
type Input struct {
	Address string  `json:"address"`
	Price   float64 `json:"purchase_price"`

	// Down payment: a positive amount takes precedence over a positive
	// fraction; neither defaults to 20%.
	DownPaymentAmount   float64 `json:"down_payment_amount"`
	DownPaymentFraction float64 `json:"down_payment_percent"`

	InterestRateAnnual float64 `json:"interest_rate_annual"` // 0 -> 0.07
	TermYears          int     `json:"term_years"`           // 0 -> 30
	InterestOnly       bool    `json:"interest_only"`
	VacancyRate        float64 `json:"vacancy_rate"`

	InsuranceMonthly *float64 `json:"insurance_monthly"` // nil -> 150
	HOAMonthly       float64  `json:"hoa_monthly"`

	// Overrides: a positive manual rent replaces the estimate; a positive
	// manual annual tax replaces jurisdiction resolution.
	ManualRentMonthly float64 `json:"manual_rent_monthly"`
	ManualTaxesAnnual float64 `json:"manual_taxes_annual"`

	Attributes rent.Attributes `json:"attributes"`
}

// Default operating assumptions.
const (
	DefaultInterestRateAnnual = 0.07
	DefaultTermYears          = 30
	DefaultInsuranceMonthly   = 150.0
)

// Result is the complete output record. Built fresh per request, never
// mutated afterwards; identical input against the same reference data
// yields an identical Result.
type Result struct {
	Mode string `json:"mode"`

	Address             string  `json:"address"`
	PurchasePrice       float64 `json:"purchase_price"`
	DownPaymentAmount   float64 `json:"down_payment_amount"`
	DownPaymentFraction float64 `json:"down_payment_percent"`
	LoanAmount          float64 `json:"loan_amount"`
	InterestRateAnnual  float64 `json:"interest_rate_annual"`
	TermYears           int     `json:"term_years"`
	InterestOnly        bool    `json:"interest_only"`

	EstimatedMonthlyRent float64  `json:"estimated_monthly_rent"`
	LowEstimateRent      float64  `json:"low_estimate_rent"`
	HighEstimateRent     float64  `json:"high_estimate_rent"`
	VacancyRate          float64  `json:"vacancy_rate"`
	ConfidenceScore      float64  `json:"confidence_score"`
	Assumptions          []string `json:"assumptions"`

	Region string         `json:"market_region"`
	Tax    tax.Resolution `json:"tax"`

	PropertyTaxMonthly       float64 `json:"property_tax_monthly"`
	PropertyTaxAnnual        float64 `json:"property_tax_annual"`
	InsuranceMonthly         float64 `json:"insurance_monthly"`
	HOAMonthly               float64 `json:"hoa_monthly"`
	OperatingExpensesMonthly float64 `json:"operating_expenses_monthly"`

	EffectiveGrossIncomeMonthly float64 `json:"effective_gross_income_monthly"`
	NOIMonthly                  float64 `json:"NOI_monthly"`
	NOIAnnual                   float64 `json:"NOI_annual"`
	MonthlyDebtService          float64 `json:"monthly_debt_service"`
	AnnualDebtService           float64 `json:"annual_debt_service"`
	DSCR                        float64 `json:"DSCR"`
	RiskLabel                   string  `json:"risk_label"`
	MonthlyCashflow             float64 `json:"monthly_cashflow"`

	InputsSummary    string   `json:"inputs_summary"`
	HumanSummary     string   `json:"human_summary"`
	NotesForInvestor []string `json:"notes_for_investor"`
	Disclaimer       string   `json:"disclaimer"`
}

// Engine holds the injected reference-data handle and policy config.
// Engines are cheap and safe for concurrent use: all state is read-only.
type Engine struct {
	store *refdata.Store
	cfg   *config.Config
}

// NewEngine builds an engine around a loaded store and config.
func NewEngine(store *refdata.Store, cfg *config.Config) *Engine {
	return &Engine{store: store, cfg: cfg}
}

// Calculate runs the full analysis for one request.
//
// Fails only on missing/non-positive price, or - under strict tax policy -
// on an address that resolves to no known jurisdiction. Everything else is
// recovered with defaults and surfaced through assumptions and notes.
func (e *Engine) Calculate(in Input) (*Result, error) {
	if in.Address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: purchase_price must be positive, got %v", ErrInvalidInput, in.Price)
	}
	if in.DownPaymentAmount < 0 || in.DownPaymentFraction < 0 || in.DownPaymentFraction >= 1 {
		return nil, fmt.Errorf("%w: malformed down payment specification", ErrInvalidInput)
	}

	rate := in.InterestRateAnnual
	if rate == 0 {
		rate = DefaultInterestRateAnnual
	}
	term := in.TermYears
	if term == 0 {
		term = DefaultTermYears
	}
	insurance := DefaultInsuranceMonthly
	if in.InsuranceMonthly != nil {
		insurance = *in.InsuranceMonthly
	}

	// Step 1: jurisdiction + market region.
	loc := location.Classify(in.Address)

	// Step 2: property tax under the deployment policy.
	taxRes, err := e.resolveTax(in, loc)
	if err != nil {
		return nil, err
	}

	// Step 3: rent estimate (or manual override).
	var estimate rent.Estimate
	if in.ManualRentMonthly > 0 {
		estimate = rent.Manual(in.ManualRentMonthly)
	} else {
		estimate = rent.EstimateRent(e.store, in.Address, in.Price, loc.Region, in.Attributes)
	}

	// Step 4: loan sizing and debt service.
	terms := loan.SizeLoan(in.Price, in.DownPaymentAmount, in.DownPaymentFraction)
	debtService := loan.DebtService(terms.Principal, rate, term, in.InterestOnly)

	// Step 5: operating expenses = tax + insurance + HOA.
	var taxMonthly, taxAnnual float64
	if taxRes.MonthlyTax != nil {
		taxMonthly = *taxRes.MonthlyTax
		taxAnnual = *taxRes.AnnualTax
	}
	opEx := taxMonthly + insurance + in.HOAMonthly

	// Step 6: coverage metrics.
	dscrRes := loan.CalculateDSCR(estimate.Estimated, in.VacancyRate, opEx, debtService, e.cfg.RiskThresholds)

	res := &Result{
		Mode: "ai_rent_and_dscr",

		Address:             in.Address,
		PurchasePrice:       in.Price,
		DownPaymentAmount:   terms.DownPaymentAmount,
		DownPaymentFraction: terms.DownPaymentFraction,
		LoanAmount:          terms.Principal,
		InterestRateAnnual:  rate,
		TermYears:           term,
		InterestOnly:        in.InterestOnly,

		EstimatedMonthlyRent: estimate.Estimated,
		LowEstimateRent:      estimate.Low,
		HighEstimateRent:     estimate.High,
		VacancyRate:          in.VacancyRate,
		ConfidenceScore:      estimate.Confidence,
		Assumptions:          estimate.Assumptions,

		Region: loc.Region,
		Tax:    taxRes,

		PropertyTaxMonthly:       taxMonthly,
		PropertyTaxAnnual:        taxAnnual,
		InsuranceMonthly:         insurance,
		HOAMonthly:               in.HOAMonthly,
		OperatingExpensesMonthly: opEx,

		EffectiveGrossIncomeMonthly: dscrRes.EffectiveGrossIncome,
		NOIMonthly:                  dscrRes.NOIMonthly,
		NOIAnnual:                   dscrRes.NOIAnnual,
		MonthlyDebtService:          debtService,
		AnnualDebtService:           dscrRes.AnnualDebtService,
		DSCR:                        dscrRes.DSCR,
		RiskLabel:                   dscrRes.RiskLabel,
		MonthlyCashflow:             dscrRes.CashflowMonthly,

		Disclaimer: Disclaimer,
	}

	res.InputsSummary = inputsSummary(res)
	res.HumanSummary = humanSummary(res)
	res.NotesForInvestor = investorNotes(res)
	return res, nil
}

// resolveTax applies the configured policy on top of the strict resolver.
func (e *Engine) resolveTax(in Input, loc location.Classification) (tax.Resolution, error) {
	if in.ManualTaxesAnnual > 0 {
		return tax.Manual(in.ManualTaxesAnnual), nil
	}

	res := tax.Resolve(e.store, loc.County, in.Price)
	if res.Accuracy == tax.AccuracyOK {
		return res, nil
	}

	switch e.cfg.TaxPolicy {
	case config.TaxPolicyStrict:
		return res, fmt.Errorf(
			"%w: address %q did not resolve to a county with a known millage rate; "+
				"include a recognizable city or county name, or supply manual_taxes_annual",
			ErrJurisdictionNotFound, in.Address)
	default:
		// Fallback policy: flat rate on price, clearly tagged.
		return tax.FlatFallback(in.Price, e.cfg.FallbackTaxRate), nil
	}
}

// ExtendedNOI exposes the opt-in deeper expense breakdown for a computed
// result, keeping it separate from the default DSCR expense set.
func (e *Engine) ExtendedNOI(in Input, res *Result, maintenanceRate float64, tenantPaysUtilities bool, manualUtilityMonthly float64) loan.ExtendedNOIBreakdown {
	return loan.ExtendedNOI(loan.ExtendedNOIInput{
		RentMonthly:          res.EstimatedMonthlyRent,
		TaxesMonthly:         res.PropertyTaxMonthly,
		InsuranceMonthly:     res.InsuranceMonthly,
		HOAMonthly:           res.HOAMonthly,
		Sqft:                 in.Attributes.Sqft,
		VacancyRate:          res.VacancyRate,
		MaintenanceRate:      maintenanceRate,
		TenantPaysUtility:    tenantPaysUtilities,
		ManualUtilityMonthly: manualUtilityMonthly,
	})
}

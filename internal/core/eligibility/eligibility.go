// Package eligibility implements the Förderfähigkeit pre-screening: input
// validation and rule evaluation for purpose, amount and postal code.
// Everything here is pure and independent of the store.
package eligibility

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Status is the overall outcome of an evaluation
type Status string

const (
	StatusEligible   Status = "eligible"
	StatusIneligible Status = "ineligible"
)

// Criterion identifies one of the evaluated fields
type Criterion string

const (
	CriterionPurpose    Criterion = "purpose"
	CriterionAmount     Criterion = "amount"
	CriterionPostalCode Criterion = "postalCode"
)

// criteria in display order
var criteria = []Criterion{CriterionPurpose, CriterionAmount, CriterionPostalCode}

// Rule thresholds
const (
	MinEligibleAmount = 5000
	MaxEligibleAmount = 200000
)

// PurposeKeywords are matched case-insensitively as substrings of the purpose
var PurposeKeywords = []string{
	"sanierung",
	"energie",
	"effizienz",
	"modernisierung",
	"klima",
	"wohnen",
	"renovierung",
}

var validPostalCode = regexp.MustCompile(`^[0-9]{5}$`)

const (
	eligibleOutcomeLabel   = "förderfähig"
	ineligibleOutcomeLabel = "nicht förderfähig"

	purposeRequirement = "Der Zweck sollte energiebezogene Sanierungs- oder Effizienzmaßnahmen beschreiben (z. B. Sanierung, Energieeffizienz, Klimaschutz)."
	postalRequirement  = "Fünfstellige deutsche Postleitzahl (z. B. 10115)."
)

var (
	minAmountLabel     = formatInteger(MinEligibleAmount)
	maxAmountLabel     = formatInteger(MaxEligibleAmount)
	amountRequirement  = "Betrag zwischen " + minAmountLabel + " € und " + maxAmountLabel + " €."
	amountRangeMessage = "Der Betrag muss zwischen " + minAmountLabel + " € und " + maxAmountLabel + " € liegen."
)

// RawInput is the free-text form input
type RawInput struct {
	Purpose    string `json:"purpose"`
	Amount     string `json:"amount"`
	PostalCode string `json:"postalCode"`
}

// Input is validated, normalized input
type Input struct {
	Purpose    string  `json:"purpose"`
	Amount     float64 `json:"amount"`
	PostalCode string  `json:"postalCode"`
}

// Check is the outcome of one rule
type Check struct {
	ID          Criterion `json:"id"`
	Label       string    `json:"label"`
	Passed      bool      `json:"passed"`
	Requirement string    `json:"requirement"`
}

// Result is the outcome of Evaluate
type Result struct {
	Status       Status  `json:"status"`
	OutcomeLabel string  `json:"outcomeLabel"`
	Checks       []Check `json:"checks"`
}

// IsEligible reports whether every check passed
func (r Result) IsEligible() bool {
	return r.Status == StatusEligible
}

// FieldErrors maps a criterion to a German error message
type FieldErrors map[Criterion]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, c := range criteria {
		if msg, ok := e[c]; ok {
			parts = append(parts, string(c)+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

// Validate normalizes raw and checks it field by field. It returns either
// the typed input or FieldErrors, never both.
func Validate(raw RawInput) (Input, error) {
	errs := FieldErrors{}

	purpose := NormalizeText(raw.Purpose)
	if purpose == "" {
		errs[CriterionPurpose] = "Bitte den Verwendungszweck angeben."
	} else if utf8.RuneCountInString(purpose) < 3 {
		errs[CriterionPurpose] = "Bitte den Verwendungszweck mit mindestens 3 Zeichen beschreiben."
	}

	amount, ok := ParseAmount(raw.Amount)
	if !ok {
		errs[CriterionAmount] = "Bitte einen gültigen Betrag eingeben."
	} else if !amountWithinRange(amount) {
		errs[CriterionAmount] = amountRangeMessage
	}

	postalCode := NormalizePostalCode(raw.PostalCode)
	if postalCode == "" {
		errs[CriterionPostalCode] = "Bitte eine Postleitzahl angeben."
	} else if !validPostalCode.MatchString(postalCode) {
		errs[CriterionPostalCode] = "Bitte eine fünfstellige deutsche Postleitzahl verwenden."
	}

	if len(errs) > 0 {
		return Input{}, errs
	}
	return Input{Purpose: purpose, Amount: amount, PostalCode: postalCode}, nil
}

// Evaluate runs the three rules. The result is eligible iff all pass.
func Evaluate(in Input) Result {
	purpose := strings.ToLower(NormalizeText(in.Purpose))
	postalCode := NormalizePostalCode(in.PostalCode)

	checks := []Check{
		{
			ID:          CriterionPurpose,
			Label:       "Verwendungszweck",
			Passed:      containsEligiblePurpose(purpose),
			Requirement: purposeRequirement,
		},
		{
			ID:          CriterionAmount,
			Label:       "Förderbetrag",
			Passed:      amountWithinRange(in.Amount),
			Requirement: amountRequirement,
		},
		{
			ID:          CriterionPostalCode,
			Label:       "Postleitzahl",
			Passed:      validPostalCode.MatchString(postalCode),
			Requirement: postalRequirement,
		},
	}

	status := StatusEligible
	for _, c := range checks {
		if !c.Passed {
			status = StatusIneligible
			break
		}
	}

	label := eligibleOutcomeLabel
	if status == StatusIneligible {
		label = ineligibleOutcomeLabel
	}
	return Result{Status: status, OutcomeLabel: label, Checks: checks}
}

func containsEligiblePurpose(purpose string) bool {
	if purpose == "" {
		return false
	}
	for _, keyword := range PurposeKeywords {
		if strings.Contains(purpose, keyword) {
			return true
		}
	}
	return false
}

func amountWithinRange(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount >= MinEligibleAmount && amount <= MaxEligibleAmount
}

package dealcalc

import (
	"fmt"
	"slices"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateScenarios computes one finance scenario per finance term followed by
// one lease scenario per lease term, preserving the caller's order so the
// first element can serve as the default offer. Two candidates of the same
// kind and term are rejected with ErrDuplicateScenarioTerm.
func GenerateScenarios(inputs domain.DealInputs, financeTerms []domain.FinanceTerms, leaseTerms []domain.LeaseTerms) ([]domain.Scenario, error) {
	return GenerateScenariosWithOptions(inputs, financeTerms, leaseTerms, StructureOptions{TaxBasis: TaxBasisPriceLessTrade})
}

// GenerateScenariosWithOptions is GenerateScenarios with a configurable structure.
func GenerateScenariosWithOptions(inputs domain.DealInputs, financeTerms []domain.FinanceTerms, leaseTerms []domain.LeaseTerms, opts StructureOptions) ([]domain.Scenario, error) {
	if len(financeTerms) == 0 && len(leaseTerms) == 0 {
		return []domain.Scenario{}, nil
	}
	if err := checkScenarioIDs(financeTerms, leaseTerms); err != nil {
		return nil, err
	}

	structure, err := BuildStructureWithOptions(inputs, opts)
	if err != nil {
		return nil, err
	}
	return GenerateScenariosForStructure(inputs, structure, financeTerms, leaseTerms)
}

// GenerateScenariosForStructure prices the candidate terms against a structure
// already built from inputs.
func GenerateScenariosForStructure(inputs domain.DealInputs, structure domain.DealStructure, financeTerms []domain.FinanceTerms, leaseTerms []domain.LeaseTerms) ([]domain.Scenario, error) {
	scenarios := make([]domain.Scenario, 0, len(financeTerms)+len(leaseTerms))
	if len(financeTerms) == 0 && len(leaseTerms) == 0 {
		return scenarios, nil
	}
	if err := checkScenarioIDs(financeTerms, leaseTerms); err != nil {
		return nil, err
	}

	for _, terms := range financeTerms {
		s, err := financeScenario(inputs, structure, terms)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	for _, terms := range leaseTerms {
		s, err := leaseScenario(inputs, terms)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func checkScenarioIDs(financeTerms []domain.FinanceTerms, leaseTerms []domain.LeaseTerms) error {
	seen := make(map[string]struct{}, len(financeTerms)+len(leaseTerms))
	check := func(kind domain.ScenarioKind, term int) error {
		id := domain.ScenarioID(kind, term)
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: more than one %s candidate at %d months", apperrors.ErrDuplicateScenarioTerm, kind, term)
		}
		seen[id] = struct{}{}
		return nil
	}
	for _, t := range financeTerms {
		if err := check(domain.ScenarioFinance, t.TermMonths); err != nil {
			return err
		}
	}
	for _, t := range leaseTerms {
		if err := check(domain.ScenarioLease, t.TermMonths); err != nil {
			return err
		}
	}
	return nil
}

func financeScenario(inputs domain.DealInputs, structure domain.DealStructure, terms domain.FinanceTerms) (domain.Scenario, error) {
	if err := terms.Validate(); err != nil {
		return domain.Scenario{}, err
	}
	payment, err := ComputeMonthlyPayment(structure.FinanceAmount, terms.APRPercent, terms.TermMonths)
	if err != nil {
		return domain.Scenario{}, err
	}
	total := TotalOfPayments(payment, terms.TermMonths)
	interest := total.Sub(structure.FinanceAmount)
	if interest.IsNegative() {
		// Rounding the payment down can leave total a few cents short at 0% APR.
		interest = decimal.Zero
	}

	return domain.Scenario{
		ID:              domain.ScenarioID(domain.ScenarioFinance, terms.TermMonths),
		Label:           fmt.Sprintf("%d-Month Finance", terms.TermMonths),
		Kind:            domain.ScenarioFinance,
		TermMonths:      terms.TermMonths,
		RatePercent:     terms.APRPercent,
		FinanceAmount:   structure.FinanceAmount,
		MonthlyPayment:  payment,
		TotalOfPayments: total,
		TotalInterest:   interest,
		TotalCost:       total.Add(inputs.CashDown),
		ResidualValue:   decimal.Zero,
		Warnings:        slices.Clone(structure.Warnings),
	}, nil
}

// leaseScenario prices the lease on the vehicle price as gross cap cost.
func leaseScenario(inputs domain.DealInputs, terms domain.LeaseTerms) (domain.Scenario, error) {
	if err := terms.Validate(); err != nil {
		return domain.Scenario{}, err
	}
	capCost := inputs.VehiclePrice
	lease, err := ComputeLeasePayment(capCost, terms.ResidualPercent, terms.Rate, terms.IsMoneyFactor(), terms.TermMonths)
	if err != nil {
		return domain.Scenario{}, err
	}
	total := TotalOfPayments(lease.Payment, terms.TermMonths)

	return domain.Scenario{
		ID:              domain.ScenarioID(domain.ScenarioLease, terms.TermMonths),
		Label:           fmt.Sprintf("%d-Month Lease", terms.TermMonths),
		Kind:            domain.ScenarioLease,
		TermMonths:      terms.TermMonths,
		RatePercent:     terms.Rate,
		FinanceAmount:   capCost,
		MonthlyPayment:  lease.Payment,
		TotalOfPayments: total,
		TotalInterest:   TotalOfPayments(lease.RentCharge, terms.TermMonths),
		TotalCost:       total.Add(inputs.CashDown),
		ResidualValue:   lease.ResidualValue,
		AnnualMileage:   terms.AnnualMileage,
	}, nil
}

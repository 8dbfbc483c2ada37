package domain

import "github.com/shopspring/decimal"

// ProfitBreakdown is the profit roll-up of a finalized deal. It is derived
// from the selected scenario and F&I set and is never edited directly.
type ProfitBreakdown struct {
	FrontEnd            decimal.Decimal `json:"frontEnd"`
	BackEnd             decimal.Decimal `json:"backEnd"`
	Holdback            decimal.Decimal `json:"holdback"`
	Incentives          decimal.Decimal `json:"incentives"`
	TotalProfit         decimal.Decimal `json:"totalProfit"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`
}

// VehicleCategory drives the pack cost charged against deal gross.
type VehicleCategory string

const (
	VehicleNew       VehicleCategory = "new"
	VehicleUsed      VehicleCategory = "used"
	VehicleCertified VehicleCategory = "certified"
)

// PackCosts maps each vehicle category to its dealer overhead pack.
type PackCosts map[VehicleCategory]decimal.Decimal

// DefaultPackCosts returns the standard dealership pack schedule.
func DefaultPackCosts() PackCosts {
	return PackCosts{
		VehicleNew:       decimal.NewFromInt(500),
		VehicleUsed:      decimal.NewFromInt(300),
		VehicleCertified: decimal.NewFromInt(400),
	}
}

// GrossCalculation is the accounting view of a deal's gross.
type GrossCalculation struct {
	FrontEndGross  decimal.Decimal `json:"frontEndGross"`
	FinanceReserve decimal.Decimal `json:"financeReserve"`
	ProductGross   decimal.Decimal `json:"productGross"`
	PackCost       decimal.Decimal `json:"packCost"`
	NetGross       decimal.Decimal `json:"netGross"`
}

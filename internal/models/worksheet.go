package models

// Worksheet is a row of the deal_worksheets table. The deal itself (inputs,
// candidate terms, scenarios, selection and profit) is kept in Document as
// JSONB; only the columns used for lookup and listing are broken out.
type Worksheet struct {
	WorksheetID        string `db:"worksheet_id"`
	CustomerName       string `db:"customer_name"`
	VIN                string `db:"vin"`
	Status             string `db:"status"`
	SelectedScenarioID string `db:"selected_scenario_id"`
	Document           []byte `db:"document"`
	Version            int    `db:"version"`
	AuditFields
}

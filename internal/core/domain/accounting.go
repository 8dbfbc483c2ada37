package domain

import "github.com/shopspring/decimal"

// AccountingEntry is one line of a deal recap posting.
type AccountingEntry struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo"`
}

// DealRecap identifies the deal a recap posting is written for.
type DealRecap struct {
	DealNumber string
	VIN        string
	TradeVIN   string
	BuyerName  string
}

package dealcalc

import (
	"fmt"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/SscSPs/deal_desk/internal/utils"
	"github.com/shopspring/decimal"
)

// RecapAmounts are the posted figures of a deal.
type RecapAmounts struct {
	SalePrice      decimal.Decimal
	TradeAllowance decimal.Decimal
	TradePayoff    decimal.Decimal
	CashDown       decimal.Decimal
	SalesTax       decimal.Decimal
	DocFee         decimal.Decimal
}

// GenerateAccountingEntries builds the recap posting for a deal. Zero lines are omitted.
func GenerateAccountingEntries(recap domain.DealRecap, amounts RecapAmounts, gross domain.GrossCalculation) []domain.AccountingEntry {
	var entries []domain.AccountingEntry
	debit := func(code, name string, amount decimal.Decimal, memo string) {
		entries = append(entries, domain.AccountingEntry{AccountCode: code, AccountName: name, Debit: amount, Credit: decimal.Zero, Memo: memo})
	}
	credit := func(code, name string, amount decimal.Decimal, memo string) {
		entries = append(entries, domain.AccountingEntry{AccountCode: code, AccountName: name, Debit: decimal.Zero, Credit: amount, Memo: memo})
	}

	if amounts.SalePrice.IsPositive() {
		credit("4010", "Vehicle Sales Revenue", amounts.SalePrice,
			fmt.Sprintf("Sale of VIN %s to %s", recap.VIN, recap.BuyerName))
		debit("1210", "Accounts Receivable", amounts.SalePrice,
			fmt.Sprintf("Receivable for deal #%s", recap.DealNumber))
	}
	if amounts.TradeAllowance.IsPositive() {
		debit("1310", "Trade Vehicle Inventory", amounts.TradeAllowance,
			fmt.Sprintf("Trade-in VIN %s allowance", recap.TradeVIN))
	}
	if amounts.TradePayoff.IsPositive() {
		credit("2110", "Trade Payoffs Payable", amounts.TradePayoff,
			fmt.Sprintf("Payoff for trade VIN %s", recap.TradeVIN))
	}
	if amounts.CashDown.IsPositive() {
		debit("1010", "Cash", amounts.CashDown,
			fmt.Sprintf("Cash down payment of %s for deal #%s", utils.FormatMoney(amounts.CashDown), recap.DealNumber))
	}
	if gross.FinanceReserve.IsPositive() {
		credit("4020", "Finance Reserve Revenue", gross.FinanceReserve,
			fmt.Sprintf("Finance reserve for deal #%s", recap.DealNumber))
	}
	if amounts.SalesTax.IsPositive() {
		credit("2210", "Sales Tax Payable", amounts.SalesTax,
			fmt.Sprintf("Sales tax for deal #%s", recap.DealNumber))
	}
	if amounts.DocFee.IsPositive() {
		credit("4030", "Documentation Fee Revenue", amounts.DocFee,
			fmt.Sprintf("Doc fee for deal #%s", recap.DealNumber))
	}
	if !gross.NetGross.IsZero() {
		memo := fmt.Sprintf("Net gross for deal #%s", recap.DealNumber)
		if gross.NetGross.IsPositive() {
			credit("3000", "Deal Gross Reserve", gross.NetGross, memo)
		} else {
			debit("3000", "Deal Gross Reserve", gross.NetGross.Abs(), memo)
		}
	}
	return entries
}

// EntryTotals sums the debit and credit columns of a posting.
func EntryTotals(entries []domain.AccountingEntry) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, e := range entries {
		debits = debits.Add(e.Debit)
		credits = credits.Add(e.Credit)
	}
	return debits, credits
}

package dealcalc_test

import (
	"testing"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/SscSPs/deal_desk/internal/utils/dealcalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccountingEntries(t *testing.T) {
	recap := domain.DealRecap{DealNumber: "261019-AB12", VIN: "1HGCM82633A004352", TradeVIN: "2T1BURHE5JC012345", BuyerName: "Jordan Reyes"}
	amounts := dealcalc.RecapAmounts{
		SalePrice:      dec("32900"),
		TradeAllowance: dec("8500"),
		TradePayoff:    dec("6000"),
		CashDown:       dec("3000"),
		SalesTax:       dec("2013"),
		DocFee:         dec("299"),
	}
	gross, err := dealcalc.CalculateDealGross(sampleGrossInputs(), dealcalc.DefaultGrossConfig())
	require.NoError(t, err)

	entries := dealcalc.GenerateAccountingEntries(recap, amounts, gross)
	require.Len(t, entries, 9)

	codes := make([]string, len(entries))
	for i, e := range entries {
		codes[i] = e.AccountCode
	}
	assert.Equal(t, []string{"4010", "1210", "1310", "2110", "1010", "4020", "2210", "4030", "3000"}, codes)
	assert.Equal(t, "Sale of VIN 1HGCM82633A004352 to Jordan Reyes", entries[0].Memo)
	assert.Equal(t, "Cash down payment of $3,000.00 for deal #261019-AB12", entries[4].Memo)

	debits, credits := dealcalc.EntryTotals(entries)
	assert.Equal(t, "44400", debits.String())
	assert.Equal(t, "55684.00", credits.StringFixed(2))
}

func TestGenerateAccountingEntries_LosingDealDebitsGrossReserve(t *testing.T) {
	gross := domain.GrossCalculation{NetGross: dec("-450")}
	entries := dealcalc.GenerateAccountingEntries(domain.DealRecap{DealNumber: "1"}, dealcalc.RecapAmounts{}, gross)
	require.Len(t, entries, 1)
	assert.Equal(t, "3000", entries[0].AccountCode)
	assert.Equal(t, "450", entries[0].Debit.String())
	assert.True(t, entries[0].Credit.IsZero())
}

func TestGenerateAccountingEntries_Empty(t *testing.T) {
	entries := dealcalc.GenerateAccountingEntries(domain.DealRecap{}, dealcalc.RecapAmounts{}, domain.GrossCalculation{})
	assert.Empty(t, entries)
	debits, credits := dealcalc.EntryTotals(entries)
	assert.True(t, debits.Equal(decimal.Zero))
	assert.True(t, credits.Equal(decimal.Zero))
}

package domain_test

import (
	"testing"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCreditTierForScore(t *testing.T) {
	tests := []struct {
		score int
		want  domain.CreditTier
	}{
		{820, domain.TierExcellent},
		{750, domain.TierExcellent},
		{749, domain.TierGood},
		{680, domain.TierGood},
		{679, domain.TierFair},
		{620, domain.TierFair},
		{619, domain.TierPoor},
		{300, domain.TierPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.CreditTierForScore(tt.score), "score %d", tt.score)
	}
}

func TestLender_RateFor(t *testing.T) {
	lenders := domain.DefaultLenders()
	assert.Len(t, lenders, 4)

	rate, tier := lenders[0].RateFor(700)
	assert.Equal(t, domain.TierGood, tier)
	assert.Equal(t, "6.2", rate.String())
}

func TestFeeSchedule_TaxRateFor(t *testing.T) {
	fees := domain.DefaultFeeSchedule()
	assert.Equal(t, "8.25", fees.TaxRateFor("CA").String())
	assert.Equal(t, "8.25", fees.TaxRateFor(" ca ").String())
	assert.True(t, fees.TaxRateFor("OR").IsZero())
	assert.Equal(t, "7", fees.TaxRateFor("OH").String())
}

func TestFiProduct_Line(t *testing.T) {
	for _, p := range domain.DefaultFiProducts() {
		line := p.Line()
		assert.True(t, line.RetailPrice().Equal(p.RetailPrice), p.ProductID)
		assert.False(t, line.Selected)
	}
}

package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/core/services"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	service portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.service = services.NewRateService(services.WithDefaultTaxRate(dec("6.75")))
}

func (suite *RateServiceTestSuite) TestListLenders_ReturnsCopy() {
	ctx := context.Background()
	lenders := suite.service.ListLenders(ctx)
	suite.Require().Len(lenders, 4)
	suite.Equal("chase-auto", lenders[0].LenderID)

	lenders[0].LenderID = "mutated"
	suite.Equal("chase-auto", suite.service.ListLenders(ctx)[0].LenderID)
}

func (suite *RateServiceTestSuite) TestTaxRateFor() {
	ctx := context.Background()
	suite.Equal("8.25", suite.service.TaxRateFor(ctx, " ca ").String())
	suite.True(suite.service.TaxRateFor(ctx, "OR").IsZero())
	suite.Equal("6.75", suite.service.TaxRateFor(ctx, "ZZ").String())
	suite.Equal("6.75", suite.service.GetFeeSchedule(ctx).DefaultTaxRate.String())
}

func (suite *RateServiceTestSuite) TestListFiProducts() {
	products := suite.service.ListFiProducts(context.Background())
	suite.Require().Len(products, 5)
	suite.Equal("gap_coverage", products[1].ProductID)
}

func (suite *RateServiceTestSuite) TestQuoteLender_Approved() {
	quote, err := suite.service.QuoteLender(context.Background(), "toyota-financial", dto.LenderQuoteRequest{
		CreditScore: 760, FinanceAmount: dec("27600"), VehiclePrice: dec("32900"), TermMonths: 72,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.TierExcellent, quote.CreditTier)
	suite.Equal("3.9", quote.APRPercent.String())
	suite.Equal("430.55", quote.MonthlyPayment.StringFixed(2))
	suite.Equal("83.89", quote.LTVPercent.StringFixed(2))
	suite.True(quote.Approved)
}

func (suite *RateServiceTestSuite) TestQuoteLender_UnknownLender() {
	quote, err := suite.service.QuoteLender(context.Background(), "nope", dto.LenderQuoteRequest{
		CreditScore: 700, FinanceAmount: dec("1000"), VehiclePrice: dec("1000"), TermMonths: 12,
	})
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RateServiceTestSuite) TestQuoteLender_InvalidScore() {
	_, err := suite.service.QuoteLender(context.Background(), "chase-auto", dto.LenderQuoteRequest{
		CreditScore: 200, FinanceAmount: dec("1000"), VehiclePrice: dec("1000"), TermMonths: 12,
	})
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}

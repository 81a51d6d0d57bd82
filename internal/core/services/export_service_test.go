package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/savannah-hms/hotel_backoffice/internal/apperrors"
	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	portssvc "github.com/savannah-hms/hotel_backoffice/internal/core/ports/services"
	"github.com/savannah-hms/hotel_backoffice/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RevenueService ---
type MockRevenueService struct {
	mock.Mock
}

func (m *MockRevenueService) ConsolidateTransactions(ctx context.Context, businessID string, period domain.Period, filter domain.SectorFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, businessID, period, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockRevenueService) SummarizeOverview(ctx context.Context, businessID string, period domain.Period) (*domain.OverviewSummary, error) {
	args := m.Called(ctx, businessID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverviewSummary), args.Error(1)
}

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockRevenue *MockRevenueService
	service     portssvc.ExportSvcFacade

	period domain.Period
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockRevenue = new(MockRevenueService)
	suite.service = services.NewExportService(suite.mockRevenue)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.period = domain.Period{From: from, To: from.AddDate(0, 1, 0)}
}

func (suite *ExportServiceTestSuite) dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	suite.Require().NoError(err)
	return d
}

func (suite *ExportServiceTestSuite) balancedTxn(day int, ref string) domain.Transaction {
	return domain.Transaction{
		Date:        time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC),
		ReferenceID: ref,
		Sector:      domain.SectorBar,
		NetAmount:   suite.dec("100.00"),
		VATAmount:   suite.dec("18.00"),
		GrossAmount: suite.dec("118.00"),
		PaymentMode: "CASH",
	}
}

// --- Test Cases ---

func (suite *ExportServiceTestSuite) TestExport_WritesRowsAscendingByDate() {
	// Consolidated stream arrives descending; the CSV presents ascending.
	suite.mockRevenue.On("ConsolidateTransactions", mock.Anything, "biz-1", suite.period, domain.SectorFilterAll).
		Return([]domain.Transaction{
			suite.balancedTxn(20, "BAR-2"),
			suite.balancedTxn(5, "BAR-1"),
		}, nil).Once()

	var buf bytes.Buffer
	err := suite.service.WriteComplianceCSV(context.Background(), &buf, "biz-1", suite.period, domain.SectorFilterAll)

	suite.Require().NoError(err)

	rows, err := csv.NewReader(&buf).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal([]string{"date", "reference", "sector", "net_amount", "vat_amount", "gross_amount", "payment_mode"}, rows[0])
	suite.Equal("BAR-1", rows[1][1])
	suite.Equal("BAR-2", rows[2][1])
	suite.Equal("100.00", rows[1][3])
	suite.Equal("18.00", rows[1][4])
	suite.Equal("118.00", rows[1][5])
	suite.Equal("CASH", rows[1][6])
}

func (suite *ExportServiceTestSuite) TestExport_AbortsOnUnbalancedRow() {
	unbalanced := suite.balancedTxn(10, "BAR-BAD")
	unbalanced.VATAmount = suite.dec("17.99")

	suite.mockRevenue.On("ConsolidateTransactions", mock.Anything, "biz-1", suite.period, domain.SectorFilterAll).
		Return([]domain.Transaction{suite.balancedTxn(5, "BAR-OK"), unbalanced}, nil).Once()

	var buf bytes.Buffer
	err := suite.service.WriteComplianceCSV(context.Background(), &buf, "biz-1", suite.period, domain.SectorFilterAll)

	suite.Require().Error(err)
	var reconErr *apperrors.ReconciliationError
	suite.Require().True(errors.As(err, &reconErr))
	suite.Equal("BAR-BAD", reconErr.ReferenceID)
	// Nothing was written: the export aborts before the first byte.
	suite.Zero(buf.Len())
}

func (suite *ExportServiceTestSuite) TestExport_AbortsOnMissingPaymentMode() {
	unmapped := suite.balancedTxn(10, "BAR-NOPAY")
	unmapped.PaymentMode = ""

	suite.mockRevenue.On("ConsolidateTransactions", mock.Anything, "biz-1", suite.period, domain.SectorFilterAll).
		Return([]domain.Transaction{unmapped}, nil).Once()

	var buf bytes.Buffer
	err := suite.service.WriteComplianceCSV(context.Background(), &buf, "biz-1", suite.period, domain.SectorFilterAll)

	suite.Require().Error(err)
	var paymentErr *apperrors.PaymentModeError
	suite.Require().True(errors.As(err, &paymentErr))
	suite.Equal("BAR-NOPAY", paymentErr.ReferenceID)
	suite.Zero(buf.Len())
}

func (suite *ExportServiceTestSuite) TestExport_RequiresExplicitPeriod() {
	var buf bytes.Buffer
	err := suite.service.WriteComplianceCSV(context.Background(), &buf, "biz-1", domain.Period{}, domain.SectorFilterAll)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRevenue.AssertNotCalled(suite.T(), "ConsolidateTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

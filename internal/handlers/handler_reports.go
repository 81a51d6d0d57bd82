package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/savannah-hms/hotel_backoffice/internal/apperrors"
	"github.com/savannah-hms/hotel_backoffice/internal/core/domain"
	portssvc "github.com/savannah-hms/hotel_backoffice/internal/core/ports/services"
	"github.com/savannah-hms/hotel_backoffice/internal/dto"
	"github.com/savannah-hms/hotel_backoffice/internal/middleware"
)

// reportsHandler handles HTTP requests for revenue reports and exports
type reportsHandler struct {
	taxPolicyService portssvc.TaxPolicySvcFacade
	revenueService   portssvc.RevenueSvcFacade
	exportService    portssvc.ExportSvcFacade
}

// newReportsHandler creates a new reportsHandler
func newReportsHandler(services *portssvc.ServiceContainer) *reportsHandler {
	return &reportsHandler{
		taxPolicyService: services.TaxPolicy,
		revenueService:   services.Revenue,
		exportService:    services.Export,
	}
}

// registerReportRoutes registers routes related to revenue reports.
// exportMiddleware is applied to the export group only.
func registerReportRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, exportMiddleware ...gin.HandlerFunc) {
	h := newReportsHandler(services)

	reports := rg.Group("/businesses/:business_id/reports")
	{
		reports.GET("/transactions", h.listTransactions)
		reports.GET("/overview", h.getOverview)
		reports.GET("/tax-config", h.getTaxConfig)

		exports := reports.Group("/export", exportMiddleware...)
		exports.GET("/csv", h.exportComplianceCSV)
	}
}

// listTransactions returns the consolidated transaction ledger for a period,
// most recent first.
func (h *reportsHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	if businessID == "" {
		logger.Error("Business ID missing from path for listTransactions")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Business ID required in path"})
		return
	}

	var query dto.ReportPeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters. Dates use YYYY-MM-DD; sector is rooms, bar, restaurant or all"})
		return
	}

	period := parsePeriod(query)
	filter := parseSectorFilter(query.Sector)

	transactions, err := h.revenueService.ConsolidateTransactions(c.Request.Context(), businessID, period, filter)
	if err != nil {
		logger.Error("Failed to consolidate transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate transaction report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions, period, filter))
}

// getOverview returns whole-business period totals and per-sector sub-totals.
func (h *reportsHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	if businessID == "" {
		logger.Error("Business ID missing from path for getOverview")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Business ID required in path"})
		return
	}

	var query dto.ReportPeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid overview query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters. Dates use YYYY-MM-DD"})
		return
	}

	summary, err := h.revenueService.SummarizeOverview(c.Request.Context(), businessID, parsePeriod(query))
	if err != nil {
		logger.Error("Failed to generate overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate overview"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(summary))
}

// getTaxConfig returns the business's resolved tax policy.
func (h *reportsHandler) getTaxConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	if businessID == "" {
		logger.Error("Business ID missing from path for getTaxConfig")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Business ID required in path"})
		return
	}

	taxConfig := h.taxPolicyService.ResolveTaxConfig(c.Request.Context(), businessID)
	c.JSON(http.StatusOK, dto.ToTaxConfigResponse(taxConfig))
}

// exportComplianceCSV streams the period's validated ledger as CSV. Unlike
// the dashboard endpoints, the period must be supplied explicitly.
func (h *reportsHandler) exportComplianceCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	if businessID == "" {
		logger.Error("Business ID missing from path for exportComplianceCSV")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Business ID required in path"})
		return
	}

	var query dto.ReportPeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid export query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters. Dates use YYYY-MM-DD; sector is rooms, bar, restaurant or all"})
		return
	}
	if query.From == "" || query.To == "" {
		logger.Warn("Export requested without explicit period")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Compliance export requires explicit from and to dates"})
		return
	}

	period := parsePeriod(query)
	filter := parseSectorFilter(query.Sector)

	filename := fmt.Sprintf("ledger_%s_%s.csv", query.From, query.To)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv")

	// Validation happens before any byte is written, so an error here can
	// still produce a clean JSON response.
	if err := h.exportService.WriteComplianceCSV(c.Request.Context(), c.Writer, businessID, period, filter); err != nil {
		var reconErr *apperrors.ReconciliationError
		var paymentErr *apperrors.PaymentModeError
		switch {
		case errors.As(err, &reconErr):
			logger.Error("Export aborted: unbalanced transaction", slog.String("reference_id", reconErr.ReferenceID), slog.String("sector", reconErr.Sector))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "referenceID": reconErr.ReferenceID, "sector": reconErr.Sector})
		case errors.As(err, &paymentErr):
			logger.Error("Export aborted: missing payment mode", slog.String("reference_id", paymentErr.ReferenceID))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "referenceID": paymentErr.ReferenceID})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid export request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to write compliance export", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate export"})
		}
		return
	}
}

// parsePeriod turns the query dates into an inclusive period. Both dates
// absent means "today"; a single date anchors the range on that day.
func parsePeriod(query dto.ReportPeriodQuery) domain.Period {
	if query.From == "" && query.To == "" {
		return domain.Today()
	}

	fromStr := query.From
	if fromStr == "" {
		fromStr = query.To
	}
	toStr := query.To
	if toStr == "" {
		toStr = query.From
	}

	// Formats are already validated by the binding.
	from, _ := time.Parse("2006-01-02", fromStr)
	to, _ := time.Parse("2006-01-02", toStr)
	return domain.Period{
		From: from,
		To:   to.Add(24*time.Hour - time.Nanosecond),
	}
}

// parseSectorFilter maps the query value to a sector filter, defaulting to ALL.
func parseSectorFilter(sector string) domain.SectorFilter {
	switch strings.ToLower(sector) {
	case "rooms":
		return domain.SectorFilterRooms
	case "bar":
		return domain.SectorFilterBar
	case "restaurant":
		return domain.SectorFilterRestaurant
	default:
		return domain.SectorFilterAll
	}
}

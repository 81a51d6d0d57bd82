package dto

// ReportPeriodQuery is the shared query surface of the report endpoints.
// Dates use YYYY-MM-DD; the sector filter accepts rooms, bar, restaurant
// or all (validated by the registered sectorfilter rule).
type ReportPeriodQuery struct {
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Sector string `form:"sector" binding:"omitempty,sectorfilter"`
}

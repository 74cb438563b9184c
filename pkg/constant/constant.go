package constant

const (
	// Default date ranges when the caller gives none.
	DefaultReportDays = 7
	DefaultExportDays = 30

	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
	FileDateLayout  = "20060102"

	NotAvailable = "N/A"
)

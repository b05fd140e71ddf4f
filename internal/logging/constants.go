package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across packages so run
// diagnostics stay easy to filter.
const (
	FieldFile       = "file_path"
	FieldFolder     = "folder"
	FieldFormat     = "format"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldCurrency   = "currency"
	FieldCurrencies = "currencies"
	FieldRate       = "rate"
	FieldColumn     = "column"
	FieldRow        = "row"
	FieldDelimiter  = "delimiter"
	FieldOutputFile = "output_file"
	FieldClient     = "client"
)

package engine

// Result describes one uploaded file, for the summary report.
type Result struct {
	File     string
	Table    string
	Columns  []string
	Rows     int // rows read from the file
	Actual   int // rows inserted, or counted on verification
	Status   string
	ErrorMsg string
}

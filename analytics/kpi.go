package analytics

// SummarizeKPIs sums each given numeric column across the rows. Missing columns
// yield zero, never an error, so the KPI cards always render.
func SummarizeKPIs(rows []EventRecord, columns []string) map[string]int {
	result := make(map[string]int, len(columns))
	for _, column := range columns {
		result[column] = SumNumericColumn(rows, column)
	}
	return result
}

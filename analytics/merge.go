package analytics

import "sort"

// DistributionMap counts occurrences per normalized label.
type DistributionMap map[string]int

// DailySeries counts registrations per date key (date strings as they appear
// in the sheet, e.g. "2026-01-08").
type DailySeries map[string]int

// SortedSeries is a DailySeries flattened into two parallel slices ordered by
// ascending date, the shape the time-series chart consumes.
type SortedSeries struct {
	Dates  []string
	Counts []int
}

// MergeDistributions combines per-row distribution maps (already parsed via
// ParseObjectOrNull) into one map, summing counts per normalized label. Nil
// inputs are skipped and non-numeric values contribute zero, so the merge is
// commutative and never aborts.
func MergeDistributions(maps []map[string]any) DistributionMap {
	result := DistributionMap{}
	for _, m := range maps {
		if m == nil {
			continue
		}
		for key, value := range m {
			n, _ := asInt(value)
			result[NormalizeLabel(key)] += n
		}
	}
	return result
}

// MergeDailySeries parses each raw "Daily Registrations" cell and sums counts
// per date key across all rows. Malformed cells contribute nothing. Per-day
// counts are whole numbers; a fractional count truncates toward zero.
func MergeDailySeries(values []any) DailySeries {
	combined := DailySeries{}
	for _, value := range values {
		m := ParseObjectOrNull(value)
		if m == nil {
			continue
		}
		for date, count := range m {
			n, _ := asInt(count)
			combined[date] += n
		}
	}
	return combined
}

// ToSortedSeries flattens a DailySeries into date-ascending parallel slices.
// Empty input yields two empty slices, not nil.
func ToSortedSeries(series DailySeries) SortedSeries {
	dates := make([]string, 0, len(series))
	for date := range series {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	counts := make([]int, len(dates))
	for i, date := range dates {
		counts[i] = series[date]
	}
	return SortedSeries{Dates: dates, Counts: counts}
}

package core

// SumByDate groups records by their exact date text and sums the amounts.
// The returned order is unspecified; see OrderByDate.
func SumByDate(records []ExpenseRecord) []Bucket {
	return sumBy(records, func(r ExpenseRecord) string { return r.Date })
}

// SumByCategory groups records by category, merging empty categories
// under UncategorizedLabel. The returned order is unspecified; see
// OrderByTotal.
func SumByCategory(records []ExpenseRecord) []Bucket {
	return sumBy(records, func(r ExpenseRecord) string { return CategoryLabel(r.Category) })
}

// Aggregate dispatches to the grouping that matches mode.
func Aggregate(records []ExpenseRecord, mode Mode) ([]Bucket, error) {
	switch mode {
	case ModeDaily:
		return SumByDate(records), nil
	case ModeCategory:
		return SumByCategory(records), nil
	default:
		return nil, ErrInvalidMode
	}
}

func sumBy(records []ExpenseRecord, key func(ExpenseRecord) string) []Bucket {
	sums := map[string]float64{}
	for _, r := range records {
		sums[key(r)] += r.Amount
	}
	out := make([]Bucket, 0, len(sums))
	for label, total := range sums {
		out = append(out, Bucket{Label: label, Total: total})
	}
	return out
}

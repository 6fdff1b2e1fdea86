package core

import "sort"

// OrderByDate parses every label once and returns the buckets sorted
// ascending by calendar date, each carrying its parsed Date. A single
// malformed label fails the whole ordering with a *DateFormatError.
func OrderByDate(buckets []Bucket) ([]Bucket, error) {
	out := make([]Bucket, len(buckets))
	for i, b := range buckets {
		d, err := ParseDate(b.Label)
		if err != nil {
			return nil, err
		}
		b.Date = d
		out[i] = b
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// OrderByTotal returns the buckets sorted by total, highest first.
// Equal totals keep their input order.
func OrderByTotal(buckets []Bucket) []Bucket {
	out := append([]Bucket(nil), buckets...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// Order applies the presentation order for mode.
func Order(buckets []Bucket, mode Mode) ([]Bucket, error) {
	switch mode {
	case ModeDaily:
		return OrderByDate(buckets)
	case ModeCategory:
		return OrderByTotal(buckets), nil
	default:
		return nil, ErrInvalidMode
	}
}

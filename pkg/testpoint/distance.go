package testpoint

import "math"

// ProbeDistances returns the distance in mm from the record called name to
// every record in report, keyed by the names from Report.Names. Repeated
// record names are addressed with their "#n" suffix, and the named record
// always maps to 0.
func ProbeDistances(name string, report Report) (map[string]float64, error) {
	names := report.Names()
	ref := -1
	for i, n := range names {
		if n == name {
			ref = i
			break
		}
	}
	if ref < 0 {
		return nil, &RecordNotFoundError{Name: name}
	}

	distances := make(map[string]float64, len(report))
	for i, r := range report {
		distances[names[i]] = Distance(report[ref], r)
	}
	return distances, nil
}

// Distance returns the Euclidean distance between two records in mm.
func Distance(a, b Record) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Pair is two records closer together than a clearance limit.
type Pair struct {
	A        string
	B        string
	Distance float64
}

// Clearances lists every unordered pair of records closer than limit mm, in
// report order. Pairs use the names from Report.Names. Checking a report of n
// records is O(n²).
func Clearances(report Report, limit float64) []Pair {
	names := report.Names()
	var pairs []Pair
	for i := 0; i < len(report); i++ {
		for j := i + 1; j < len(report); j++ {
			d := Distance(report[i], report[j])
			if d < limit {
				pairs = append(pairs, Pair{
					A:        names[i],
					B:        names[j],
					Distance: d,
				})
			}
		}
	}
	return pairs
}

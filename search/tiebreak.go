package search

// relativeLengthTiebreak returns a comparer:
// compare(x, y) = |len(x) - len(query)| - |len(y) - len(query)|,
// ordering names by closeness of length to the query.
func relativeLengthTiebreak(query string) func(x, y string) int {
	qlen := len([]rune(query))
	distanceFromQuery := func(s string) int {
		d := len([]rune(s)) - qlen
		if d < 0 {
			d = -d
		}
		return d
	}
	return func(x, y string) int {
		return distanceFromQuery(x) - distanceFromQuery(y)
	}
}

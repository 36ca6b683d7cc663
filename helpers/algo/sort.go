package algo

import "cmp"

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// OrderingOf folds a comparator result onto Less, Equal or Greater.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(?)"
}

// Sort sorts s in place in ascending order and returns it.
// Floating point NaNs sort before every other value.
func Sort[T cmp.Ordered](s []T) []T {
	return SortBy(s, cmp.Compare[T])
}

// IsSorted reports whether s is in ascending order.
func IsSorted[T cmp.Ordered](s []T) bool {
	return IsSortedBy(s, cmp.Compare[T])
}

// IsSortedBy reports whether no adjacent pair of s compares Greater under compare.
func IsSortedBy[T any](s []T, compare func(a, b T) int) bool {
	for i := 1; i < len(s); i++ {
		if OrderingOf(compare(s[i-1], s[i])) == Greater {
			return false
		}
	}
	return true
}

// Reverse returns a comparator ordering values opposite to compare.
func Reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}

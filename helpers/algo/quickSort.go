package algo

// QuickSort sorts s in place using the order defined by cmp.
// cmp returns a negative number when a < b, zero when a == b and a positive
// number when a > b. It must be a strict weak ordering; otherwise s ends up
// as a permutation of its input in an unspecified order.
func QuickSort[T any](s []T, cmp func(a, b T) int) {
	var st Stats
	quickSort(s, cmp, PivotMiddle, partitionTwoPointer[T], &st, 0)
}

// SortBy is QuickSort returning s for chaining.
func SortBy[T any](s []T, cmp func(a, b T) int) []T {
	QuickSort(s, cmp)
	return s
}

type partitionFunc[T any] func(s []T, cmp func(a, b T) int) (p, moves int)

func partitionFor[T any](scheme PartitionScheme) partitionFunc[T] {
	if scheme == Boundary {
		return partitionBoundary[T]
	}
	return partitionTwoPointer[T]
}

// quickSort recurses into the shorter side of each partition and loops on the
// longer one, so the stack never grows past log2(len(s)) frames.
func quickSort[T any](s []T, cmp func(a, b T) int, pivot PivotPolicy, partition partitionFunc[T], st *Stats, depth int) {
	if len(s) > 1 && depth > st.MaxDepth {
		st.MaxDepth = depth
	}
	for len(s) > 1 {
		if pivot == PivotMiddle {
			m := len(s) >> 1
			s[0], s[m] = s[m], s[0]
			st.Moves++
		}
		p, moves := partition(s, cmp)
		st.Moves += moves

		left, right := s[:p], s[p+1:]
		if len(left) < len(right) {
			quickSort(left, cmp, pivot, partition, st, depth+1)
			s = right
		} else {
			quickSort(right, cmp, pivot, partition, st, depth+1)
			s = left
		}
	}
}

// partitionTwoPointer 从左右逐步向中间移动，空位初始在索引0，分界值temp = s[0]。
// 索引j从右往左移动，遇到小于等于temp的值时放入左边的空位i，空位移到j。
// 索引i从左往右移动，遇到大于等于temp的值时放入右边的空位j，空位移到i。
// 等于temp的值两边都会停下，大量重复值时分界点仍落在中间。
// 每次放置都会让i或j前进一步，比较函数不一致时也能结束。
// 结果：s[:p]都小于等于temp，s[p+1:]都大于等于temp，s[p] == temp
func partitionTwoPointer[T any](s []T, cmp func(a, b T) int) (p, moves int) {
	i, j := 0, len(s)-1
	temp := s[0]

	for i < j {
		for i < j && cmp(s[j], temp) > 0 {
			j--
		}
		if i < j {
			s[i] = s[j]
			i++
			moves++
		}

		for i < j && cmp(s[i], temp) < 0 {
			i++
		}
		if i < j {
			s[j] = s[i]
			j--
			moves++
		}
	}
	s[i] = temp
	return i, moves
}

// partitionBoundary keeps s[1:p+1] strictly less than the pivot held in s[0].
// Every element found less than the pivot is swapped into the first open slot
// after that run; the pivot finally trades places with the last closed slot.
func partitionBoundary[T any](s []T, cmp func(a, b T) int) (p, moves int) {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[0]) < 0 {
			p++
			if i != p {
				s[i], s[p] = s[p], s[i]
				moves++
			}
		}
	}
	if p != 0 {
		s[0], s[p] = s[p], s[0]
		moves++
	}
	return p, moves
}

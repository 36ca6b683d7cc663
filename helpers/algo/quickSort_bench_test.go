package algo

import (
	"cmp"
	"math/rand"
	"slices"
	"strconv"
	"testing"
)

func benchData(n int) []int {
	rng := rand.New(rand.NewSource(42))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(1_000_000)
	}
	return data
}

// go test -bench=BenchmarkSort -run=^$
func BenchmarkSort(b *testing.B) {
	for _, n := range []int{100, 10_000, 1_000_000} {
		src := benchData(n)
		buf := make([]int, n)

		b.Run("QuickSort/"+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				QuickSort(buf, cmp.Compare[int])
			}
		})
		b.Run("Boundary/"+strconv.Itoa(n), func(b *testing.B) {
			st, err := NewSorter(cmp.Compare[int], Config{Partition: Boundary})
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				st.Sort(buf)
			}
		})
		b.Run("slices.SortFunc/"+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				slices.SortFunc(buf, cmp.Compare[int])
			}
		})
	}
}

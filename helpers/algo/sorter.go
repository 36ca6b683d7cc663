package algo

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/newacorn/qsort/helpers/log"
)

var (
	ErrNilComparator = errors.New("algo: nil comparator")
	ErrInvalidConfig = errors.New("algo: invalid config")
)

// PivotPolicy selects the element each partition step splits around.
type PivotPolicy int

const (
	// PivotMiddle swaps the middle element into the first slot before partitioning.
	PivotMiddle PivotPolicy = iota
	// PivotFirst uses the first element as is. Sorted input degrades to O(n²).
	PivotFirst
)

func (p PivotPolicy) String() string {
	switch p {
	case PivotMiddle:
		return "middle"
	case PivotFirst:
		return "first"
	}
	return "PivotPolicy(" + strconv.Itoa(int(p)) + ")"
}

func ParsePivotPolicy(name string) (PivotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "middle", "mid":
		return PivotMiddle, nil
	case "first":
		return PivotFirst, nil
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown pivot policy %q", name)
}

// PartitionScheme selects the in-place partition routine.
type PartitionScheme int

const (
	// TwoPointer moves values into a hole from both ends until the cursors meet.
	TwoPointer PartitionScheme = iota
	// Boundary scans left to right tracking the end of the "less" run.
	Boundary
)

func (p PartitionScheme) String() string {
	switch p {
	case TwoPointer:
		return "two-pointer"
	case Boundary:
		return "boundary"
	}
	return "PartitionScheme(" + strconv.Itoa(int(p)) + ")"
}

func ParsePartitionScheme(name string) (PartitionScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "two-pointer", "twopointer", "hoare":
		return TwoPointer, nil
	case "boundary", "lomuto":
		return Boundary, nil
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown partition scheme %q", name)
}

type Config struct {
	Pivot     PivotPolicy
	Partition PartitionScheme
	// Logger receives one debug entry per Sort call. Nil means log.Named("qsort"),
	// which stays quiet until log.SetLevel lowers the level to debug.
	Logger *zap.Logger
}

var DefCfg = Config{
	Pivot:     PivotMiddle,
	Partition: TwoPointer,
}

func (c Config) Validate() error {
	if c.Pivot < PivotMiddle || c.Pivot > PivotFirst {
		return errors.Wrapf(ErrInvalidConfig, "pivot policy %d", int(c.Pivot))
	}
	if c.Partition < TwoPointer || c.Partition > Boundary {
		return errors.Wrapf(ErrInvalidConfig, "partition scheme %d", int(c.Partition))
	}
	return nil
}

func conf(cfgs ...Config) Config {
	if len(cfgs) == 0 {
		return DefCfg
	}
	return cfgs[0]
}

// Stats describes the work done by the last Sorter.Sort call.
// Moves counts element relocations: one per hole fill for TwoPointer, one per
// swap for Boundary, plus one per middle-pivot swap into the first slot.
// MaxDepth is the deepest recursion reached, the top-level call being 0.
type Stats struct {
	Len         int
	Comparisons int
	Moves       int
	MaxDepth    int
}

func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("len", s.Len)
	enc.AddInt("comparisons", s.Comparisons)
	enc.AddInt("moves", s.Moves)
	enc.AddInt("maxDepth", s.MaxDepth)
	return nil
}

// Sorter is a quicksort with a fixed comparator and configuration that
// records Stats for every call. It is not safe for concurrent use.
type Sorter[T any] struct {
	cmp       func(a, b T) int
	cfg       Config
	partition partitionFunc[T]
	logger    *zap.Logger
	stats     Stats
}

func NewSorter[T any](cmp func(a, b T) int, cfgs ...Config) (*Sorter[T], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	cfg := conf(cfgs...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Named("qsort")
	}
	return &Sorter[T]{
		cmp:       cmp,
		cfg:       cfg,
		partition: partitionFor[T](cfg.Partition),
		logger:    logger,
	}, nil
}

// Sort sorts s in place and returns it.
func (st *Sorter[T]) Sort(s []T) []T {
	st.stats = Stats{Len: len(s)}
	counted := func(a, b T) int {
		st.stats.Comparisons++
		return st.cmp(a, b)
	}
	quickSort(s, counted, st.cfg.Pivot, st.partition, &st.stats, 0)

	if ce := st.logger.Check(zapcore.DebugLevel, "quicksort done"); ce != nil {
		ce.Write(
			zap.Stringer("pivot", st.cfg.Pivot),
			zap.Stringer("partition", st.cfg.Partition),
			zap.Object("stats", st.stats))
	}
	return s
}

func (st *Sorter[T]) Stats() Stats {
	return st.stats
}

func (st *Sorter[T]) Config() Config {
	return st.cfg
}

package core

import "iter"

// WorkoutLog maps each date seen in the input to the amounts recorded
// under it, in input order. Order across dates is not defined.
type WorkoutLog map[CalendarDate][]int

// Aggregator folds log lines into a WorkoutLog. It carries the only state
// of the traversal: the log built so far and the most recent date marker,
// which subsequent amount entries attach to.
type Aggregator struct {
	log      WorkoutLog
	current  CalendarDate
	haveDate bool
}

func NewAggregator() *Aggregator {
	return &Aggregator{log: WorkoutLog{}}
}

// Feed consumes one line. Amount entries seen before any date marker have
// nothing to attach to and are dropped. A marker repeating an earlier date
// re-opens that date, appending to its existing amounts rather than
// replacing them.
func (a *Aggregator) Feed(line string) {
	switch l := Classify(line); l.Kind {
	case DateMarker:
		a.current, a.haveDate = l.Date, true
	case AmountEntry:
		if a.haveDate {
			a.log[a.current] = append(a.log[a.current], l.Amount)
		}
	}
}

// Log returns the accumulated WorkoutLog.
func (a *Aggregator) Log() WorkoutLog {
	return a.log
}

// Aggregate folds a complete line sequence, ordered as it appeared across
// the input files, into a WorkoutLog.
func Aggregate(lines []string) WorkoutLog {
	a := NewAggregator()
	for _, line := range lines {
		a.Feed(line)
	}
	return a.Log()
}

// Filter returns a restartable view of the log's entries whose date falls
// within r's inclusive bounds. With both bounds unset every entry passes.
// Entry order follows map iteration and is unspecified; the amounts of
// each entry keep their insertion order.
func (l WorkoutLog) Filter(r DateRange) iter.Seq2[CalendarDate, []int] {
	return func(yield func(CalendarDate, []int) bool) {
		for d, amounts := range l {
			if !r.Contains(d) {
				continue
			}
			if !yield(d, amounts) {
				return
			}
		}
	}
}

// Sum totals all amounts across the entries. An empty sequence sums to 0.
func Sum(entries iter.Seq2[CalendarDate, []int]) int {
	total := 0
	for _, amounts := range entries {
		for _, n := range amounts {
			total += n
		}
	}
	return total
}

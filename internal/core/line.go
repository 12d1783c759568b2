package core

import (
	"regexp"
	"strconv"
)

// LineKind identifies which of the recognized shapes a log line has.
type LineKind int

const (
	// Ignorable covers blank lines, prose and malformed markers or
	// entries. They carry no data and are never an error.
	Ignorable LineKind = iota
	// DateMarker opens a new day's records: "# dd.MM.yyyy".
	DateMarker
	// AmountEntry records one workout amount: "* <digits> <description>".
	AmountEntry
)

// Line is one classified log line. Date is set for DateMarker lines,
// Amount for AmountEntry lines.
type Line struct {
	Kind   LineKind
	Date   CalendarDate
	Amount int
}

var (
	markerPattern = regexp.MustCompile(`^#\s*(\d{2})\.(\d{2})\.(\d{4})\s*$`)
	entryPattern  = regexp.MustCompile(`^\*\s*(\d+)[\s\w]*$`)
)

// Classify assigns a single log line to one of the three recognized
// shapes. Markers carry their date as day.month.year in the text; entries
// carry the leading digit run as the amount, and the rest of the line is
// free-form description (only the first number counts, later digit runs
// are part of the description). Anything that fails both grammars is
// Ignorable: malformed lines are data noise, not errors.
func Classify(line string) Line {
	if m := markerPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: DateMarker, Date: dateFromGroups(m[1], m[2], m[3])}
	}
	if m := entryPattern.FindStringSubmatch(line); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return Line{Kind: Ignorable}
		}
		return Line{Kind: AmountEntry, Amount: amount}
	}
	return Line{Kind: Ignorable}
}

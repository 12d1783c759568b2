package core

import "testing"

func TestClassifyDateMarker(t *testing.T) {
	cases := []struct {
		in   string
		want CalendarDate
	}{
		{"# 01.01.2020", CalendarDate{2020, 1, 1}},
		{"#01.01.2020", CalendarDate{2020, 1, 1}},
		{"#   31.12.2024", CalendarDate{2024, 12, 31}},
		{"# 15.06.2023  ", CalendarDate{2023, 6, 15}},
		// Digit counts are all that is checked.
		{"# 99.99.9999", CalendarDate{9999, 99, 99}},
	}
	for _, tc := range cases {
		got := Classify(tc.in)
		if got.Kind != DateMarker {
			t.Fatalf("%q expected DateMarker, got kind %v", tc.in, got.Kind)
		}
		if got.Date != tc.want {
			t.Fatalf("%q expected date %v, got %v", tc.in, tc.want, got.Date)
		}
	}
}

func TestClassifyAmountEntry(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"* 10 pushups", 10},
		{"*10", 10},
		{"* 7", 7},
		{"*  42  situps", 42},
		{"* 0 rest day", 0},
		// First number wins, later digit runs are description.
		{"* 10 sets of 5", 10},
		{"* 100 ignored", 100},
	}
	for _, tc := range cases {
		got := Classify(tc.in)
		if got.Kind != AmountEntry {
			t.Fatalf("%q expected AmountEntry, got kind %v", tc.in, got.Kind)
		}
		if got.Amount != tc.want {
			t.Fatalf("%q expected amount %d, got %d", tc.in, tc.want, got.Amount)
		}
	}
}

func TestClassifyIgnorable(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"just some prose",
		"# 1.1.2020",         // day and month need two digits
		"# 01.01.20",         // year needs four digits
		"# 01.01.2020 extra", // trailing text after a marker
		"## 01.01.2020",
		" # 01.01.2020", // anchored at column one
		"*",
		"* ten pushups",
		"* 10 push-ups!", // '-' and '!' are outside the entry grammar
		" * 10",
		"01.01.2020",
	}
	for _, in := range cases {
		if got := Classify(in); got.Kind != Ignorable {
			t.Fatalf("%q expected Ignorable, got kind %v", in, got.Kind)
		}
	}
}

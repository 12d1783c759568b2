package services

import (
	"errors"
	"fmt"
	"log/slog"

	"sweatlog/internal/core"
	"sweatlog/internal/logfile"
)

var ErrNoInput = errors.New("no workout log files given")

// SummaryService runs the whole summary pipeline: parse the optional date
// bounds, read the log files, fold their lines into a WorkoutLog, filter
// by date and sum. It holds no state between runs.
type SummaryService struct {
	logger *slog.Logger
}

func NewSummaryService(logger *slog.Logger) *SummaryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryService{logger: logger}
}

// Summarize returns the total of all amounts recorded in paths whose date
// lies between the optional start and end bounds (dd.MM.yyyy, inclusive on
// both ends). An empty bound string means unbounded on that side. The run
// is all-or-nothing: the first failure is returned and no partial total is
// produced.
func (s *SummaryService) Summarize(paths []string, start, end string) (int, error) {
	if len(paths) == 0 {
		return 0, ErrNoInput
	}
	bounds, err := parseBounds(start, end)
	if err != nil {
		return 0, err
	}
	lines, err := logfile.ReadAll(paths...)
	if err != nil {
		return 0, fmt.Errorf("read workout logs: %w", err)
	}
	log := core.Aggregate(lines)
	s.logger.Debug("aggregated workout log",
		"files", len(paths), "lines", len(lines), "dates", len(log))
	total := core.Sum(log.Filter(bounds))
	s.logger.Debug("summed workout log", "total", total)
	return total, nil
}

func parseBounds(start, end string) (core.DateRange, error) {
	var r core.DateRange
	if start != "" {
		d, err := core.ParseDate(start)
		if err != nil {
			return core.DateRange{}, fmt.Errorf("start date: %w", err)
		}
		r.Start = &d
	}
	if end != "" {
		d, err := core.ParseDate(end)
		if err != nil {
			return core.DateRange{}, fmt.Errorf("end date: %w", err)
		}
		r.End = &d
	}
	return r, nil
}

// Package parser turns free-form timecard text into an ordered list of
// date markers and time ranges.
package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/Tiliavir/timecard/internal/model"
)

// ErrUnrecognizedLine is the cause for a non-blank line that is neither a
// date nor a time range.
var ErrUnrecognizedLine = errors.New("line does not resemble a date or time range")

// Interior whitespace includes Unicode spaces such as U+00A0, which shows up
// in text pasted from web pages and spreadsheets.
var (
	dateRe      = regexp.MustCompile(`^(\d{1,2})[\s\p{Z}]*/[\s\p{Z}]*(\d{1,2})$`)
	timeRangeRe = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})[\s\p{Z}]*-[\s\p{Z}]*(\d{1,2}):(\d{1,2})$`)
)

// ParseError reports the first line that could not be parsed.
type ParseError struct {
	Line int    // 1-based
	Text string // trimmed line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Line %d: \"%s\": %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser classifies lines. The zero value is ready to use and logs nothing.
type Parser struct {
	Logger *slog.Logger
}

// Parse parses input with a silent Parser.
func Parse(input string) ([]model.Entry, error) {
	return Parser{}.Parse(input)
}

// Parse returns one entry per non-blank line in input order. Parsing stops at
// the first bad line and no entries are returned with the error.
func (p Parser) Parse(input string) ([]model.Entry, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var entries []model.Entry
	for i, raw := range strings.Split(input, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)

		entry, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		if entry == nil {
			continue
		}
		logger.Debug("parsed line", "line", lineNo, "kind", kindOf(entry), "text", line)
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseLine returns nil, nil for a blank line. The date pattern is tried
// first, so a line that looks like a date always gets a date error.
func parseLine(line string) (model.Entry, error) {
	if m := dateRe.FindStringSubmatch(line); m != nil {
		date, err := model.NewDate(atoi(m[1]), atoi(m[2]))
		if err != nil {
			return nil, err
		}
		return model.DateEntry{Date: date}, nil
	}

	if m := timeRangeRe.FindStringSubmatch(line); m != nil {
		r, err := model.NewTimeRange(atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]))
		if err != nil {
			return nil, err
		}
		return model.TimeRangeEntry{Range: r}, nil
	}

	if line == "" {
		return nil, nil
	}
	return nil, ErrUnrecognizedLine
}

// atoi converts a one or two digit capture; the patterns guarantee it parses.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func kindOf(e model.Entry) string {
	switch e.(type) {
	case model.DateEntry:
		return "date"
	case model.TimeRangeEntry:
		return "time-range"
	default:
		return "unknown"
	}
}

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/timecard/internal/timecalc"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatCSV, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, csv or yaml)", s)
	}
}

// Summary is the machine-readable form of a report.
type Summary struct {
	Days         []DaySummary `json:"days" yaml:"days"`
	TotalMinutes int          `json:"total_minutes" yaml:"total_minutes"`
	TotalHours   string       `json:"total_hours" yaml:"total_hours"`
}

// DaySummary is one day of a Summary. Date is empty for time ranges recorded
// before the first date marker.
type DaySummary struct {
	Date     string `json:"date" yaml:"date"`
	Minutes  int    `json:"minutes" yaml:"minutes"`
	Hours    string `json:"hours" yaml:"hours"`
	Duration string `json:"duration" yaml:"duration"`
}

// Summarize converts a report into its machine-readable form.
func Summarize(rep timecalc.Report) Summary {
	s := Summary{
		Days:         make([]DaySummary, 0, len(rep.Days)),
		TotalMinutes: rep.TotalMinutes,
		TotalHours:   timecalc.Hours(rep.TotalMinutes),
	}
	for _, d := range rep.Days {
		s.Days = append(s.Days, DaySummary{
			Date:     d.Label(),
			Minutes:  d.Minutes,
			Hours:    timecalc.Hours(d.Minutes),
			Duration: timecalc.FormatDuration(d.Minutes),
		})
	}
	return s
}

// Encode writes rep to w in a machine-readable format.
func Encode(w io.Writer, format Format, rep timecalc.Report) error {
	s := Summarize(rep)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return nil
	case FormatCSV:
		return encodeCSV(w, s)
	default:
		return fmt.Errorf("format %q is not a machine-readable format", format)
	}
}

// encodeCSV writes one row per day and a trailing "total" row.
func encodeCSV(w io.Writer, s Summary) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"date", "minutes", "hours", "duration"}}
	for _, d := range s.Days {
		rows = append(rows, []string{d.Date, strconv.Itoa(d.Minutes), d.Hours, d.Duration})
	}
	rows = append(rows, []string{
		"total",
		strconv.Itoa(s.TotalMinutes),
		s.TotalHours,
		timecalc.FormatDuration(s.TotalMinutes),
	})
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("encoding CSV: %w", err)
	}
	return nil
}

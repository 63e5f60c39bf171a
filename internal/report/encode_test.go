package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/timecard/internal/report"
	"github.com/Tiliavir/timecard/internal/timecalc"
)

const scenario = "1/3\n\n1:23-1:27\n12/4\n3:45-4:45\n12/15\n12:45-1:15"

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "csv", "yaml"} {
		f, err := report.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, report.Format(name), f)
	}
	_, err := report.ParseFormat("xml")
	assert.EqualError(t, err, `unknown output format "xml" (want text, json, csv or yaml)`)
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(reportFor(t, scenario))

	assert.Equal(t, report.Summary{
		Days: []report.DaySummary{
			{Date: "1/3", Minutes: 4, Hours: "0.07", Duration: "4m"},
			{Date: "12/4", Minutes: 60, Hours: "1.00", Duration: "1h 0m"},
			{Date: "12/15", Minutes: 30, Hours: "0.50", Duration: "30m"},
		},
		TotalMinutes: 94,
		TotalHours:   "1.57",
	}, s)
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatJSON, reportFor(t, scenario)))

	var got report.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, report.Summarize(reportFor(t, scenario)), got)
	assert.Contains(t, buf.String(), `"total_minutes": 94`)
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatYAML, reportFor(t, scenario)))

	var got report.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, report.Summarize(reportFor(t, scenario)), got)
	assert.Contains(t, buf.String(), "total_hours: \"1.57\"")
}

func TestEncodeCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatCSV, reportFor(t, scenario)))

	want := "date,minutes,hours,duration\n" +
		"1/3,4,0.07,4m\n" +
		"12/4,60,1.00,1h 0m\n" +
		"12/15,30,0.50,30m\n" +
		"total,94,1.57,1h 34m\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatJSON, timecalc.Report{}))
	assert.Contains(t, buf.String(), `"days": []`)
}

func TestEncodeRejectsText(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, report.Encode(&buf, report.FormatText, timecalc.Report{}))
}

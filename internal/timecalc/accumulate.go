package timecalc

import "github.com/Tiliavir/timecard/internal/model"

// Day is one accumulation bucket. Date is nil for time ranges that appear
// before the first date marker.
type Day struct {
	Date    *model.Date
	Minutes int
}

// Report is the folded timecard: day buckets in input order and the grand
// total of all of them.
type Report struct {
	Days         []Day
	TotalMinutes int
}

// Accumulate walks entries once. Every date marker opens a new bucket; time
// ranges add to the open bucket, opening an undated one if no date has been
// seen yet. Buckets with zero minutes are kept so their labels still print.
func Accumulate(entries []model.Entry) Report {
	var rep Report
	open := -1

	for _, e := range entries {
		switch e := e.(type) {
		case model.DateEntry:
			date := e.Date
			rep.Days = append(rep.Days, Day{Date: &date})
			open = len(rep.Days) - 1
		case model.TimeRangeEntry:
			if open < 0 {
				rep.Days = append(rep.Days, Day{})
				open = 0
			}
			rep.Days[open].Minutes += e.Range.Minutes()
		}
	}

	for _, d := range rep.Days {
		rep.TotalMinutes += d.Minutes
	}
	return rep
}

// Label returns the "M/D" date of the day, or "" when undated.
func (d Day) Label() string {
	if d.Date == nil {
		return ""
	}
	return d.Date.String()
}

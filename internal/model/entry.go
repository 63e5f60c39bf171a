package model

import (
	"errors"
	"fmt"
)

// MinutesPerCycle is the length of one turn of a 12-hour clock.
const MinutesPerCycle = 12 * 60

var (
	// ErrInvalidDate is returned when a month or day is out of range.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTime is returned when an hour or minute is out of range.
	ErrInvalidTime = errors.New("invalid time")
)

// Date is a day marker on a timecard. There is no year and day 1-31 is
// accepted for every month.
type Date struct {
	Month int
	Day   int
}

// NewDate validates month (1-12) and day (1-31).
func NewDate(month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("%w \"%d/%d\"", ErrInvalidDate, month, day)
	}
	return Date{Month: month, Day: day}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d", d.Month, d.Day)
}

// Time is a wall-clock reading on a 12-hour clock with no AM/PM.
type Time struct {
	Hours   int
	Minutes int
}

// NewTime validates hours (1-12) and minutes (0-59).
func NewTime(hours, minutes int) (Time, error) {
	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return Time{}, fmt.Errorf("%w \"%d:%d\"", ErrInvalidTime, hours, minutes)
	}
	return Time{Hours: hours, Minutes: minutes}, nil
}

// InMinutes returns the offset into the 12-hour cycle. Twelve o'clock is the
// bottom of the cycle:
//
//	12:00 ->   0
//	12:59 ->  59
//	 1:00 ->  60
//	11:59 -> 719
func (t Time) InMinutes() int {
	if t.Hours == 12 {
		return t.Minutes
	}
	return t.Hours*60 + t.Minutes
}

func (t Time) String() string {
	return fmt.Sprintf("%d:%02d", t.Hours, t.Minutes)
}

// TimeRange is one worked interval, e.g. 1:15-2:45.
type TimeRange struct {
	Start Time
	End   Time
}

// NewTimeRange builds a range from raw start and end readings. The start is
// validated first, so its error wins when both are bad.
func NewTimeRange(startHr, startMin, endHr, endMin int) (TimeRange, error) {
	start, err := NewTime(startHr, startMin)
	if err != nil {
		return TimeRange{}, err
	}
	end, err := NewTime(endHr, endMin)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// Minutes returns the elapsed time. An end earlier than the start means the
// range rolled over the 12-hour boundary; equal readings count as zero.
// Ranges longer than one cycle cannot be expressed.
func (r TimeRange) Minutes() int {
	start := r.Start.InMinutes()
	end := r.End.InMinutes()
	switch {
	case start < end:
		return end - start
	case start > end:
		return (MinutesPerCycle - start) + end
	default:
		return 0
	}
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Entry is one parsed timecard line: either a DateEntry or a TimeRangeEntry.
type Entry interface {
	isEntry()
}

// DateEntry starts a new day bucket.
type DateEntry struct {
	Date Date
}

// TimeRangeEntry adds time to the current day bucket.
type TimeRangeEntry struct {
	Range TimeRange
}

func (DateEntry) isEntry()      {}
func (TimeRangeEntry) isEntry() {}

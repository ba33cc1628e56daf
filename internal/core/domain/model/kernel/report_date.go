package kernel

import (
	"fmt"
	"time"

	"deliverypay/internal/pkg/errs"
)

// ErrReportDateIsNotConstructed indicates that a ReportDate was not created
// through one of the constructor functions.
var ErrReportDateIsNotConstructed = errs.NewValueIsRequiredError(
	"ReportDate must be created via NewReportDate or ReportDateFromString",
)

// reportDateLayout is the canonical wire/persistence format for report dates.
const reportDateLayout = "2006-01-02"

// ReportDate is a value object representing a single accounting day.
// Every financial aggregate in the system (daily balances, debts,
// remittances, courier cash events) is bucketed by ReportDate, so all
// components share the same day-boundary semantics: a ReportDate is the
// UTC midnight of its calendar day.
//
// The zero value is invalid and must be constructed via NewReportDate,
// ReportDateFromString or ReportDateFromTime.
//
// Example usage:
//
//	day := kernel.ReportDateFromTime(time.Now())
//	next := day.AddDays(1)
//	fmt.Println(day.String()) // e.g. "2024-03-17"
type ReportDate struct {
	day time.Time
}

// NewReportDate creates a ReportDate for the given calendar day.
func NewReportDate(year int, month time.Month, day int) ReportDate {
	return ReportDate{day: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ReportDateFromTime buckets an arbitrary timestamp into its UTC calendar day.
// This is the single place where day-boundary semantics are defined.
func ReportDateFromTime(t time.Time) ReportDate {
	utc := t.UTC()
	return NewReportDate(utc.Year(), utc.Month(), utc.Day())
}

// ReportDateFromString parses a ReportDate from its "YYYY-MM-DD" representation.
// Returns an error for any other format.
func ReportDateFromString(s string) (ReportDate, error) {
	t, err := time.Parse(reportDateLayout, s)
	if err != nil {
		return ReportDate{}, errs.NewValueIsInvalidErrorWithCause("report date",
			fmt.Errorf("%q is not a valid YYYY-MM-DD date: %w", s, err))
	}
	return ReportDateFromTime(t), nil
}

// Time returns the UTC midnight instant of the day.
func (d ReportDate) Time() time.Time {
	return d.day
}

// String returns the canonical "YYYY-MM-DD" representation.
func (d ReportDate) String() string {
	return d.day.Format(reportDateLayout)
}

// AddDays returns the ReportDate n days after this one. Negative n moves backwards.
func (d ReportDate) AddDays(n int) ReportDate {
	return ReportDateFromTime(d.day.AddDate(0, 0, n))
}

// IsEqual compares two report dates for same-day equality.
func (d ReportDate) IsEqual(other ReportDate) bool {
	return d.day.Equal(other.day)
}

// Before reports whether this day precedes other.
func (d ReportDate) Before(other ReportDate) bool {
	return d.day.Before(other.day)
}

// Validate checks that the ReportDate was properly constructed.
// The zero value fails with ErrReportDateIsNotConstructed.
func (d ReportDate) Validate() error {
	if d.day.IsZero() {
		return ErrReportDateIsNotConstructed
	}
	return nil
}

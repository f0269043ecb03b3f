// Package dates formats report periods in the fixed reporting timezone.
package dates

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	// PeriodLayout is the layout of a month period, "YYYY-MM".
	PeriodLayout = "2006-01"

	// ISODateLayout is the layout of a calendar date, "YYYY-MM-DD".
	ISODateLayout = "2006-01-02"
)

// ErrInvalidPeriod is returned when a string is not a "YYYY-MM" period.
var ErrInvalidPeriod = errors.New("invalid period")

// Service renders dates in one reporting timezone regardless of the local
// zone of the machine running the console.
type Service struct {
	loc *time.Location
	now func() time.Time
}

// NewService returns a Service for the IANA zone name tz.
func NewService(tz string) (*Service, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load reporting timezone %q: %w", tz, err)
	}
	return &Service{loc: loc, now: time.Now}, nil
}

// Location returns the reporting timezone.
func (s *Service) Location() *time.Location {
	return s.loc
}

// CurrentMonthString returns the current month as "YYYY-MM".
func (s *Service) CurrentMonthString() string {
	return s.now().In(s.loc).Format(PeriodLayout)
}

// ToISODateString returns the calendar date of t as "YYYY-MM-DD".
func (s *Service) ToISODateString(t time.Time) string {
	return t.In(s.loc).Format(ISODateLayout)
}

// ParsePeriod parses a "YYYY-MM" period into the first instant of that month.
func (s *Service) ParsePeriod(period string) (time.Time, error) {
	t, err := time.ParseInLocation(PeriodLayout, period, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return t, nil
}

// ShiftPeriod moves period by months, which may be negative.
func (s *Service) ShiftPeriod(period string, months int) (string, error) {
	t, err := s.ParsePeriod(period)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, months, 0).Format(PeriodLayout), nil
}

// PeriodYear returns the year of a "YYYY-MM" period.
func (s *Service) PeriodYear(period string) (int, error) {
	t, err := s.ParsePeriod(period)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}

package models

import "time"

// Report names used as keys of [ReportSnapshot.Reports].
const (
	ReportConsumption  = "consumption"
	ReportReadingStats = "reading_stats"
	ReportAlarms       = "alarms"
	ReportYearlyStats  = "yearly_stats"
)

// ReportSnapshot bundles report results that were all fetched for the same
// Period. A snapshot is built once per successful fetch cycle and never
// patched afterwards.
type ReportSnapshot struct {
	Period    string
	Reports   map[string]any
	FetchedAt time.Time
}

// SnapshotReport returns the report stored under name in s, typed as T.
// ok is false if the report is missing or has a different type.
func SnapshotReport[T any](s *ReportSnapshot, name string) (report T, ok bool) {
	if s == nil {
		return report, false
	}
	v, found := s.Reports[name]
	if !found {
		return report, false
	}
	report, ok = v.(T)
	return report, ok
}

// ConsumptionRow is the energy consumed by a single meter over the period.
type ConsumptionRow struct {
	MeterID     string  `json:"meterId"`
	Zone        string  `json:"zone"`
	Customer    string  `json:"customer"`
	ConsumedKWh float64 `json:"consumedKwh"`
	Readings    int     `json:"readings"`
}

// ReadingStats summarises meter reading collection for the period.
type ReadingStats struct {
	Period   string `json:"period"`
	Expected int    `json:"expected"`
	Received int    `json:"received"`
	Pending  int    `json:"pending"`
	Failed   int    `json:"failed"`
}

// AlarmRow is a meter alarm raised during the period.
type AlarmRow struct {
	AlarmID  ID        `json:"alarmId"`
	MeterID  string    `json:"meterId"`
	Kind     string    `json:"kind"`
	Severity int       `json:"severity"`
	RaisedAt time.Time `json:"raisedAt"`
}

// YearlyStats aggregates consumption for the year containing the period.
type YearlyStats struct {
	Year         int     `json:"year"`
	TotalKWh     float64 `json:"totalKwh"`
	ActiveMeters int     `json:"activeMeters"`
	AverageKWh   float64 `json:"averageKwh"`
	PeakMonth    string  `json:"peakMonth"`
	PeakMonthKWh float64 `json:"peakMonthKwh"`
}

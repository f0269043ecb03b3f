package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/meter-console/internal/dates"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/models"
)

type meter struct {
	id       string
	zone     string
	customer string
	baseKWh  float64
}

var meters = []meter{
	{"MTR-0001", "North", "Panaderia San Jose", 420},
	{"MTR-0002", "North", "Colegio Santa Rosa", 1310},
	{"MTR-0003", "North", "Residencial Los Olivos", 265},
	{"MTR-0004", "South", "Mercado Central", 2240},
	{"MTR-0005", "South", "Clinica del Sur", 1875},
	{"MTR-0006", "South", "Taller Mecanico Ruiz", 610},
	{"MTR-0007", "East", "Hotel Miraflores", 1520},
	{"MTR-0008", "East", "Lavanderia Express", 780},
	{"MTR-0009", "East", "Condominio El Sol", 340},
	{"MTR-0010", "West", "Planta Envasadora", 3920},
	{"MTR-0011", "West", "Biblioteca Municipal", 455},
	{"MTR-0012", "West", "Restaurante La Costa", 990},
}

var alarmKinds = []string{"tamper", "reverse_flow", "voltage_sag", "communication_loss", "overload"}

// reportService generates report data from the period alone, so the same
// period always yields the same numbers.
type reportService struct {
	logger *logger.Logger
}

// NewReportService returns the development ReportService.
func NewReportService(logger *logger.Logger) ReportService {
	return &reportService{logger: logger}
}

func (s *reportService) Consumption(ctx context.Context, period string) ([]models.ConsumptionRow, error) {
	month, err := parsePeriod(period)
	if err != nil {
		logger.FromContext(ctx).Warn().Str("period", period).Msg("invalid period")
		return nil, err
	}
	return consumptionFor(month), nil
}

func (s *reportService) ReadingStats(ctx context.Context, period string) (models.ReadingStats, error) {
	month, err := parsePeriod(period)
	if err != nil {
		logger.FromContext(ctx).Warn().Str("period", period).Msg("invalid period")
		return models.ReadingStats{}, err
	}

	r := periodRand("reading_stats", month)
	expected := len(meters) * daysIn(month)
	failed := r.IntN(len(meters))
	pending := r.IntN(2 * len(meters))

	return models.ReadingStats{
		Period:   period,
		Expected: expected,
		Received: expected - failed - pending,
		Pending:  pending,
		Failed:   failed,
	}, nil
}

func (s *reportService) Alarms(ctx context.Context, period string) ([]models.AlarmRow, error) {
	month, err := parsePeriod(period)
	if err != nil {
		logger.FromContext(ctx).Warn().Str("period", period).Msg("invalid period")
		return nil, err
	}

	r := periodRand("alarms", month)
	n := r.IntN(6)
	hours := daysIn(month) * 24

	alarms := make([]models.AlarmRow, 0, n)
	for i := range n {
		alarms = append(alarms, models.AlarmRow{
			AlarmID:  models.ID(month.Year()*10000 + int(month.Month())*100 + i + 1),
			MeterID:  meters[r.IntN(len(meters))].id,
			Kind:     alarmKinds[r.IntN(len(alarmKinds))],
			Severity: 1 + r.IntN(3),
			RaisedAt: month.Add(time.Duration(r.IntN(hours)) * time.Hour),
		})
	}
	return alarms, nil
}

func (s *reportService) YearlyStats(ctx context.Context, year int) (models.YearlyStats, error) {
	if year < 1 || year > 9999 {
		logger.FromContext(ctx).Warn().Int("year", year).Msg("invalid year")
		return models.YearlyStats{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}

	stats := models.YearlyStats{Year: year, ActiveMeters: len(meters)}
	for m := time.January; m <= time.December; m++ {
		month := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)

		var total float64
		for _, row := range consumptionFor(month) {
			total += row.ConsumedKWh
		}
		stats.TotalKWh += total
		if total > stats.PeakMonthKWh {
			stats.PeakMonthKWh = round2(total)
			stats.PeakMonth = month.Format(dates.PeriodLayout)
		}
	}
	stats.TotalKWh = round2(stats.TotalKWh)
	stats.AverageKWh = round2(stats.TotalKWh / float64(stats.ActiveMeters))

	return stats, nil
}

func consumptionFor(month time.Time) []models.ConsumptionRow {
	r := periodRand("consumption", month)
	seasonal := 1 + 0.25*math.Cos(2*math.Pi*float64(month.Month()-1)/12)
	days := daysIn(month)

	rows := make([]models.ConsumptionRow, len(meters))
	for i, m := range meters {
		rows[i] = models.ConsumptionRow{
			MeterID:     m.id,
			Zone:        m.zone,
			Customer:    m.customer,
			ConsumedKWh: round2(m.baseKWh * seasonal * (0.85 + 0.3*r.Float64())),
			Readings:    days - r.IntN(3),
		}
	}
	return rows
}

func parsePeriod(period string) (time.Time, error) {
	month, err := time.Parse(dates.PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return month, nil
}

// periodRand returns a generator seeded by report name and month.
func periodRand(report string, month time.Time) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(report))
	return rand.New(rand.NewPCG(h.Sum64(), uint64(month.Year()*100+int(month.Month()))))
}

func daysIn(month time.Time) int {
	return month.AddDate(0, 1, -1).Day()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

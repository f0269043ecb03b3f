package tui

import (
	"strconv"

	"github.com/MKhiriev/meter-console/internal/dataset"
	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/models"
)

// dashboardTab is one report table of the dashboard. Tabs with sortable
// set accept the sort keys.
type dashboardTab struct {
	title      string
	permission string
	columns    []column
	sortable   bool
	rows       func(snapshot *models.ReportSnapshot, dates service.DateService, col int, dir dataset.Direction) [][]string
}

var dashboardTabs = []dashboardTab{
	{
		title: "Consumption",
		columns: []column{
			{title: "Meter", width: 8},
			{title: "Zone", width: 10},
			{title: "Customer", width: 22},
			{title: "kWh", width: 10, right: true},
			{title: "Readings", width: 8, right: true},
		},
		sortable: true,
		rows:     consumptionRows,
	},
	{
		title:      "Alarms",
		permission: models.PermissionViewAlarms,
		columns: []column{
			{title: "ID", width: 9, right: true},
			{title: "Meter", width: 8},
			{title: "Kind", width: 18},
			{title: "Severity", width: 8, right: true},
			{title: "Raised", width: 10},
		},
		sortable: true,
		rows:     alarmRows,
	},
	{
		title: "Summary",
		columns: []column{
			{title: "Metric", width: 20},
			{title: "Value", width: 16, right: true},
		},
		rows: summaryRows,
	},
}

var consumptionKeys = []func(models.ConsumptionRow) any{
	func(r models.ConsumptionRow) any { return r.MeterID },
	func(r models.ConsumptionRow) any { return r.Zone },
	func(r models.ConsumptionRow) any { return r.Customer },
	func(r models.ConsumptionRow) any { return r.ConsumedKWh },
	func(r models.ConsumptionRow) any { return r.Readings },
}

func consumptionRows(snapshot *models.ReportSnapshot, _ service.DateService, col int, dir dataset.Direction) [][]string {
	data, _ := models.SnapshotReport[[]models.ConsumptionRow](snapshot, models.ReportConsumption)
	sorted := dataset.Sort(data, consumptionKeys[col%len(consumptionKeys)], dir)

	rows := make([][]string, len(sorted))
	for i, r := range sorted {
		rows[i] = []string{r.MeterID, r.Zone, r.Customer, formatKWh(r.ConsumedKWh), strconv.Itoa(r.Readings)}
	}
	return rows
}

var alarmKeys = []func(models.AlarmRow) any{
	func(r models.AlarmRow) any { return int64(r.AlarmID) },
	func(r models.AlarmRow) any { return r.MeterID },
	func(r models.AlarmRow) any { return r.Kind },
	func(r models.AlarmRow) any { return r.Severity },
	func(r models.AlarmRow) any { return r.RaisedAt },
}

func alarmRows(snapshot *models.ReportSnapshot, dates service.DateService, col int, dir dataset.Direction) [][]string {
	data, _ := models.SnapshotReport[[]models.AlarmRow](snapshot, models.ReportAlarms)
	sorted := dataset.Sort(data, alarmKeys[col%len(alarmKeys)], dir)

	rows := make([][]string, len(sorted))
	for i, r := range sorted {
		rows[i] = []string{r.AlarmID.String(), r.MeterID, r.Kind, strconv.Itoa(r.Severity), dates.ToISODateString(r.RaisedAt)}
	}
	return rows
}

func summaryRows(snapshot *models.ReportSnapshot, _ service.DateService, _ int, _ dataset.Direction) [][]string {
	var rows [][]string

	if stats, ok := models.SnapshotReport[models.ReadingStats](snapshot, models.ReportReadingStats); ok {
		rows = append(rows,
			[]string{"Readings expected", strconv.Itoa(stats.Expected)},
			[]string{"Readings received", strconv.Itoa(stats.Received)},
			[]string{"Readings pending", strconv.Itoa(stats.Pending)},
			[]string{"Readings failed", strconv.Itoa(stats.Failed)},
		)
	}
	if year, ok := models.SnapshotReport[models.YearlyStats](snapshot, models.ReportYearlyStats); ok {
		prefix := strconv.Itoa(year.Year) + " "
		rows = append(rows,
			[]string{prefix + "total kWh", formatKWh(year.TotalKWh)},
			[]string{prefix + "avg kWh/meter", formatKWh(year.AverageKWh)},
			[]string{prefix + "active meters", strconv.Itoa(year.ActiveMeters)},
			[]string{prefix + "peak month", valueOrDash(year.PeakMonth)},
			[]string{prefix + "peak kWh", formatKWh(year.PeakMonthKWh)},
		)
	}
	return rows
}

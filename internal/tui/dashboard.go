package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/meter-console/internal/dataset"
	"github.com/MKhiriev/meter-console/internal/service"
)

// DashboardModel shows the reports of one period. Each visit owns a fresh
// report orchestrator that is stopped when the page closes.
type DashboardModel struct {
	ctx      context.Context
	services consoleServices
	out      *sender

	reports reportSource
	state   service.ReportState
	tabs    []dashboardTab
	tab     int
	sortCol int
	sortDir dataset.Direction
	rows    [][]string
	idx     int

	period     textinput.Model
	editing    bool
	lastPeriod string

	spinner  spinner.Model
	spinning bool
	status   string
	errMsg   string
}

func NewDashboardModel(ctx context.Context, services consoleServices, out *sender) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	period := textinput.New()
	period.Placeholder = "YYYY-MM"
	period.CharLimit = 7
	period.Width = 8

	return &DashboardModel{
		ctx:      ctx,
		services: services,
		out:      out,
		spinner:  s,
		period:   period,
	}
}

// Init starts a new orchestrator for the last viewed period, or the current
// month on the first visit.
func (m *DashboardModel) Init() tea.Cmd {
	m.Close()

	user := m.services.session.Snapshot().User
	m.tabs = m.tabs[:0]
	for _, t := range dashboardTabs {
		if t.permission == "" || m.services.authorization.Can(user, t.permission) {
			m.tabs = append(m.tabs, t)
		}
	}
	if m.tab >= len(m.tabs) {
		m.tab, m.sortCol, m.sortDir = 0, 0, dataset.Ascending
	}

	period := m.lastPeriod
	if period == "" {
		period = m.services.dates.CurrentMonthString()
	}
	m.period.SetValue(period)
	m.period.Blur()
	m.editing = false
	m.status, m.errMsg = "", ""

	m.reports = m.services.newReports(period, user)
	out := m.out
	m.reports.OnChange(func() { out.Send(reportsChangedMsg{}) })
	m.reports.Start(m.ctx)

	m.refresh()
	return m.startSpinner()
}

// Close stops the orchestrator of the current visit.
func (m *DashboardModel) Close() {
	if m.reports != nil {
		m.reports.Stop()
		m.reports = nil
	}
	m.spinning = false
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsChangedMsg:
		m.refresh()
		return m, m.startSpinner()

	case spinner.TickMsg:
		if !m.state.Loading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionRestoredMsg:
		if m.reports != nil {
			m.reports.Reload()
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Row copied"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updatePeriodInput(msg)
		}
		return m.updateKeys(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.period, cmd = m.period.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.tab):
		m.editing = true
		return m, m.period.Focus()
	case key.Matches(msg, keys.left):
		m.switchTab(-1)
	case key.Matches(msg, keys.right):
		m.switchTab(1)
	case key.Matches(msg, keys.up):
		m.idx = clampIndex(m.idx-1, len(m.rows))
	case key.Matches(msg, keys.down):
		m.idx = clampIndex(m.idx+1, len(m.rows))
	case key.Matches(msg, keys.prevPeriod):
		m.shiftPeriod(-1)
	case key.Matches(msg, keys.nextPeriod):
		m.shiftPeriod(1)
	case key.Matches(msg, keys.reload):
		if m.reports != nil {
			m.errMsg = ""
			m.reports.Reload()
		}
	case key.Matches(msg, keys.sortColumn):
		if t, ok := m.currentTab(); ok && t.sortable {
			m.sortCol = (m.sortCol + 1) % len(t.columns)
			m.sortDir = dataset.Ascending
			m.rebuild()
		}
	case key.Matches(msg, keys.sortDir):
		if t, ok := m.currentTab(); ok && t.sortable {
			m.sortDir = m.sortDir.Toggle()
			m.rebuild()
		}
	case key.Matches(msg, keys.copy):
		if m.idx < len(m.rows) {
			return m, cmdCopy(strings.Join(m.rows[m.idx], "\t"))
		}
	}
	return m, nil
}

// updatePeriodInput edits the period. Every complete period typed is sent
// to the orchestrator, which debounces the fetch.
func (m *DashboardModel) updatePeriodInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.tab), key.Matches(msg, keys.enter):
		m.editing = false
		m.period.Blur()
		if !m.validPeriod(m.period.Value()) {
			m.period.SetValue(m.state.CurrentPeriod)
			if key.Matches(msg, keys.enter) {
				m.errMsg = "Period must look like YYYY-MM"
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.period, cmd = m.period.Update(msg)
	m.setPeriod(m.period.Value())
	return m, cmd
}

func (m *DashboardModel) shiftPeriod(months int) {
	next, err := m.services.dates.ShiftPeriod(m.state.CurrentPeriod, months)
	if err != nil {
		m.errMsg = humanizeError(err)
		return
	}
	m.period.SetValue(next)
	m.setPeriod(next)
}

func (m *DashboardModel) setPeriod(period string) {
	if m.reports == nil || period == m.state.CurrentPeriod || !m.validPeriod(period) {
		return
	}
	m.errMsg = ""
	m.reports.SetPeriod(period)
	m.refresh()
}

func (m *DashboardModel) validPeriod(period string) bool {
	_, err := m.services.dates.ShiftPeriod(period, 0)
	return err == nil
}

func (m *DashboardModel) switchTab(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.tab = (m.tab + delta + len(m.tabs)) % len(m.tabs)
	m.sortCol, m.sortDir, m.idx = 0, dataset.Ascending, 0
	m.rebuild()
}

func (m *DashboardModel) currentTab() (dashboardTab, bool) {
	if m.tab < 0 || m.tab >= len(m.tabs) {
		return dashboardTab{}, false
	}
	return m.tabs[m.tab], true
}

func (m *DashboardModel) refresh() {
	if m.reports == nil {
		return
	}
	m.state = m.reports.State()
	m.lastPeriod = m.state.CurrentPeriod
	m.rebuild()
}

func (m *DashboardModel) rebuild() {
	t, ok := m.currentTab()
	if !ok {
		m.rows = nil
		return
	}
	m.rows = t.rows(m.state.Snapshot, m.services.dates, m.sortCol, m.sortDir)
	m.idx = clampIndex(m.idx, len(m.rows))
}

func (m *DashboardModel) startSpinner() tea.Cmd {
	if !m.state.Loading || m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString("Period: [")
	b.WriteString(m.period.View())
	b.WriteString("]")
	if m.state.Loading {
		b.WriteString("  " + m.spinner.View() + " loading")
	}
	if snap := m.state.Snapshot; snap != nil {
		b.WriteString(helpStyle.Render("  updated " + snap.FetchedAt.Format("15:04:05")))
		if snap.Period != m.state.CurrentPeriod {
			b.WriteString(helpStyle.Render("  showing " + snap.Period))
		}
	}
	b.WriteString("\n\n")

	for i, t := range m.tabs {
		if i == m.tab {
			b.WriteString(selectedStyle.Render("[" + t.title + "]"))
		} else {
			b.WriteString(" " + t.title + " ")
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	t, ok := m.currentTab()
	if ok && t.sortable {
		b.WriteString(helpStyle.Render("sort: " + t.columns[m.sortCol].title + " " + m.sortDir.String()))
	}
	b.WriteString("\n")

	switch {
	case !ok:
	case m.state.Snapshot == nil && m.state.Loading:
		b.WriteString("Loading reports...\n")
	case len(m.rows) == 0:
		b.WriteString("No data\n")
	default:
		b.WriteString(renderTable(t.columns, m.rows, m.idx))
		b.WriteString("\n")
	}

	if m.state.LastError != nil {
		b.WriteString("\n" + errorStyle.Render("Last refresh failed: "+humanizeError(m.state.LastError)))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg))
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	hotKeys := "←/→: report │ [/]: month │ tab: edit period │ s/o: sort │ c: copy row │ r: reload │ esc: back"
	if m.editing {
		hotKeys = "enter/tab/esc: done"
	}
	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

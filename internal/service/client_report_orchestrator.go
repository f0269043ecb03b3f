package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/meter-console/internal/adapter"
	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/workers"
	"github.com/MKhiriev/meter-console/models"
)

// ReportQuery fetches one report for a period.
type ReportQuery struct {
	Name  string
	Fetch func(ctx context.Context, period string) (any, error)
}

// NewDashboardQueries returns the dashboard report queries. The yearly
// report is requested for the year of the period.
func NewDashboardQueries(api adapter.ReportAPI, dates DateService) []ReportQuery {
	return []ReportQuery{
		{
			Name: models.ReportConsumption,
			Fetch: func(ctx context.Context, period string) (any, error) {
				return api.GetConsumption(ctx, period)
			},
		},
		{
			Name: models.ReportReadingStats,
			Fetch: func(ctx context.Context, period string) (any, error) {
				return api.GetReadingStats(ctx, period)
			},
		},
		{
			Name: models.ReportAlarms,
			Fetch: func(ctx context.Context, period string) (any, error) {
				return api.GetAlarms(ctx, period)
			},
		},
		{
			Name: models.ReportYearlyStats,
			Fetch: func(ctx context.Context, period string) (any, error) {
				year, err := dates.PeriodYear(period)
				if err != nil {
					return nil, err
				}
				return api.GetYearlyStats(ctx, year)
			},
		},
	}
}

// ReportState is a read-only copy of the orchestrator state.
type ReportState struct {
	CurrentPeriod string
	Loading       bool
	Snapshot      *models.ReportSnapshot
	LastError     error
}

// cycle tags one fetch cycle with the period it was issued for and a
// sequence number that grows with every issued cycle.
type cycle struct {
	period     string
	seq        uint64
	foreground bool
	ctx        context.Context
}

// ReportOrchestrator keeps the dashboard reports for the current period.
//
// Period changes are debounced; when the delay elapses a foreground cycle
// fetches every query concurrently and commits a new snapshot only if all
// of them succeed. A background poll re-runs the cycle for the period
// current at fire time without touching Loading. A cycle whose period is no
// longer current, that is older than the committed snapshot, or that
// completes after Stop is discarded.
type ReportOrchestrator struct {
	queries  []ReportQuery
	debounce time.Duration
	poller   *workers.Ticker
	now      func() time.Time
	logger   *logger.Logger

	mu            sync.Mutex
	period        string
	loading       bool
	snapshot      *models.ReportSnapshot
	lastErr       error
	seq           uint64
	committedSeq  uint64
	foregroundSeq uint64
	debounceGen   uint64
	timer         *time.Timer
	ctx           context.Context
	cancel        context.CancelFunc
	stopped       bool
	listener      func()
}

var (
	_ ReportSource   = (*ReportOrchestrator)(nil)
	_ workers.Worker = (*ReportOrchestrator)(nil)
)

// NewReportOrchestrator returns an idle orchestrator for period. Nothing
// is fetched until Start.
func NewReportOrchestrator(queries []ReportQuery, period string, cfg config.ClientWorkers, logger *logger.Logger) *ReportOrchestrator {
	o := &ReportOrchestrator{
		queries:  queries,
		debounce: cfg.DebounceDelay,
		now:      time.Now,
		logger:   logger,
		period:   period,
	}
	if o.debounce <= 0 {
		o.debounce = config.DefaultDebounceDelay
	}
	o.poller = workers.NewTicker(cfg.PollInterval, o.poll)
	return o
}

// OnChange replaces the listener called after every state change. It runs
// on the goroutine that changed the state and should read State rather
// than keep a reference to the orchestrator's data.
func (o *ReportOrchestrator) OnChange(listener func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listener = listener
}

// State returns the current state.
func (o *ReportOrchestrator) State() ReportState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return ReportState{
		CurrentPeriod: o.period,
		Loading:       o.loading,
		Snapshot:      o.snapshot,
		LastError:     o.lastErr,
	}
}

// Start fetches the current period in the foreground and starts the
// background poll. A stopped orchestrator cannot be started again.
func (o *ReportOrchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	if o.stopped || o.ctx != nil {
		o.mu.Unlock()
		return
	}
	o.ctx, o.cancel = context.WithCancel(ctx)
	o.mu.Unlock()

	// the initial cycle is bound to the period current at Start; a later
	// SetPeriod discards it by tag
	if c, ok := o.begin(true); ok {
		go o.execute(c)
	}
	o.poller.Start(ctx)
}

// Stop clears the debounce timer, stops the poll and cancels in-flight
// queries. Cycles completing afterwards change nothing.
func (o *ReportOrchestrator) Stop() {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	o.stopped = true
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	cancel := o.cancel
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	o.poller.Stop()
}

// SetPeriod makes period current immediately and restarts the debounce
// timer. The foreground cycle fires once the delay elapses without another
// change.
func (o *ReportOrchestrator) SetPeriod(period string) {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	o.period = period
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.debounceGen++
	if o.ctx != nil {
		gen := o.debounceGen
		o.timer = time.AfterFunc(o.debounce, func() { o.fireDebounced(gen) })
	}
	listener := o.listener
	o.mu.Unlock()

	o.logger.Debug().Str("func", "*ReportOrchestrator.SetPeriod").Str("period", period).Msg("period changed")
	notify(listener)
}

// fireDebounced runs the foreground cycle unless a later SetPeriod
// superseded the timer that called it.
func (o *ReportOrchestrator) fireDebounced(gen uint64) {
	o.mu.Lock()
	current := gen == o.debounceGen
	if current {
		o.timer = nil
	}
	o.mu.Unlock()

	if current {
		o.run(true)
	}
}

// Reload fetches the current period in the foreground right away.
func (o *ReportOrchestrator) Reload() {
	if c, ok := o.begin(true); ok {
		go o.execute(c)
	}
}

func (o *ReportOrchestrator) poll(context.Context) {
	o.run(false)
}

// run executes one fetch cycle for the current period.
func (o *ReportOrchestrator) run(foreground bool) {
	if c, ok := o.begin(foreground); ok {
		o.execute(c)
	}
}

// begin tags a cycle with the current period and the next sequence number.
// It reports false when there is nothing to fetch.
func (o *ReportOrchestrator) begin(foreground bool) (cycle, bool) {
	o.mu.Lock()
	if o.stopped || o.ctx == nil || o.period == "" {
		o.mu.Unlock()
		return cycle{}, false
	}
	o.seq++
	c := cycle{period: o.period, seq: o.seq, foreground: foreground, ctx: o.ctx}
	if foreground {
		o.loading = true
		o.foregroundSeq = c.seq
	}
	listener := o.listener
	o.mu.Unlock()

	if foreground {
		notify(listener)
	}
	return c, true
}

// execute fetches the cycle's period and completes the cycle.
func (o *ReportOrchestrator) execute(c cycle) {
	reports, err := o.fetch(c.ctx, c.period)
	o.complete(c, reports, err)
}

// fetch runs every query concurrently and returns the reports only if all
// of them succeed.
func (o *ReportOrchestrator) fetch(ctx context.Context, period string) (map[string]any, error) {
	results := make([]any, len(o.queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range o.queries {
		g.Go(func() error {
			v, err := q.Fetch(gctx, period)
			if err != nil {
				return fmt.Errorf("%s: %w", q.Name, mapAdapterError(err))
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make(map[string]any, len(o.queries))
	for i, q := range o.queries {
		reports[q.Name] = results[i]
	}
	return reports, nil
}

func (o *ReportOrchestrator) complete(c cycle, reports map[string]any, err error) {
	log := o.logger.GetChildLogger()

	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}

	changed := false
	if c.foreground && c.seq == o.foregroundSeq && o.loading {
		o.loading = false
		changed = true
	}

	switch {
	case c.period != o.period || c.seq < o.committedSeq:
		log.Debug().
			Str("func", "*ReportOrchestrator.complete").
			Str("cycle_period", c.period).
			Str("current_period", o.period).
			Uint64("seq", c.seq).
			Msg("discarding stale fetch cycle")
	case err != nil:
		o.lastErr = fmt.Errorf("%w: %w", ErrFetchCycleFailed, err)
		changed = true
		log.Err(err).
			Str("func", "*ReportOrchestrator.complete").
			Str("period", c.period).
			Bool("foreground", c.foreground).
			Msg("fetch cycle failed, keeping previous snapshot")
	default:
		o.snapshot = &models.ReportSnapshot{Period: c.period, Reports: reports, FetchedAt: o.now()}
		o.committedSeq = c.seq
		o.lastErr = nil
		changed = true
	}
	listener := o.listener
	o.mu.Unlock()

	if changed {
		notify(listener)
	}
}

func notify(listener func()) {
	if listener != nil {
		listener()
	}
}

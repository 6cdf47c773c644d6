package store

import (
	"log/slog"
	"sync"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/engine"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

// Workbench pairs an upload set with the report of its last consolidation.
// The report is only rebuilt when Consolidate is called.
type Workbench struct {
	*UploadSet

	mu       sync.Mutex
	report   *models.ConsolidatedReport
	builtAt  uint64
	hasBuilt bool
	logger   *slog.Logger
}

// install holds report unless one built from a newer version is held.
func (w *Workbench) install(report *models.ConsolidatedReport, version uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.hasBuilt && version < w.builtAt {
		return false
	}
	w.report = report
	w.builtAt = version
	w.hasBuilt = true
	return true
}

// NewWorkbench returns a workbench over an empty upload set.
func NewWorkbench(logger *slog.Logger) *Workbench {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workbench{UploadSet: NewUploadSet(), logger: logger}
}

// Consolidate runs the engine over a snapshot of the uploads and replaces
// the held report, unless a run over a newer snapshot already did.
func (w *Workbench) Consolidate() (*models.ConsolidatedReport, error) {
	tables, version, err := w.Snapshot()
	if err != nil {
		return nil, err
	}
	report := engine.Consolidate(tables)

	if !w.install(report, version) {
		w.logger.Debug("discarded superseded report", "version", version)
		return report, nil
	}

	w.logger.Info("consolidated",
		"tables", len(tables),
		"pl_accounts", len(report.PL),
		"bs_accounts", len(report.BS),
		"periods", len(report.PeriodNames),
		"companies", len(report.CompanyNames))
	return report, nil
}

// Report returns the last consolidated report, or nil before the first run.
func (w *Workbench) Report() *models.ConsolidatedReport {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.report
}

// Stale reports whether uploads changed since the last run.
func (w *Workbench) Stale() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.hasBuilt || w.builtAt != w.currentVersion()
}

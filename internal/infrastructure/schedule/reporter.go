package schedule

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"maintsvc/internal/observer"
)

// Reporter periodically logs a metrics snapshot so counter state survives
// in the logs even though the counters themselves are in-memory only.
type Reporter struct {
	cron    *cron.Cron
	metrics *observer.Metrics
	log     *zap.Logger
}

func NewReporter(metrics *observer.Metrics, log *zap.Logger) *Reporter {
	return &Reporter{
		cron:    cron.New(),
		metrics: metrics,
		log:     log,
	}
}

// Start schedules the snapshot job. spec uses the standard cron format,
// e.g. "0 * * * *" for hourly.
func (r *Reporter) Start(spec string) error {
	_, err := r.cron.AddFunc(spec, r.report)
	if err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Reporter) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Reporter) report() {
	snap := r.metrics.Snapshot()
	r.log.Info("metrics_snapshot",
		zap.Int("requests_created", snap.RequestsCreated),
		zap.Int("requests_completed", snap.RequestsCompleted),
		zap.Any("requests_by_type", snap.RequestsByType),
		zap.Any("technician_workload", snap.TechnicianWorkload),
		zap.Int("assets_created", snap.AssetsCreated),
		zap.Int("condition_changes", snap.ConditionChanges),
	)
}

package ledger

import (
	"context"
	"time"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
)

const topListLimit = 5

type ledgerMetricsRepository interface {
	CountAuditEntries(ctx context.Context, exec repositories.Executor,
		organizationId string, since *time.Time) (int, error)
	StatusBreakdown(ctx context.Context, exec repositories.Executor,
		organizationId string, since time.Time) (models.StatusBreakdown, error)
	CountEventsByType(ctx context.Context, exec repositories.Executor,
		organizationId string, eventTypes []string, since time.Time) (int, error)
	TopEventTypes(ctx context.Context, exec repositories.Executor,
		organizationId string, limit int) ([]models.EndpointCount, error)
	TopObjectTypes(ctx context.Context, exec repositories.Executor,
		organizationId string, limit int) ([]models.ObjectTypeCount, error)
	EventTimeseries(ctx context.Context, exec repositories.Executor,
		organizationId string, since time.Time, bucket models.TimeseriesBucketSize) ([]models.TimeseriesBucket, error)
}

// MetricsReader aggregates the dashboard numbers. Verification runs on every
// call rather than being cached: the point of the dashboard is to notice a
// broken chain, so a stale green number is worse than a slow one.
type MetricsReader struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ledgerMetricsRepository
	verifier        Verifier
}

func NewMetricsReader(
	executorFactory executor_factory.ExecutorFactory,
	repository ledgerMetricsRepository,
	verifier Verifier,
) MetricsReader {
	return MetricsReader{
		executorFactory: executorFactory,
		repository:      repository,
		verifier:        verifier,
	}
}

func (m MetricsReader) DashboardMetrics(ctx context.Context, organizationId string) (models.LedgerMetrics, error) {
	exec := m.executorFactory.NewExecutor()
	now := time.Now().UTC()
	last24h := now.Add(-24 * time.Hour)
	last7d := now.Add(-7 * 24 * time.Hour)

	total, err := m.repository.CountAuditEntries(ctx, exec, organizationId, nil)
	if err != nil {
		return models.LedgerMetrics{}, err
	}
	recent, err := m.repository.CountAuditEntries(ctx, exec, organizationId, &last24h)
	if err != nil {
		return models.LedgerMetrics{}, err
	}
	breakdown, err := m.repository.StatusBreakdown(ctx, exec, organizationId, last24h)
	if err != nil {
		return models.LedgerMetrics{}, err
	}
	unsignedExports, err := m.repository.CountEventsByType(ctx, exec, organizationId,
		[]string{models.EventAuditExported}, last7d)
	if err != nil {
		return models.LedgerMetrics{}, err
	}
	topEndpoints, err := m.repository.TopEventTypes(ctx, exec, organizationId, topListLimit)
	if err != nil {
		return models.LedgerMetrics{}, err
	}
	topObjects, err := m.repository.TopObjectTypes(ctx, exec, organizationId, topListLimit)
	if err != nil {
		return models.LedgerMetrics{}, err
	}
	verification, err := m.verifier.VerifyChain(ctx, organizationId)
	if err != nil {
		return models.LedgerMetrics{}, err
	}

	return models.LedgerMetrics{
		TotalEvents:        total,
		EventsLast24h:      recent,
		StatusBreakdown24h: breakdown,
		Verification:       verification,
		UnsignedExports7d:  unsignedExports,
		TopEndpoints:       topEndpoints,
		TopObjectTypes:     topObjects,
	}, nil
}

// EventTimeseries returns contiguous buckets over the window, zero-filling
// the gaps the aggregation query leaves out.
func (m MetricsReader) EventTimeseries(ctx context.Context, organizationId string,
	window models.TimeseriesWindow, bucket models.TimeseriesBucketSize,
) ([]models.TimeseriesBucket, error) {
	duration, err := window.Duration()
	if err != nil {
		return nil, err
	}
	if err := bucket.Validate(); err != nil {
		return nil, err
	}

	step := time.Hour
	if bucket == models.TimeseriesBucketDay {
		step = 24 * time.Hour
	}
	since := time.Now().UTC().Add(-duration).Truncate(step)

	exec := m.executorFactory.NewExecutor()
	populated, err := m.repository.EventTimeseries(ctx, exec, organizationId, since, bucket)
	if err != nil {
		return nil, err
	}

	byStart := make(map[time.Time]models.TimeseriesBucket, len(populated))
	for _, b := range populated {
		byStart[b.BucketStart.UTC()] = b
	}

	var out []models.TimeseriesBucket
	for start := since; !start.After(time.Now().UTC()); start = start.Add(step) {
		if b, ok := byStart[start]; ok {
			out = append(out, b)
		} else {
			out = append(out, models.TimeseriesBucket{BucketStart: start})
		}
	}
	return out, nil
}

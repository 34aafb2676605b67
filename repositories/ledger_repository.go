package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type LedgerRepository struct{}

func (repo LedgerRepository) GetChainHead(ctx context.Context, exec Executor,
	organizationId string,
) (models.ChainHead, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectChainHeadColumns...).
			From(dbmodels.TABLE_AUDIT_CHAIN_HEADS).
			Where(squirrel.Eq{"organization_id": organizationId}),
		dbmodels.AdaptChainHead,
	)
}

func (repo LedgerRepository) CreateChainHead(ctx context.Context, exec Executor,
	head models.ChainHead,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AUDIT_CHAIN_HEADS).
			Columns("organization_id", "entry_hash", "seq").
			Values(head.OrganizationId, head.EntryHash, head.Seq),
	)
}

// AppendAuditEntry inserts the entry and advances the organization's head
// pointer, but only if the head is still at expectedSeq. A concurrent append
// that won the race leaves zero rows updated and the caller gets
// ErrLedgerWriteConflict; nothing is inserted in that case since both
// statements run on the same transaction.
func (repo LedgerRepository) AppendAuditEntry(ctx context.Context, tx Transaction,
	entry models.AuditEntry, expectedSeq int64,
) error {
	sql, args, err := NewQueryBuilder().
		Update(dbmodels.TABLE_AUDIT_CHAIN_HEADS).
		Set("entry_hash", entry.EntryHash).
		Set("seq", expectedSeq+1).
		Where(squirrel.Eq{
			"organization_id": entry.OrganizationId,
			"seq":             expectedSeq,
		}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return errors.Wrap(err, "error advancing audit chain head")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(models.ErrLedgerWriteConflict,
			"organization %s seq %d", entry.OrganizationId, expectedSeq)
	}

	return ExecBuilder(
		ctx,
		tx,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AUDIT_ENTRIES).
			Columns(
				"id",
				"organization_id",
				"actor_ref",
				"event_type",
				"object_type",
				"object_id",
				"request_fingerprint",
				"status_code",
				"prev_hash",
				"entry_hash",
				"created_at",
			).
			Values(
				entry.Id,
				entry.OrganizationId,
				nilIfEmpty(entry.ActorRef),
				entry.EventType,
				entry.ObjectType,
				entry.ObjectId,
				nilIfEmpty(entry.RequestFingerprint),
				nilIfZero(entry.StatusCode),
				entry.PrevHash,
				entry.EntryHash,
				entry.CreatedAt,
			),
	)
}

func (repo LedgerRepository) GetAuditEntry(ctx context.Context, exec Executor,
	entryId string,
) (models.AuditEntry, error) {
	return SqlToModel(
		ctx,
		exec,
		selectAuditEntries().Where(squirrel.Eq{"id": entryId}),
		dbmodels.AdaptAuditEntry,
	)
}

func (repo LedgerRepository) FindEntryByHash(ctx context.Context, exec Executor,
	organizationId, entryHash string,
) (*models.AuditEntry, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		selectAuditEntries().Where(squirrel.Eq{
			"organization_id": organizationId,
			"entry_hash":      entryHash,
		}),
		dbmodels.AdaptAuditEntry,
	)
}

func (repo LedgerRepository) ListAuditEntries(ctx context.Context, exec Executor,
	filters models.AuditEntryFilters, pagination models.Pagination, ascending bool,
) ([]models.AuditEntry, error) {
	pagination = pagination.WithDefaults()

	order := "id DESC"
	if ascending {
		order = "id ASC"
	}

	query := selectAuditEntries().
		Where(squirrel.Eq{"organization_id": filters.OrganizationId}).
		OrderBy(order).
		Limit(uint64(pagination.Limit)).
		Offset(uint64(pagination.Offset))

	if filters.EventType != "" {
		query = query.Where(squirrel.Eq{"event_type": filters.EventType})
	}
	if filters.ObjectType != "" {
		query = query.Where(squirrel.Eq{"object_type": filters.ObjectType})
	}
	if filters.Since != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filters.Since})
	}
	if filters.Until != nil {
		query = query.Where(squirrel.Lt{"created_at": *filters.Until})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditEntry)
}

func (repo LedgerRepository) CountAuditEntries(ctx context.Context, exec Executor,
	organizationId string, since *time.Time,
) (int, error) {
	query := NewQueryBuilder().
		Select("count(*)").
		From(dbmodels.TABLE_AUDIT_ENTRIES).
		Where(squirrel.Eq{"organization_id": organizationId})
	if since != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *since})
	}

	return queryOneInt(ctx, exec, query)
}

func (repo LedgerRepository) StatusBreakdown(ctx context.Context, exec Executor,
	organizationId string, since time.Time,
) (models.StatusBreakdown, error) {
	sql := fmt.Sprintf(`
		SELECT
			count(*) FILTER (WHERE status_code BETWEEN 200 AND 299) AS status_2xx,
			count(*) FILTER (WHERE status_code BETWEEN 400 AND 499) AS status_4xx,
			count(*) FILTER (WHERE status_code >= 500) AS status_5xx
		FROM %s
		WHERE organization_id = $1 AND created_at >= $2`,
		dbmodels.TABLE_AUDIT_ENTRIES)

	var breakdown models.StatusBreakdown
	err := exec.QueryRow(ctx, sql, organizationId, since).
		Scan(&breakdown.Status2xx, &breakdown.Status4xx, &breakdown.Status5xx)
	if err != nil {
		return models.StatusBreakdown{}, errors.Wrap(err, "error computing status breakdown")
	}
	return breakdown, nil
}

func (repo LedgerRepository) CountEventsByType(ctx context.Context, exec Executor,
	organizationId string, eventTypes []string, since time.Time,
) (int, error) {
	return queryOneInt(ctx, exec, NewQueryBuilder().
		Select("count(*)").
		From(dbmodels.TABLE_AUDIT_ENTRIES).
		Where(squirrel.Eq{
			"organization_id": organizationId,
			"event_type":      eventTypes,
		}).
		Where(squirrel.GtOrEq{"created_at": since}))
}

func (repo LedgerRepository) TopEventTypes(ctx context.Context, exec Executor,
	organizationId string, limit int,
) ([]models.EndpointCount, error) {
	query := NewQueryBuilder().
		Select("event_type", "count(*) AS count").
		From(dbmodels.TABLE_AUDIT_ENTRIES).
		Where(squirrel.Eq{"organization_id": organizationId}).
		GroupBy("event_type").
		OrderBy("count DESC", "event_type ASC").
		Limit(uint64(limit))

	var out []models.EndpointCount
	err := ForEachRow(ctx, exec, query, func(row pgx.CollectableRow) error {
		var ec models.EndpointCount
		if err := row.Scan(&ec.EventType, &ec.Count); err != nil {
			return err
		}
		out = append(out, ec)
		return nil
	})
	return out, err
}

func (repo LedgerRepository) TopObjectTypes(ctx context.Context, exec Executor,
	organizationId string, limit int,
) ([]models.ObjectTypeCount, error) {
	query := NewQueryBuilder().
		Select("object_type", "count(*) AS count").
		From(dbmodels.TABLE_AUDIT_ENTRIES).
		Where(squirrel.Eq{"organization_id": organizationId}).
		GroupBy("object_type").
		OrderBy("count DESC", "object_type ASC").
		Limit(uint64(limit))

	var out []models.ObjectTypeCount
	err := ForEachRow(ctx, exec, query, func(row pgx.CollectableRow) error {
		var oc models.ObjectTypeCount
		if err := row.Scan(&oc.ObjectType, &oc.Count); err != nil {
			return err
		}
		out = append(out, oc)
		return nil
	})
	return out, err
}

// EventTimeseries buckets events since the window start with date_trunc.
// Empty buckets are filled in by the caller, not the query.
func (repo LedgerRepository) EventTimeseries(ctx context.Context, exec Executor,
	organizationId string, since time.Time, bucket models.TimeseriesBucketSize,
) ([]models.TimeseriesBucket, error) {
	sql := fmt.Sprintf(`
		SELECT
			date_trunc($1, created_at) AS bucket_start,
			count(*) AS event_count,
			count(*) FILTER (WHERE status_code BETWEEN 200 AND 299) AS status_2xx,
			count(*) FILTER (WHERE status_code BETWEEN 400 AND 499) AS status_4xx,
			count(*) FILTER (WHERE status_code >= 500) AS status_5xx
		FROM %s
		WHERE organization_id = $2 AND created_at >= $3
		GROUP BY bucket_start
		ORDER BY bucket_start ASC`,
		dbmodels.TABLE_AUDIT_ENTRIES)

	rows, err := exec.Query(ctx, sql, string(bucket), organizationId, since)
	if err != nil {
		return nil, errors.Wrap(err, "error querying event timeseries")
	}
	defer rows.Close()

	var out []models.TimeseriesBucket
	for rows.Next() {
		var b models.TimeseriesBucket
		if err := rows.Scan(&b.BucketStart, &b.EventCount,
			&b.Status2xx, &b.Status4xx, &b.Status5xx); err != nil {
			return nil, errors.Wrap(err, "error scanning timeseries bucket")
		}
		out = append(out, b)
	}
	return out, errors.Wrap(rows.Err(), "error iterating over timeseries rows")
}

func selectAuditEntries() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectAuditEntryColumns...).
		From(dbmodels.TABLE_AUDIT_ENTRIES)
}

func queryOneInt(ctx context.Context, exec Executor, query squirrel.Sqlizer) (int, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}
	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "error scanning count")
	}
	return count, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nilIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

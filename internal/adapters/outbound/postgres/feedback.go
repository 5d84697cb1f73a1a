package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FeedbackRepository implements domain.FeedbackRepository on the feedbacks table.
type FeedbackRepository struct {
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(br squirrel.BaseRunner) FeedbackRepository {
	return FeedbackRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListRawFeedbackTags returns the raw JSON tags column of the most recent feedback rows
// that carry at least one tag, optionally restricted to chainIDs.
func (fr FeedbackRepository) ListRawFeedbackTags(ctx context.Context, chainIDs []int64, scanLimit int) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64Slice("chain_ids", chainIDs),
		attribute.Int("scan_limit", scanLimit),
	))
	defer span.End()

	if scanLimit <= 0 {
		err := domain.NewValidationErr("scan limit must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	qry := fr.sb.
		Select("tags::text").
		From("feedbacks").
		Where(squirrel.Expr("tags <> '[]'::jsonb"))

	if len(chainIDs) > 0 {
		qry = qry.Where(squirrel.Eq{"chain_id": chainIDs})
	}

	rows, err := qry.
		OrderBy("submitted_at DESC").
		Limit(uint64(scanLimit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var raw []string
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		raw = append(raw, tags)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("rows", len(raw)))
	return raw, nil
}

// InitFeedbackRepository is a Symbiont initializer for FeedbackRepository.
type InitFeedbackRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the FeedbackRepository in the dependency container.
func (fr InitFeedbackRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.FeedbackRepository](NewFeedbackRepository(fr.DB))
	return ctx, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dchas/praxis/internal/logger"
	"github.com/dchas/praxis/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

// ── Intents ──────────────────────────────────────────────────────────────────

func (h *historyRepository) AppendIntent(ctx context.Context, intent models.Intent) error {
	log := logger.FromContext(ctx)

	var resolvedAt sql.NullTime
	if intent.ResolvedAt != nil {
		resolvedAt = sql.NullTime{Time: *intent.ResolvedAt, Valid: true}
	}

	query, args, err := sq.Insert("intent_history").
		Columns("id", "owner_id", "declaration", "status", "declared_at", "resolved_at").
		Values(intent.ID, intent.OwnerID, intent.Declaration, string(intent.Status),
			intent.DeclaredAt, resolvedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build intent insert: %w", err)
	}

	if _, err = h.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.AppendIntent").
			Int64("owner_id", intent.OwnerID).
			Str("id", intent.ID).
			Msg("failed to execute insert for intent")
		return fmt.Errorf("failed to append intent (id=%s): %w", intent.ID, err)
	}

	return nil
}

func (h *historyRepository) ResolveIntent(ctx context.Context, intentID string, ownerID int64, resolvedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("intent_history").
		Set("status", string(models.IntentResolved)).
		Set("resolved_at", resolvedAt).
		Where(sq.Eq{"id": intentID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build intent update: %w", err)
	}

	res, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ResolveIntent").
			Int64("owner_id", ownerID).
			Str("id", intentID).
			Msg("failed to execute update for intent")
		return fmt.Errorf("failed to resolve intent (id=%s): %w", intentID, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ErrIntentNotFound
	}

	return nil
}

func (h *historyRepository) ListIntents(ctx context.Context, ownerID int64) ([]models.Intent, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "owner_id", "declaration", "status", "declared_at", "resolved_at").
		From("intent_history").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("declared_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build intent select: %w", err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ListIntents").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for intents")
		return nil, fmt.Errorf("failed to query intents: %w", err)
	}
	defer rows.Close()

	var intents []models.Intent

	for rows.Next() {
		var intent models.Intent
		var status string
		var resolvedAt sql.NullTime

		scanErr := rows.Scan(
			&intent.ID,
			&intent.OwnerID,
			&intent.Declaration,
			&status,
			&intent.DeclaredAt,
			&resolvedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyRepository.ListIntents").
				Int64("owner_id", ownerID).
				Msg("failed to scan intent row")
			return nil, fmt.Errorf("failed to scan intent row: %w", scanErr)
		}

		intent.Status = models.IntentStatus(status)
		if resolvedAt.Valid {
			t := resolvedAt.Time
			intent.ResolvedAt = &t
		}

		intents = append(intents, intent)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rowsErr)
	}

	return intents, nil
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func buildSessionInsert(session models.FocusSession) (string, []interface{}, error) {
	artifacts, err := json.Marshal(session.Artifacts)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode artifact snapshot (id=%s): %w", session.ID, err)
	}

	var endedAt sql.NullTime
	if session.EndedAt != nil {
		endedAt = sql.NullTime{Time: *session.EndedAt, Valid: true}
	}

	query, args, err := sq.Insert("session_history").
		Columns("id", "owner_id", "intent_id", "intent_snapshot", "started_at", "ended_at",
			"status", "outcome", "proof", "reflection_submitted", "reflection_deferred", "artifacts").
		Values(session.ID, session.OwnerID, session.IntentID, session.IntentSnapshot,
			session.StartedAt, endedAt, string(session.Status), string(session.Outcome),
			session.Proof, session.ReflectionSubmitted, session.ReflectionDeferred, string(artifacts)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build session insert: %w", err)
	}
	return query, args, nil
}

func (h *historyRepository) AppendSession(ctx context.Context, session models.FocusSession) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSessionInsert(session)
	if err != nil {
		return err
	}

	if _, err = h.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.AppendSession").
			Int64("owner_id", session.OwnerID).
			Str("id", session.ID).
			Msg("failed to execute insert for session")
		return fmt.Errorf("failed to append session (id=%s): %w", session.ID, err)
	}

	return nil
}

func (h *historyRepository) ListSessions(ctx context.Context, ownerID int64) ([]models.FocusSession, error) {
	return h.querySessions(ctx, sq.Eq{"owner_id": ownerID})
}

func (h *historyRepository) GetSession(ctx context.Context, sessionID string, ownerID int64) (models.FocusSession, error) {
	sessions, err := h.querySessions(ctx, sq.Eq{"id": sessionID, "owner_id": ownerID})
	if err != nil {
		return models.FocusSession{}, err
	}
	if len(sessions) == 0 {
		return models.FocusSession{}, ErrSessionNotFound
	}
	return sessions[0], nil
}

func (h *historyRepository) PendingReflections(ctx context.Context, ownerID int64) ([]models.FocusSession, error) {
	sessions, err := h.querySessions(ctx, sq.Eq{
		"owner_id":             ownerID,
		"reflection_deferred":  true,
		"reflection_submitted": false,
	})
	if err != nil {
		return nil, err
	}

	// Oldest obligation first.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions, nil
}

func (h *historyRepository) ArchiveSessionWithReflection(ctx context.Context, session models.FocusSession, reflection models.Reflection) error {
	log := logger.FromContext(ctx)

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after a successful commit

	query, args, err := buildReflectionInsert(reflection)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.ArchiveSessionWithReflection").
			Int64("owner_id", reflection.OwnerID).
			Str("id", reflection.ID).
			Msg("failed to execute insert for reflection")
		return fmt.Errorf("failed to append reflection (id=%s): %w", reflection.ID, err)
	}

	query, args, err = buildSessionInsert(session)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.ArchiveSessionWithReflection").
			Int64("owner_id", session.OwnerID).
			Str("id", session.ID).
			Msg("failed to execute insert for session")
		return fmt.Errorf("failed to append session (id=%s): %w", session.ID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit archive transaction: %w", err)
	}
	return nil
}

func (h *historyRepository) CompleteDeferredReflection(ctx context.Context, reflection models.Reflection) error {
	log := logger.FromContext(ctx)

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin completion transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after a successful commit

	query, args, err := buildReflectionInsert(reflection)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.CompleteDeferredReflection").
			Int64("owner_id", reflection.OwnerID).
			Str("id", reflection.ID).
			Msg("failed to execute insert for reflection")
		return fmt.Errorf("failed to append reflection (id=%s): %w", reflection.ID, err)
	}

	query, args, err = sq.Update("session_history").
		Set("reflection_submitted", true).
		Where(sq.Eq{"id": reflection.FocusSessionID, "owner_id": reflection.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build session update: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.CompleteDeferredReflection").
			Int64("owner_id", reflection.OwnerID).
			Str("id", reflection.FocusSessionID).
			Msg("failed to execute update for session")
		return fmt.Errorf("failed to mark reflection submitted (id=%s): %w", reflection.FocusSessionID, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion transaction: %w", err)
	}
	return nil
}

func (h *historyRepository) querySessions(ctx context.Context, where sq.Eq) ([]models.FocusSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "owner_id", "intent_id", "intent_snapshot", "started_at",
		"ended_at", "status", "outcome", "proof", "reflection_submitted", "reflection_deferred", "artifacts").
		From("session_history").
		Where(where).
		OrderBy("started_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build session select: %w", err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.querySessions").
			Msg("failed to execute query for sessions")
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.FocusSession

	for rows.Next() {
		var session models.FocusSession
		var status, outcome, artifacts string
		var endedAt sql.NullTime

		scanErr := rows.Scan(
			&session.ID,
			&session.OwnerID,
			&session.IntentID,
			&session.IntentSnapshot,
			&session.StartedAt,
			&endedAt,
			&status,
			&outcome,
			&session.Proof,
			&session.ReflectionSubmitted,
			&session.ReflectionDeferred,
			&artifacts,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyRepository.querySessions").
				Msg("failed to scan session row")
			return nil, fmt.Errorf("failed to scan session row: %w", scanErr)
		}

		session.Status = models.FocusSessionStatus(status)
		session.Outcome = models.FocusOutcome(outcome)
		if endedAt.Valid {
			t := endedAt.Time
			session.EndedAt = &t
		}
		if err = json.Unmarshal([]byte(artifacts), &session.Artifacts); err != nil {
			return nil, fmt.Errorf("failed to decode artifact snapshot (id=%s): %w", session.ID, err)
		}

		sessions = append(sessions, session)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rowsErr)
	}

	return sessions, nil
}

// ── Reflections ──────────────────────────────────────────────────────────────

// buildReflectionInsert conflicts on focus_session_id without error: the
// table holds at most one reflection per session, so a replayed write is a
// no-op rather than a duplicate.
func buildReflectionInsert(reflection models.Reflection) (string, []interface{}, error) {
	query, args, err := sq.Insert("reflections").
		Columns("id", "owner_id", "focus_session_id", "intent_snapshot", "outcome",
			"outcome_description", "mistake_pattern", "insight", "created_at").
		Values(reflection.ID, reflection.OwnerID, reflection.FocusSessionID,
			reflection.IntentSnapshot, string(reflection.Outcome),
			reflection.OutcomeDescription, reflection.MistakePattern,
			reflection.Insight, reflection.CreatedAt).
		Suffix("ON CONFLICT (focus_session_id) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build reflection insert: %w", err)
	}
	return query, args, nil
}

func (h *historyRepository) ListReflections(ctx context.Context, ownerID int64) ([]models.Reflection, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "owner_id", "focus_session_id", "intent_snapshot",
		"outcome", "outcome_description", "mistake_pattern", "insight", "created_at").
		From("reflections").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reflection select: %w", err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ListReflections").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for reflections")
		return nil, fmt.Errorf("failed to query reflections: %w", err)
	}
	defer rows.Close()

	var reflections []models.Reflection

	for rows.Next() {
		var reflection models.Reflection
		var outcome string

		scanErr := rows.Scan(
			&reflection.ID,
			&reflection.OwnerID,
			&reflection.FocusSessionID,
			&reflection.IntentSnapshot,
			&outcome,
			&reflection.OutcomeDescription,
			&reflection.MistakePattern,
			&reflection.Insight,
			&reflection.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyRepository.ListReflections").
				Int64("owner_id", ownerID).
				Msg("failed to scan reflection row")
			return nil, fmt.Errorf("failed to scan reflection row: %w", scanErr)
		}

		reflection.Outcome = models.FocusOutcome(outcome)
		reflections = append(reflections, reflection)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rowsErr)
	}

	return reflections, nil
}

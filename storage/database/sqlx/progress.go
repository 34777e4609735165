package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/web3versity/web3versity/core/progress"
)

type completionRow struct {
	UserID      string    `db:"user_id"`
	LessonID    string    `db:"lesson_id"`
	Score       int       `db:"score"`
	CompletedAt time.Time `db:"completed_at"`
}

func (r completionRow) completion() progress.Completion {
	return progress.Completion{
		UserID:      r.UserID,
		LessonID:    r.LessonID,
		Score:       r.Score,
		CompletedAt: r.CompletedAt,
	}
}

type progressRepository struct {
	db *sqlx.DB
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *sqlx.DB) *progressRepository {
	return &progressRepository{db: db}
}

func (repo progressRepository) UpsertCompletion(ctx context.Context, cpl progress.Completion) (progress.Completion, bool, error) {
	// xmax = 0 only on freshly inserted rows, so the created flag is decided
	// in the same statement as the write
	q := `
		INSERT INTO lesson_completion (user_id, lesson_id, score, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, lesson_id) DO UPDATE SET score = EXCLUDED.score, completed_at = EXCLUDED.completed_at
		RETURNING (xmax = 0)`
	var created bool
	err := repo.db.GetContext(ctx, &created, repo.db.Rebind(q), cpl.UserID, cpl.LessonID, cpl.Score, cpl.CompletedAt.UTC())
	if err != nil {
		return progress.Completion{}, false, errors.Wrap(err, "upserting completion")
	}
	return cpl, created, nil
}

func (repo progressRepository) QueryCompletions(ctx context.Context, userID string) ([]progress.Completion, error) {
	var rows []completionRow
	q := `SELECT * FROM lesson_completion WHERE user_id = ? ORDER BY completed_at`
	if err := repo.db.SelectContext(ctx, &rows, repo.db.Rebind(q), userID); err != nil {
		return nil, errors.Wrap(err, "querying completions")
	}
	completions := make([]progress.Completion, 0, len(rows))
	for _, r := range rows {
		completions = append(completions, r.completion())
	}
	return completions, nil
}

func (repo progressRepository) GetXP(ctx context.Context, userID string) (int, error) {
	var xp int
	q := `SELECT COALESCE(SUM(delta), 0) FROM xp_award WHERE user_id = ?`
	if err := repo.db.GetContext(ctx, &xp, repo.db.Rebind(q), userID); err != nil {
		return 0, errors.Wrap(err, "querying xp")
	}
	return xp, nil
}

// AddXP appends an award row; the balance is the sum of all awards, which
// keeps individual grants auditable.
func (repo progressRepository) AddXP(ctx context.Context, userID string, delta int) (int, error) {
	q := `INSERT INTO xp_award (user_id, delta, awarded_at) VALUES (?, ?, ?)`
	if _, err := repo.db.ExecContext(ctx, repo.db.Rebind(q), userID, delta, time.Now().UTC()); err != nil {
		return 0, errors.Wrap(err, "awarding xp")
	}
	return repo.GetXP(ctx, userID)
}

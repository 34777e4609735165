package inmemdb

import (
	"context"
	"sort"

	"github.com/web3versity/web3versity/core/progress"
)

type progressRepository struct {
	db *progressTable
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) *progressRepository {
	return &progressRepository{db: db.progress}
}

func (repo *progressRepository) UpsertCompletion(ctx context.Context, cpl progress.Completion) (progress.Completion, bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	byLesson, ok := repo.db.completions[cpl.UserID]
	if !ok {
		byLesson = make(map[string]*progress.Completion)
		repo.db.completions[cpl.UserID] = byLesson
	}
	_, existed := byLesson[cpl.LessonID]
	byLesson[cpl.LessonID] = &cpl
	return cpl, !existed, nil
}

func (repo *progressRepository) QueryCompletions(ctx context.Context, userID string) ([]progress.Completion, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	byLesson := repo.db.completions[userID]
	completions := make([]progress.Completion, 0, len(byLesson))
	for _, cpl := range byLesson {
		completions = append(completions, *cpl)
	}
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].CompletedAt.Equal(completions[j].CompletedAt) {
			return completions[i].LessonID < completions[j].LessonID
		}
		return completions[i].CompletedAt.Before(completions[j].CompletedAt)
	})
	return completions, nil
}

func (repo *progressRepository) GetXP(ctx context.Context, userID string) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.xp[userID], nil
}

func (repo *progressRepository) AddXP(ctx context.Context, userID string, delta int) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.xp[userID] += delta
	return repo.db.xp[userID], nil
}

package storage

import (
	"context"

	"github.com/uptrace/bun"

	"ads-admin-backend/models"
)

// PageSize is the fixed page size for task listings. The panel paginates
// blindly (no total count), so this constant is part of the API contract.
const PageSize = 10

// TaskStore runs all ad-task SQL. Every method is a single statement, so
// concurrent writers are serialized by the database alone.
type TaskStore struct {
	db *bun.DB
}

func NewTaskStore(db *bun.DB) *TaskStore {
	return &TaskStore{db: db}
}

// ListFilter narrows a task listing. Zero values impose no constraint.
type ListFilter struct {
	Status     string // "sent", "pending" or empty for both
	Advertiser string // exact match on advertiser_username
	Page       int    // 1-based
}

// List returns up to PageSize tasks, newest id first.
func (s *TaskStore) List(ctx context.Context, f ListFilter) ([]models.AdTask, error) {
	if f.Page < 1 {
		f.Page = 1
	}

	tasks := make([]models.AdTask, 0, PageSize)
	q := s.db.NewSelect().Model(&tasks)
	switch f.Status {
	case "sent":
		q = q.Where("sent = ?", true)
	case "pending":
		q = q.Where("sent = ?", false)
	}
	if f.Advertiser != "" {
		q = q.Where("advertiser_username = ?", f.Advertiser)
	}

	err := q.OrderExpr("id DESC").
		Limit(PageSize).
		Offset((f.Page - 1) * PageSize).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create upserts keyed on channel_url. On conflict only chat_id, the bot
// username and sent are overwritten; the rest of the existing row survives.
// The stored row is scanned back into task.
func (s *TaskStore) Create(ctx context.Context, task *models.AdTask) error {
	_, err := s.db.NewInsert().
		Model(task).
		On("CONFLICT (channel_url) DO UPDATE").
		Set("chat_id = EXCLUDED.chat_id").
		Set("advertiser_bot_username = EXCLUDED.advertiser_bot_username").
		Set("sent = EXCLUDED.sent").
		Returning("*").
		Exec(ctx)
	return err
}

// Update sets only the given columns and returns the updated row. Callers
// build fields through models.CoerceFields, so column names are trusted.
func (s *TaskStore) Update(ctx context.Context, id int64, fields map[string]any) (*models.AdTask, error) {
	task := new(models.AdTask)
	q := s.db.NewUpdate().Model(task).Where("id = ?", id)
	for col, val := range fields {
		q = q.Set("? = ?", bun.Ident(col), val)
	}
	if _, err := q.Returning("*").Exec(ctx); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task by id. Deleting a missing id is not an error.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.NewDelete().
		Model((*models.AdTask)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// PendingAdvertisers returns the sorted distinct advertisers that still have
// at least one unsent task. An advertiser drops out the moment their last
// pending task is sent or deleted.
func (s *TaskStore) PendingAdvertisers(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	err := s.db.NewSelect().
		Model((*models.AdTask)(nil)).
		ColumnExpr("DISTINCT advertiser_username").
		Where("sent = ?", false).
		Where("advertiser_username IS NOT NULL").
		OrderExpr("advertiser_username").
		Scan(ctx, &names)
	if err != nil {
		return nil, err
	}
	return names, nil
}

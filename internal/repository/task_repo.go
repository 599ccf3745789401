package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/armelhouessou/gotask/internal/model"
)

// TaskFilter narrows an owner-scoped task listing. Zero values mean "no
// constraint". Date bounds apply to updated_at.
type TaskFilter struct {
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
	Search        string
	IsCompleted   *bool
	OrderBy       string // created_at, updated_at, -created_at, -updated_at
	Offset        int
	Limit         int
}

// TaskRepository handles database operations for Task. Every query is
// pre-filtered by the owning user; a task another user owns looks exactly
// like a task that does not exist.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task
func (r *TaskRepository) Create(task *model.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by id within the owner's scope
func (r *TaskRepository) FindByID(authorID, taskID uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.Where("author_id = ? AND id = ?", authorID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the owner's tasks matching the filter plus the unpaginated
// match count.
func (r *TaskRepository) List(authorID uuid.UUID, filter TaskFilter) ([]model.Task, int64, error) {
	q := r.db.Model(&model.Task{}).Where("author_id = ?", authorID)

	if filter.UpdatedAfter != nil {
		q = q.Where("updated_at >= ?", *filter.UpdatedAfter)
	}
	if filter.UpdatedBefore != nil {
		q = q.Where("updated_at <= ?", *filter.UpdatedBefore)
	}
	if filter.IsCompleted != nil {
		q = q.Where("is_completed = ?", *filter.IsCompleted)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	q = q.Order(resolveOrder(filter))
	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := q.Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, count, nil
}

// resolveOrder picks the ORDER BY clause. An explicit sort key always wins.
// A search without one orders by title; everything else is newest first.
func resolveOrder(filter TaskFilter) string {
	switch filter.OrderBy {
	case "created_at":
		return "created_at ASC"
	case "-created_at":
		return "created_at DESC"
	case "updated_at":
		return "updated_at ASC"
	case "-updated_at":
		return "updated_at DESC"
	}
	if filter.Search != "" {
		return "title ASC"
	}
	return "created_at DESC"
}

// UpdateFields applies a column update to a task within the owner's scope.
// Returns gorm.ErrRecordNotFound if the owner has no such task.
func (r *TaskRepository) UpdateFields(authorID, taskID uuid.UUID, updates map[string]interface{}) error {
	res := r.db.Model(&model.Task{}).
		Where("author_id = ? AND id = ?", authorID, taskID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a task within the owner's scope.
// Returns gorm.ErrRecordNotFound if the owner has no such task.
func (r *TaskRepository) Delete(authorID, taskID uuid.UUID) error {
	res := r.db.Where("author_id = ? AND id = ?", authorID, taskID).Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

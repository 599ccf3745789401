package service

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/armelhouessou/gotask/internal/model"
	"github.com/armelhouessou/gotask/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 20
)

// TaskService exposes owner-scoped task CRUD. The owner is always the
// authenticated caller, never client-supplied, and a task outside the
// caller's scope is indistinguishable from a missing one.
type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create validates and stores a new task for the owner.
func (s *TaskService) Create(ownerID uuid.UUID, req model.CreateTaskRequest) (*model.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		AuthorID:    ownerID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, errors.New("failed to create task")
	}
	return task, nil
}

// Get fetches one task within the owner's scope.
func (s *TaskService) Get(ownerID, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ownerID, taskID)
	if err != nil {
		return nil, ErrNotFound
	}
	return task, nil
}

// List returns the owner's tasks with filters and a page envelope.
func (s *TaskService) List(ownerID uuid.UUID, query model.TaskListQuery) (*model.TaskListResponse, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize

	tasks, count, err := s.tasks.List(ownerID, filter)
	if err != nil {
		return nil, errors.New("failed to list tasks")
	}

	totalPages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	resp := &model.TaskListResponse{
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		Data:        tasks,
	}
	if page < totalPages {
		next := page + 1
		resp.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		resp.PreviousPage = &prev
	}
	if resp.Data == nil {
		resp.Data = []model.Task{}
	}
	return resp, nil
}

// Update applies a full or partial update within the owner's scope.
// Server-controlled fields (id, owner, timestamps) are never taken from the
// request even if present.
func (s *TaskService) Update(ownerID, taskID uuid.UUID, req model.UpdateTaskRequest, partial bool) (*model.Task, error) {
	updates := map[string]interface{}{}

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	} else if !partial {
		return nil, newValidationError("title", "title is required")
	}

	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	} else if !partial {
		updates["description"] = ""
	}

	if req.IsCompleted != nil {
		updates["is_completed"] = *req.IsCompleted
	} else if !partial {
		updates["is_completed"] = false
	}

	if len(updates) == 0 {
		return s.Get(ownerID, taskID)
	}

	if err := s.tasks.UpdateFields(ownerID, taskID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.New("failed to update task")
	}
	return s.Get(ownerID, taskID)
}

// Delete removes a task within the owner's scope.
func (s *TaskService) Delete(ownerID, taskID uuid.UUID) error {
	if err := s.tasks.Delete(ownerID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.New("failed to delete task")
	}
	return nil
}

// ToggleComplete flips the completion flag. Repeated calls alternate it.
func (s *TaskService) ToggleComplete(ownerID, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ownerID, taskID)
	if err != nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{"is_completed": !task.IsCompleted}
	if err := s.tasks.UpdateFields(ownerID, taskID, updates); err != nil {
		return nil, errors.New("failed to update task")
	}
	return s.Get(ownerID, taskID)
}

func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", newValidationError("title", "title cannot be blank")
	}
	if utf8.RuneCountInString(title) > model.TaskTitleMaxLength {
		return "", newValidationError("title", "title cannot exceed 200 characters")
	}
	return title, nil
}

func buildFilter(query model.TaskListQuery) (repository.TaskFilter, error) {
	filter := repository.TaskFilter{
		Search:      strings.TrimSpace(query.Search),
		IsCompleted: query.IsCompleted,
	}

	if query.StartDate != "" {
		t, err := time.Parse(time.RFC3339, query.StartDate)
		if err != nil {
			return filter, newValidationError("start_date", "must be an RFC 3339 date-time")
		}
		filter.UpdatedAfter = &t
	}
	if query.EndDate != "" {
		t, err := time.Parse(time.RFC3339, query.EndDate)
		if err != nil {
			return filter, newValidationError("end_date", "must be an RFC 3339 date-time")
		}
		filter.UpdatedBefore = &t
	}

	switch query.OrderBy {
	case "", "created_at", "-created_at", "updated_at", "-updated_at":
		filter.OrderBy = query.OrderBy
	default:
		return filter, newValidationError("order_by", "unsupported sort key")
	}
	return filter, nil
}

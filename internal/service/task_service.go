package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-manager/internal/apierror"
	"task-manager/internal/model"
	"task-manager/internal/repository"
	"task-manager/internal/validation"
)

// TaskService performs one unit of work per call against the store and
// classifies every failure into an apierror.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// ListTasks returns all tasks with their category, newest first.
func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListWithCategory(ctx)
	if err != nil {
		return nil, storeFailure("Failed to retrieve tasks", err)
	}
	return tasks, nil
}

// CreateTask inserts an incomplete task after checking that its category
// exists.
func (s *TaskService) CreateTask(ctx context.Context, input validation.CreateTaskInput) (*model.Task, error) {
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validation("Category validation failed",
				fmt.Sprintf("Category with ID %d does not exist", input.CategoryID))
		}
		return nil, storeFailure("Failed to create task", err)
	}

	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Completed:   false,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, storeFailure("Failed to create task", err)
	}
	return &task, nil
}

// FindTaskByID looks a task up by primary key.
func (s *TaskService) FindTaskByID(ctx context.Context, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	switch {
	case err == nil:
		return task, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apierror.NotFound("Task not found",
			fmt.Sprintf("Task with ID %d does not exist", taskID))
	default:
		return nil, storeFailure("Failed to find task", err)
	}
}

// UpdateTask applies the completion flag to an existing task.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint, input validation.UpdateTaskInput) (*model.Task, error) {
	task, err := s.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = input.Completed
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, storeFailure("Failed to update task", err)
	}
	return task, nil
}

// DeleteTask removes an existing task.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint) error {
	if _, err := s.FindTaskByID(ctx, taskID); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return storeFailure("Failed to delete task", err)
	}
	return nil
}

// storeFailure turns a store error into a database failure. Constraint
// violations are left for apierror.Translate to classify at the boundary.
func storeFailure(message string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return err
	}
	return apierror.Database(message, err.Error())
}

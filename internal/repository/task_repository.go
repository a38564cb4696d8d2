package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-manager/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindByTitle(ctx context.Context, title string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindInProject returns the task only if it is assigned to the given project.
func (r *TaskRepository) FindInProject(ctx context.Context, projectID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("project_id = ? AND id = ?", projectID, taskID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) SetCompleted(ctx context.Context, task *model.Task, completed bool) error {
	if err := r.db.WithContext(ctx).Model(task).Update("completed", completed).Error; err != nil {
		return fmt.Errorf("set task completion: %w", err)
	}
	task.Completed = completed
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

package service

import (
	"context"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      *uint  `json:"user_id"`
	ProjectID   *uint  `json:"project_id"`
}

// TaskPatch holds a partial task update. An explicit null project_id unassigns the task.
type TaskPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Completed   *bool          `json:"completed"`
	ProjectID   Nullable[uint] `json:"project_id"`
}

func (p TaskPatch) Apply(task *model.Task) {
	applyString(&task.Title, p.Title)
	applyString(&task.Description, p.Description)
	if p.Completed != nil {
		task.Completed = *p.Completed
	}
	p.ProjectID.apply(&task.ProjectID)
}

// TaskService wraps task-related logic.
type TaskService struct {
	taskRepo    *repository.TaskRepository
	projectRepo *repository.ProjectRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, projectRepo *repository.ProjectRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, projectRepo: projectRepo}
}

// CreateTask stores a new task. User and project references are checked by the store.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	if input.Title == "" || input.Description == "" {
		return nil, validationError("All fields (title, description) are required.")
	}

	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
		ProjectID:   input.ProjectID,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.ListAll(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError("Task", err)
	}
	return task, nil
}

func (s *TaskService) GetTaskByTitle(ctx context.Context, title string) (*model.Task, error) {
	task, err := s.taskRepo.FindByTitle(ctx, title)
	if err != nil {
		return nil, lookupError("Task", err)
	}
	return task, nil
}

// ListProjectTasks returns the tasks assigned to a project, or ErrNotFound if the project does not exist.
func (s *TaskService) ListProjectTasks(ctx context.Context, projectID uint) ([]model.Task, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, lookupError("Project", err)
	}
	return s.taskRepo.ListByProject(ctx, projectID)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, patch TaskPatch) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(task)
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if _, err := s.GetTask(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

// ToggleCompletion inverts the completed flag of a task that belongs to the given project.
func (s *TaskService) ToggleCompletion(ctx context.Context, projectID, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindInProject(ctx, projectID, taskID)
	if err != nil {
		return nil, lookupError("Task", err)
	}
	if err := s.taskRepo.SetCompleted(ctx, task, !task.Completed); err != nil {
		return nil, err
	}
	return task, nil
}

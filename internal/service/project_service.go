package service

import (
	"context"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

type ProjectInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ProjectPatch holds a partial project update. An explicit null description clears it.
type ProjectPatch struct {
	Name        *string          `json:"name"`
	Description Nullable[string] `json:"description"`
}

func (p ProjectPatch) Apply(project *model.Project) {
	applyString(&project.Name, p.Name)
	p.Description.apply(&project.Description)
}

// ProjectService provides project CRUD.
type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) CreateProject(ctx context.Context, input ProjectInput) (*model.Project, error) {
	if input.Name == "" {
		return nil, validationError("Project name is required.")
	}

	project := model.Project{Name: input.Name, Description: input.Description}
	if err := s.repo.Create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.repo.ListAll(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("Project", err)
	}
	return project, nil
}

func (s *ProjectService) GetProjectByName(ctx context.Context, name string) (*model.Project, error) {
	project, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, lookupError("Project", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint, patch ProjectPatch) (*model.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(project)
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project; its tasks are kept without a project.
func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if _, err := s.GetProject(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-manager/internal/model"
)

// ProjectRepository manages projects.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) ListAll(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Save(ctx context.Context, project *model.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project. Its tasks stay and become unassigned.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).Where("project_id = ?", id).
			Update("project_id", nil).Error; err != nil {
			return fmt.Errorf("unassign project tasks: %w", err)
		}
		if err := tx.Delete(&model.Project{}, id).Error; err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}

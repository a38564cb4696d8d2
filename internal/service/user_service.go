package service

import (
	"context"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// UserInput represents data required to create a user.
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPatch holds the fields of a partial user update; nil fields are left untouched.
type UserPatch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Apply copies every supplied field onto user.
func (p UserPatch) Apply(user *model.User) {
	applyString(&user.Username, p.Username)
	applyString(&user.Email, p.Email)
	applyString(&user.Password, p.Password)
}

// UserService wraps user-related logic.
//
// Passwords are persisted in plaintext; hashing must be added before any real deployment.
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) CreateUser(ctx context.Context, input UserInput) (*model.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, validationError("All fields (username, email, password) are required.")
	}

	user := model.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError("User", err)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, lookupError("User", err)
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, patch UserPatch) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(user)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and every task assigned to them.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

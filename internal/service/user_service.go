package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/blacklabelhq/scheduler-api/internal/repository"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id string) (*models.User, error)
	RemoveUser(ctx context.Context, userID string) error
}

type userService struct {
	u repository.UserRepository
}

func NewUserService(u repository.UserRepository) UserService {
	return &userService{
		u: u,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id string) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user info")
	}

	if !isExist {
		err = errors.New("user not found")
		slog.Info(err.Error())
		return nil, fmt.Errorf("user doesn't exist")
	}

	return user, nil
}

func (s *userService) RemoveUser(ctx context.Context, userID string) error {
	err := s.u.Remove(ctx, userID)
	if err != nil {
		return err
	}
	return nil
}

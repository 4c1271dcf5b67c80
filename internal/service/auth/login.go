package auth

import (
	"context"
	"errors"

	"dice_backend/internal/model"
	"dice_backend/internal/repository"
	"dice_backend/pkg/pass"
)

func (s *serv) Login(ctx context.Context, user *model.User) (*model.AuthData, error) {
	stored, err := s.userRepo.GetUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pass.VerifyPassword(stored.Password, user.Password) {
		return nil, model.ErrInvalidCredentials
	}

	return s.openSession(ctx, stored)
}

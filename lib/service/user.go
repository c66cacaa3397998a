package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/finhub/finhub.go/db/models"
	"github.com/finhub/finhub.go/lib/security"
	"github.com/finhub/finhub.go/lib/tokens"
)

// ErrEmailTaken is returned by CreateUser when the email is already
// registered.
var ErrEmailTaken = errors.New("an account with this email already exists")

func (svc *FinhubService) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	if svc.Config.MinPasswordEntropy > 0 {
		entropy := passwordvalidator.GetEntropy(password)
		if entropy < float64(svc.Config.MinPasswordEntropy) {
			return nil, fmt.Errorf("password entropy is too low (%f), required is %d", entropy, svc.Config.MinPasswordEntropy)
		}
	}

	if _, err := svc.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// only the hashed password is ever stored
	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if _, err := svc.DB.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (svc *FinhubService) FindUser(ctx context.Context, userId int64) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("id = ?", userId).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (svc *FinhubService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GenerateToken authenticates with email and password, or with a previously
// issued refresh token, and returns a fresh access/refresh token pair.
func (svc *FinhubService) GenerateToken(ctx context.Context, email, password, inRefreshToken string) (accessToken, refreshToken string, err error) {
	var userID int64

	switch {
	case email != "" || password != "":
		user, err := svc.FindUserByEmail(ctx, email)
		if err != nil {
			return "", "", fmt.Errorf("bad auth")
		}
		if !security.VerifyPassword(user.Password, password) {
			return "", "", fmt.Errorf("bad auth")
		}
		userID = user.ID
	case inRefreshToken != "":
		id, isRefresh, err := tokens.ParseToken(svc.Config.JWTSecret, inRefreshToken)
		if err != nil || !isRefresh {
			return "", "", fmt.Errorf("bad auth")
		}
		userID = id
	default:
		return "", "", fmt.Errorf("email and password or refresh token is required")
	}

	accessToken, err = tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, userID)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = tokens.GenerateRefreshToken(svc.Config.JWTSecret, svc.Config.JWTRefreshTokenExpiry, userID)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

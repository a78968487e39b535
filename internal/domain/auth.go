package domain

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/internal/model"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/authenticator"
	"github.com/timecraft-lab/backend/pkg/crypto"
	"github.com/timecraft-lab/backend/pkg/errorx"
	"github.com/timecraft-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const minPasswordLength = 8

type AuthDomain interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Me(ctx context.Context, req *model.MeRequest) (*model.MeResponse, error)
}

type authDomain struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tokenEngine authenticator.TokenEngine[model.AccessToken]
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	tokenEngine authenticator.TokenEngine[model.AccessToken],
) AuthDomain {
	return &authDomain{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenEngine: tokenEngine,
	}
}

func (d *authDomain) Signup(
	ctx context.Context, req *model.SignupRequest,
) (*model.SignupResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid email address")
	}

	if len(req.Password) < minPasswordLength {
		return nil, errorx.New(errorx.BadRequest,
			"Password must be at least %d characters", minPasswordLength)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, errorx.New(errorx.BadRequest, "Username is required")
	}

	if _, err := d.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check existing email: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.profileRepo.GetByUsername(ctx, username); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Username is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check existing username: %v", err)
		return nil, errorx.Unknown
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base: entity.Base{
			ID:      uuid.NewString(),
			ShortID: crypto.GenerateShortID(),
		},
		Email:        email,
		PasswordHash: hashed,
	}
	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	numberOfWorkDays := req.NumberOfWorkDays
	if numberOfWorkDays <= 0 || numberOfWorkDays > 7 {
		numberOfWorkDays = 5
	}

	profile := &entity.Profile{
		Base: entity.Base{
			ID:      uuid.NewString(),
			ShortID: crypto.GenerateShortID(),
		},
		UserID:              user.ID,
		FullName:            req.FullName,
		Username:            username,
		WeeklyWorkHoursGoal: req.WeeklyWorkHoursGoal,
		NumberOfWorkDays:    numberOfWorkDays,
	}
	if err := d.profileRepo.Create(ctx, profile); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SignupResponse{User: model.ConvertUser(user, profile)}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := d.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
	}

	token, err := d.tokenEngine.Generate(user.ID, model.AccessToken{
		ID:    user.ID,
		Email: user.Email,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	profile, err := d.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		Token: token,
		User:  model.ConvertUser(user, profile),
	}, nil
}

func (d *authDomain) Me(
	ctx context.Context, req *model.MeRequest,
) (*model.MeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	profile, err := d.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.MeResponse{User: model.ConvertUser(user, profile)}, nil
}

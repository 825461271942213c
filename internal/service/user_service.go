package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/core/auth"
	"github.com/RobbertNaessens/webapp-backend/internal/core/config"
	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/pkg/utils"
)

// ErrInvalidCredentials is returned on a failed login; the transport layer
// maps it to 401 without revealing whether the email exists.
var ErrInvalidCredentials = errors.New("the given email and password do not match")

// Session is the response to a successful login or registration.
type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

type UserService struct {
	repo       domain.UserRepository
	jwter      *auth.JWTer
	log        *zap.Logger
	pagination config.Pagination
}

func NewUserService(repo domain.UserRepository, jwter *auth.JWTer, log *zap.Logger, pagination config.Pagination) *UserService {
	return &UserService{repo: repo, jwter: jwter, log: log, pagination: pagination}
}

func (s *UserService) GetAll(ctx context.Context, limit, offset *int) (*List[domain.User], error) {
	l, o := s.pagination.Limit, s.pagination.Offset
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	s.log.Debug("fetching all users", zap.Int("limit", l), zap.Int("offset", o))

	data, err := s.repo.FindAll(ctx, l, o)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.FindCount(ctx)
	if err != nil {
		return nil, err
	}
	return &List[domain.User]{Data: data, Count: count, Limit: l, Offset: o}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.log.Debug("fetching user", zap.String("id", id))
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound(map[string]any{"id": id}, "There is no user with id %s", id)
	}
	return u, nil
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	s.log.Debug("registering user", zap.String("email", email))
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Roles:        domain.Roles{domain.RoleUser},
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.makeSession(u)
}

func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	s.log.Debug("logging in user", zap.String("email", email))
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Banned || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.makeSession(u)
}

func (s *UserService) UpdateByID(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error) {
	s.log.Debug("updating user", zap.String("id", id))
	return s.repo.UpdateByID(ctx, id, fields)
}

func (s *UserService) DeleteByID(ctx context.Context, id string) error {
	s.log.Debug("deleting user", zap.String("id", id))
	_, err := s.repo.DeleteByID(ctx, id)
	return err
}

func (s *UserService) makeSession(u *domain.User) (*Session, error) {
	token, err := s.jwter.Issue(u.ID, u.Roles)
	if err != nil {
		return nil, err
	}
	return &Session{User: *u, Token: token}, nil
}

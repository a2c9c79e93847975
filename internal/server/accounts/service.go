package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
)

// Session is what a client receives after logging in.
type Session struct {
	AccessToken string
	Claims      auth.Claims
}

// Service handles registration and login and mints access tokens.
type Service struct {
	directory                   *Directory
	signer                      *auth.Signer
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

func NewService(d *Directory, s *auth.Signer, validity time.Duration, l logging.Logger) *Service {
	return &Service{
		directory:                   d,
		signer:                      s,
		accessTokenValidityDuration: validity,
		logger:                      l.With("module", "accounts"),
	}
}

// Register creates the account and logs it in.
func (s *Service) Register(ctx context.Context, email, displayName string, password []byte) (*Session, error) {
	acc, err := s.directory.Register(ctx, email, displayName, password)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account registered", "subject_id", acc.ID)
	return s.issue(ctx, acc)
}

// Login checks credentials and returns a fresh access token.
func (s *Service) Login(ctx context.Context, email string, password []byte) (*Session, error) {
	if email == "" || len(password) == 0 {
		return nil, common.ErrorValidation
	}

	acc, err := s.directory.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Warn(ctx, "login rejected")
		}
		return nil, err
	}

	return s.issue(ctx, acc)
}

func (s *Service) issue(ctx context.Context, acc Account) (*Session, error) {
	token, claims, err := s.signer.Issue(acc.ID, acc.DisplayName, s.accessTokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return nil, common.ErrorInternal
	}
	return &Session{AccessToken: token, Claims: claims}, nil
}

package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/scholarship-portal/internal/models"
	"github.com/noah-isme/scholarship-portal/pkg/config"
	appErrors "github.com/noah-isme/scholarship-portal/pkg/errors"
)

// AuthService owns the process-wide session state. There is exactly
// one fixed admin credential pair; everyone else is an anonymous
// student. Sessions never outlive the process: every start begins
// anonymous.
type AuthService struct {
	username     string
	passwordHash []byte
	session      models.Session
	notifier     Notifier
	logger       *zap.Logger
}

// NewAuthService hashes the configured admin password once so the
// plaintext is not kept around for the lifetime of the process.
func NewAuthService(cfg config.AdminConfig, notifier Notifier, logger *zap.Logger) (*AuthService, error) {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "hash admin password")
	}
	return &AuthService{
		username:     cfg.Username,
		passwordHash: hash,
		session:      models.Session{Role: models.RoleStudent},
		notifier:     notifier,
		logger:       logger,
	}, nil
}

// Login checks the credential pair and, on success, moves the session
// to authenticated-admin and issues a session token. Failure keeps the
// session anonymous and surfaces an inline error; there is no lockout.
func (s *AuthService) Login(username, password string) (models.Session, error) {
	if username != s.username ||
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		s.logger.Warn("admin login failed", zap.String("username", username))
		return s.session, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	s.session = models.Session{
		Role:     models.RoleAdmin,
		Username: username,
		Token:    uuid.NewString(),
	}
	s.logger.Info("admin login", zap.String("username", username))
	s.notifier.Success("Login successful! Welcome to the admin panel")
	return s.session, nil
}

// Logout unconditionally resets the session to anonymous student.
func (s *AuthService) Logout() {
	s.session = models.Session{Role: models.RoleStudent}
	s.logger.Info("admin logout")
	s.notifier.Info("Logged out successfully")
}

// Session returns the current session state.
func (s *AuthService) Session() models.Session {
	return s.session
}

// IsAdmin reports whether the viewer is authenticated as admin.
func (s *AuthService) IsAdmin() bool {
	return s.session.IsAdmin()
}

// RequireAdmin gates admin-only operations. The presentation layer
// reacts to ErrForbidden by routing to the login prompt instead of
// failing silently.
func (s *AuthService) RequireAdmin() error {
	if !s.IsAdmin() {
		return appErrors.Clone(appErrors.ErrForbidden, "")
	}
	return nil
}

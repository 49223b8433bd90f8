package services

import (
	"agrodirect/models"
	"agrodirect/repositories"
	"agrodirect/utils"
	"time"
)

type AuthService struct {
	users     *repositories.UserRepository
	sessions  *SessionStore
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users *repositories.UserRepository, sessions *SessionStore, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByPhone(req.Phone)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return s.issue(s.sessions.Create(user))
}

// Guest opens a session without a user; it can browse and buy but sees no
// role-gated screens.
func (s *AuthService) Guest() (*models.LoginResponse, error) {
	return s.issue(s.sessions.Create(nil))
}

func (s *AuthService) issue(session *Session) (*models.LoginResponse, error) {
	userID, role := "", ""
	if user := session.User(); user != nil {
		userID, role = user.ID, string(user.Role)
	}

	token, err := utils.GenerateToken(s.jwtSecret, s.jwtExpiry, session.ID, userID, role)
	if err != nil {
		s.sessions.Delete(session.ID)
		return nil, err
	}

	return &models.LoginResponse{
		Token:   token,
		Session: session.Snapshot(),
	}, nil
}

func (s *AuthService) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}

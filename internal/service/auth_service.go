package service

import (
	"errors"
	"time"

	"pathwise_backend/internal/config"
	"pathwise_backend/internal/model"
	"pathwise_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Store UserStore
	Cfg   *config.Config
}

func NewAuthService(store UserStore, cfg *config.Config) *AuthService {
	return &AuthService{Store: store, Cfg: cfg}
}

// Register creates a new account with a bcrypt-hashed password and empty
// learning state.
func (s *AuthService) Register(name, email, password string) (*model.UserAccount, error) {
	_, err := s.Store.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.UserAccount{
		Email:           email,
		Name:            name,
		Password:        string(hashed),
		CreatedAt:       time.Now(),
		Profile:         newJSON(model.UserProfile{Achievements: []string{}}),
		QuizHistory:     newJSON([]model.QuizRecord{}),
		RoadmapProgress: newJSON(map[string]model.RoadmapProgressEntry{}),
		LoginHistory:    newJSON([]model.LoginRecord{}),
	}
	if err := s.Store.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and returns a signed token plus the account.
func (s *AuthService) Login(email, password string) (string, *model.UserAccount, error) {
	account, err := s.Store.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(account, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// GetProfile returns the account for display; the password hash never
// leaves the model's json:"-" field.
func (s *AuthService) GetProfile(email string) (*model.UserAccount, error) {
	return s.Store.FindByEmail(email)
}

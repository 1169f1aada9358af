package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
)

type AuthService struct {
	UserRepo  repositories.UserRepository
	JWTSecret []byte
	TokenTTL  time.Duration
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// Register creates the account and returns the user plus a fresh token,
// so clients are logged in right after sign-up.
func (s AuthService) Register(in RegisterInput) (models.User, string, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" {
		return models.User{}, "", domain.ValidationError{Field: "username", Msg: "must not be empty"}
	}
	if in.Email == "" {
		return models.User{}, "", domain.ValidationError{Field: "email", Msg: "must not be empty"}
	}
	if len(in.Password) < 6 {
		return models.User{}, "", domain.ValidationError{Field: "password", Msg: "must be at least 6 characters"}
	}

	exists, err := s.UserRepo.ExistsByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "failed to check user", Err: err}
	}
	if exists {
		return models.User{}, "", domain.ValidationError{Field: "username", Msg: "username or email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	user := models.User{
		Name:     strings.TrimSpace(in.Name),
		Username: in.Username,
		Email:    in.Email,
		Phone:    strings.TrimSpace(in.Phone),
	}
	id, err := s.UserRepo.Create(user, string(hash))
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "failed to save user", Err: err}
	}
	user.ID = id

	token, err := s.issueToken(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login checks credentials and returns the user plus a bearer token.
// Username and email are interchangeable, matching the lookup query.
func (s AuthService) Login(username, password string) (models.User, string, error) {
	user, hash, err := s.UserRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", domain.UnauthorizedError{Msg: "invalid credentials"}
		}
		return models.User{}, "", domain.InternalError{Msg: "failed to query user", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return models.User{}, "", domain.UnauthorizedError{Msg: "invalid credentials"}
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s AuthService) issueToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl()).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, nil
}

package service

import (
	"errors"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/cliffordwilliam/ifabula-library/internal/models"
	"github.com/cliffordwilliam/ifabula-library/internal/repo"
	"github.com/cliffordwilliam/ifabula-library/pkg/token"
)

type AuthService interface {
	Register(email, password string) error
	Login(email, password string) (*models.User, string, error)
}

type authService struct {
	users  repo.UserRepo
	tokens *token.Service
}

func NewAuthService(u repo.UserRepo, t *token.Service) AuthService {
	return &authService{users: u, tokens: t}
}

var emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ValidateCredentials applies the registration rules: a local@domain.tld
// shaped email, and a password of at least 8 alphanumeric characters
// containing at least one uppercase letter. The first failing rule wins.
func ValidateCredentials(email, password string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	if !validPassword(password) {
		return ErrInvalidPassword
	}
	return nil
}

func validPassword(p string) bool {
	// Length is counted in characters, not bytes.
	if utf8.RuneCountInString(p) < 8 {
		return false
	}
	hasUpper := false
	for _, r := range p {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func (a *authService) Register(email, password string) error {
	if err := ValidateCredentials(email, password); err != nil {
		return err
	}
	// Check-then-insert: two concurrent registrations for the same
	// email can both pass this lookup. Known limitation.
	_, err := a.users.GetByEmail(email)
	if err == nil {
		return ErrEmailExists
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	_, err = a.users.Create(models.User{
		Email:    email,
		Password: password,
		Book:     "",
		Status:   models.StatusRegular,
	})
	if errors.Is(err, repo.ErrNoInsertedID) {
		return ErrRegisterFailed
	}
	return err
}

func (a *authService) Login(email, password string) (*models.User, string, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, "", err
	}
	u, err := a.users.GetByEmail(email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", err
	}
	// Passwords are stored and compared in plaintext.
	if u.Password != password {
		return nil, "", ErrWrongPassword
	}
	tok, err := a.tokens.Issue(u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/strandapp/strand/internal/models"
	"github.com/strandapp/strand/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var ErrRecoveryCodeNotFound = errors.New("recovery code not found")

const recoveryCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	UpdateRecoveryCodeHash(userID uint, recoveryHash string) error
	ListWithRecoveryCodeHash() ([]models.User, error)
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) SaveUser(user *models.User) error {
	return service.users.Save(user)
}

func (service *AuthService) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return service.users.UpdatePassword(userID, passwordHash, mustChangePassword)
}

// GenerateRecoveryCode mints a STRAND-XXXX-XXXX-XXXX one-time code, stores
// its bcrypt hash, and returns the plain code, shown to the user exactly
// once. The alphabet omits 0/O/1/I to keep codes dictation-safe.
func (service *AuthService) GenerateRecoveryCode(userID uint) (string, error) {
	parts := make([]string, 0, 3)
	for index := 0; index < 3; index++ {
		part, err := security.RandomString(4, recoveryCodeAlphabet)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	code := fmt.Sprintf("STRAND-%s", strings.Join(parts, "-"))

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := service.users.UpdateRecoveryCodeHash(userID, string(hash)); err != nil {
		return "", err
	}
	return code, nil
}

func (service *AuthService) FindUserByRecoveryCode(code string) (*models.User, error) {
	users, err := service.users.ListWithRecoveryCodeHash()
	if err != nil {
		return nil, err
	}

	for index := range users {
		hash := strings.TrimSpace(users[index].RecoveryCodeHash)
		if hash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			return &users[index], nil
		}
	}
	return nil, ErrRecoveryCodeNotFound
}

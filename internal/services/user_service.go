package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/weekmark/internal/models"
	"github.com/terraincognita07/weekmark/internal/store"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMissingUserField = errors.New("missing required user field")
)

// StoreSelector narrows the storage selector to the single question the
// services ask: which backend is live right now.
type StoreSelector interface {
	Active() store.RecordStore
}

type UserInput struct {
	UID      string
	Name     string
	Email    string
	PhotoURL string
}

type UserService struct {
	stores StoreSelector
}

func NewUserService(stores StoreSelector) *UserService {
	return &UserService{stores: stores}
}

// Upsert creates the user on first call for a uid and overwrites
// name/email/photoURL on every later call. CreatedAt survives updates;
// UpdatedAt is refreshed by the backend on every write.
func (service *UserService) Upsert(input UserInput) (models.User, error) {
	if err := validateUserInput(input); err != nil {
		return models.User{}, err
	}

	backend := service.stores.Active()

	existing, found, err := backend.FindUserByUID(input.UID)
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	if found {
		existing.Name = input.Name
		existing.Email = input.Email
		existing.PhotoURL = input.PhotoURL
		if err := backend.SaveUser(&existing); err != nil {
			return models.User{}, fmt.Errorf("update user: %w", err)
		}
		return existing, nil
	}

	user := models.User{
		UID:      input.UID,
		Name:     input.Name,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
	}
	if err := backend.CreateUser(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (service *UserService) Get(uid string) (models.User, error) {
	user, found, err := service.stores.Active().FindUserByUID(uid)
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func validateUserInput(input UserInput) error {
	if strings.TrimSpace(input.UID) == "" {
		return fmt.Errorf("%w: uid", ErrMissingUserField)
	}
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingUserField)
	}
	if strings.TrimSpace(input.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingUserField)
	}
	return nil
}

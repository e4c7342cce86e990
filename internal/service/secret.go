package service

import (
	"context"
	"errors"
	"time"

	"github.com/lockbox/lockbox-go/internal/crypto"
	"github.com/lockbox/lockbox-go/internal/model"
	"github.com/lockbox/lockbox-go/internal/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrSecretValueRequired = errors.New("password is required")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrSecretNotFound      = errors.New("secret not found")
)

// SecretService handles secret business logic: validation, encryption of the
// secret value at rest, and owner-scoped CRUD.
type SecretService struct {
	repo         *repository.SecretRepository
	encryptor    *crypto.Encryptor
	storeTimeout time.Duration
}

// NewSecretService creates a new SecretService.
func NewSecretService(repo *repository.SecretRepository, enc *crypto.Encryptor, storeTimeout time.Duration) *SecretService {
	return &SecretService{
		repo:         repo,
		encryptor:    enc,
		storeTimeout: storeTimeout,
	}
}

// validate normalizes a request in place and returns the first violation.
func validate(req *model.SecretRequest) error {
	if req.Title == "" {
		return ErrTitleRequired
	}
	if req.Password == "" {
		return ErrSecretValueRequired
	}
	if req.Category == "" {
		req.Category = model.CategoryWebsite
	}
	if !model.ValidCategory(req.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// Create validates, encrypts the secret value, and persists a new secret
// owned by userID.
func (s *SecretService) Create(ctx context.Context, userID int64, req model.SecretRequest) (model.SecretResponse, error) {
	if err := validate(&req); err != nil {
		return model.SecretResponse{}, err
	}

	ciphertext, err := s.encryptor.Encrypt(req.Password)
	if err != nil {
		return model.SecretResponse{}, err
	}

	secret := model.Secret{
		UserID:   userID,
		Title:    req.Title,
		Username: req.Username,
		Password: ciphertext,
		Website:  req.Website,
		Notes:    req.Notes,
		Category: req.Category,
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, &secret); err != nil {
		return model.SecretResponse{}, storeErr(err)
	}

	// Echo the plaintext back rather than decrypting the stored row.
	secret.Password = req.Password
	return toResponse(secret), nil
}

// List returns every secret owned by userID, newest first, with values
// decrypted. Returns an empty slice, never nil, when the vault is empty.
func (s *SecretService) List(ctx context.Context, userID int64) ([]model.SecretResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	secrets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]model.SecretResponse, 0, len(secrets))
	for _, secret := range secrets {
		plaintext, err := s.encryptor.Decrypt(secret.Password)
		if err != nil {
			return nil, err
		}
		secret.Password = plaintext
		out = append(out, toResponse(secret))
	}

	return out, nil
}

// Update replaces the mutable fields of a secret. A secret that does not
// exist and a secret owned by someone else fail identically.
func (s *SecretService) Update(ctx context.Context, userID, secretID int64, req model.SecretRequest) (model.SecretResponse, error) {
	if err := validate(&req); err != nil {
		return model.SecretResponse{}, err
	}

	ciphertext, err := s.encryptor.Encrypt(req.Password)
	if err != nil {
		return model.SecretResponse{}, err
	}

	secret := model.Secret{
		ID:       secretID,
		UserID:   userID,
		Title:    req.Title,
		Username: req.Username,
		Password: ciphertext,
		Website:  req.Website,
		Notes:    req.Notes,
		Category: req.Category,
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.Update(ctx, &secret); err != nil {
		if errors.Is(err, repository.ErrSecretNotFound) {
			return model.SecretResponse{}, ErrSecretNotFound
		}
		return model.SecretResponse{}, storeErr(err)
	}

	// Read the stored row back so the response reflects what was actually
	// persisted, including the immutable created_at.
	stored, err := s.repo.GetByID(ctx, userID, secretID)
	if err != nil {
		if errors.Is(err, repository.ErrSecretNotFound) {
			return model.SecretResponse{}, ErrSecretNotFound
		}
		return model.SecretResponse{}, storeErr(err)
	}

	stored.Password = req.Password
	return toResponse(*stored), nil
}

// Delete removes a secret permanently. Deleting twice yields ErrSecretNotFound
// the second time.
func (s *SecretService) Delete(ctx context.Context, userID, secretID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	err := s.repo.Delete(ctx, userID, secretID)
	if errors.Is(err, repository.ErrSecretNotFound) {
		return ErrSecretNotFound
	}
	return storeErr(err)
}

func toResponse(s model.Secret) model.SecretResponse {
	return model.SecretResponse{
		ID:        s.ID,
		Title:     s.Title,
		Username:  s.Username,
		Password:  s.Password,
		Website:   s.Website,
		Notes:     s.Notes,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
	}
}

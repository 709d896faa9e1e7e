package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/models"
)

// credentialService is the concrete implementation of [CredentialService].
// It composes the envelope cipher, the strength scorer, and the credential
// repository; the plaintext secret lives only on the stack of a single call.
type credentialService struct {
	credentialRepository store.CredentialRepository

	cipher crypto.EnvelopeCipher
	scorer strength.Scorer

	logger *logger.Logger
}

// NewCredentialService constructs a [CredentialService].
func NewCredentialService(credentialRepository store.CredentialRepository, cipher crypto.EnvelopeCipher, scorer strength.Scorer, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		cipher:               cipher,
		scorer:               scorer,
		logger:               logger,
	}
}

// Create seals input.Secret under the principal's key and persists a new
// record. The strength score is computed from the plaintext before sealing;
// a scorer failure fails the whole operation (never silently swallowed).
func (c *credentialService) Create(ctx context.Context, principal models.Principal, input CredentialInput) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if err := validateInput(input); err != nil {
		return models.Credential{}, err
	}

	score, sealed, err := c.scoreAndSeal(input.Secret, principal.Key)
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("sealing new credential failed")
		return models.Credential{}, err
	}

	saved, err := c.credentialRepository.Save(ctx, models.Credential{
		UserID:            principal.UserID,
		Website:           input.Website,
		Username:          input.Username,
		EncryptedPassword: sealed,
		Category:          input.Category,
		Strength:          score,
	})
	if err != nil {
		return models.Credential{}, fmt.Errorf("saving credential ended with error: %w", err)
	}

	log.Info().Int64("user_id", principal.UserID).Int64("credential_id", saved.CredentialID).Msg("credential created")
	return saved, nil
}

// List returns all records owned by the principal, in storage order.
func (c *credentialService) List(ctx context.Context, principal models.Principal) ([]models.Credential, error) {
	return c.credentialRepository.GetAll(ctx, principal.UserID)
}

// GetByID returns one record scoped to the principal.
func (c *credentialService) GetByID(ctx context.Context, principal models.Principal, id int64) (models.Credential, error) {
	return c.credentialRepository.GetByID(ctx, id, principal.UserID)
}

// Update re-seals the secret with a fresh salt and IV even when the secret
// string is unchanged — there is no diffing — and recomputes the strength
// score.
func (c *credentialService) Update(ctx context.Context, principal models.Principal, id int64, input CredentialInput) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if err := validateInput(input); err != nil {
		return models.Credential{}, err
	}

	score, sealed, err := c.scoreAndSeal(input.Secret, principal.Key)
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("re-sealing credential failed")
		return models.Credential{}, err
	}

	updated, err := c.credentialRepository.Update(ctx, models.Credential{
		CredentialID:      id,
		UserID:            principal.UserID,
		Website:           input.Website,
		Username:          input.Username,
		EncryptedPassword: sealed,
		Category:          input.Category,
		Strength:          score,
	})
	if err != nil {
		return models.Credential{}, err
	}

	return updated, nil
}

// Delete removes the record. Absent and foreign records are an idempotent
// no-op.
func (c *credentialService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	return c.credentialRepository.Delete(ctx, id, principal.UserID)
}

// Decrypt opens a sealed blob with the principal's key. Crypto errors pass
// through unwrapped so the transport layer can map them precisely.
func (c *credentialService) Decrypt(ctx context.Context, principal models.Principal, sealedBlob string) (string, error) {
	if sealedBlob == "" {
		return "", ErrInvalidDataProvided
	}
	return c.cipher.Open(sealedBlob, principal.Key)
}

func (c *credentialService) scoreAndSeal(secret string, key []byte) (*int, string, error) {
	raw, err := c.scorer.Score(secret)
	if err != nil {
		return nil, "", err
	}

	sealed, err := c.cipher.Seal(secret, key)
	if err != nil {
		return nil, "", fmt.Errorf("sealing secret failed: %w", err)
	}

	return strength.StoredScore(raw), sealed, nil
}

func validateInput(input CredentialInput) error {
	if input.Website == "" || input.Username == "" || input.Secret == "" {
		return ErrInvalidDataProvided
	}
	return nil
}

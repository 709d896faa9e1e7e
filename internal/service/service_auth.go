package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/crypto/bcrypt"
)

// minMasterPasswordLen is the minimum accepted master-password length at
// registration.
const minMasterPasswordLen = 8

// keyLen is the expected byte length of the data-encryption key carried by
// a session.
const keyLen = 32

// authService is the concrete implementation of [AuthService]. It verifies
// master passwords with bcrypt, derives data-encryption keys through the
// bounded derivation pool, and owns the session lifecycle.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	keyDeriver crypto.KeyDeriver

	// derivationPool bounds concurrent key derivations so a burst of logins
	// cannot starve the rest of the server.
	derivationPool *workers.Pool

	// sessionDuration controls how long a session and its carried key
	// remain valid after login.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, keyDeriver crypto.KeyDeriver, pool *workers.Pool, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		keyDeriver:        keyDeriver,
		derivationPool:    pool,
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// Register creates a new user account and its first session.
//
// The master password is bcrypt-hashed for later verification and, entirely
// separately, fed through the key-derivation function with a freshly
// generated persistent salt to produce the data-encryption key. The salt is
// stored on the user row so every future login re-derives the same key.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrPasswordTooShort if the password is below the minimum length.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, email, masterPassword string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if email == "" || masterPassword == "" {
		log.Error().Msg("registration with empty email or password")
		return models.User{}, models.Session{}, ErrInvalidDataProvided
	}
	if len(masterPassword) < minMasterPasswordLen {
		return models.User{}, models.Session{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(masterPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("hashing master password failed: %w", err)
	}

	salt, err := a.keyDeriver.GenerateEncryptionSalt()
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("generating encryption salt failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:              email,
		MasterPasswordHash: string(hash),
		DataEncryptionSalt: hex.EncodeToString(salt),
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// Derive from the persisted salt, not a throwaway one: records sealed
	// in this first session must still open after a later re-login.
	key, err := a.deriveKey(ctx, masterPassword, salt)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	session, err := a.createSession(ctx, user.UserID, key)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user, session, nil
}

// Login authenticates an existing user and opens a new session.
//
// Verification order is fixed: the bcrypt check runs first, and key
// derivation only happens for a correct password — a wrong password never
// pays the derivation cost and never produces key material.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongPassword for unknown email or failed verification (identical).
//   - ErrMissingEncryptionSalt for accounts without a persisted salt.
func (a *authService) Login(ctx context.Context, email, masterPassword string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if email == "" || masterPassword == "" {
		log.Error().Msg("login with empty email or password")
		return models.User{}, models.Session{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		// unknown email and wrong password are indistinguishable
		return models.User{}, models.Session{}, ErrWrongPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.MasterPasswordHash), []byte(masterPassword)); err != nil {
		log.Error().Int64("user_id", user.UserID).Msg("master password verification failed")
		return models.User{}, models.Session{}, ErrWrongPassword
	}

	if user.DataEncryptionSalt == "" {
		log.Error().Int64("user_id", user.UserID).Msg("account has no data encryption salt")
		return models.User{}, models.Session{}, ErrMissingEncryptionSalt
	}
	salt, err := hex.DecodeString(user.DataEncryptionSalt)
	if err != nil {
		return models.User{}, models.Session{}, ErrMissingEncryptionSalt
	}

	key, err := a.deriveKey(ctx, masterPassword, salt)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	session, err := a.createSession(ctx, user.UserID, key)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	return user, session, nil
}

// Logout destroys the session. Deleting the row destroys the only
// server-side copy of the bound key material.
func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.sessionRepository.DeleteSession(ctx, token)
}

// Authenticate recovers the authenticated principal from the carrier pair.
// The presented key must byte-match the key bound to the session at login;
// a drifted or forged key never partially authenticates.
func (a *authService) Authenticate(ctx context.Context, token, keyHex string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if token == "" || keyHex == "" {
		return models.Principal{}, ErrUnauthorized
	}

	session, err := a.sessionRepository.FindLiveSession(ctx, token, time.Now())
	if err != nil {
		return models.Principal{}, ErrUnauthorized
	}

	if keyHex != session.EncryptionKey {
		log.Error().Int64("user_id", session.UserID).Msg("carried key does not match session key")
		return models.Principal{}, ErrUnauthorized
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != keyLen {
		return models.Principal{}, ErrUnauthorized
	}

	return models.Principal{UserID: session.UserID, Key: key}, nil
}

// deriveKey runs the slow derivation on the bounded pool. The caller's
// context applies only to the wait for a slot; derivation itself is not
// cancellable.
func (a *authService) deriveKey(ctx context.Context, masterPassword string, salt []byte) ([]byte, error) {
	var key []byte
	err := a.derivationPool.Do(ctx, func() {
		key = a.keyDeriver.DeriveKey(masterPassword, salt)
	})
	if err != nil {
		return nil, fmt.Errorf("key derivation aborted: %w", err)
	}
	return key, nil
}

func (a *authService) createSession(ctx context.Context, userID int64, key []byte) (models.Session, error) {
	token, err := a.keyDeriver.GenerateSessionToken()
	if err != nil {
		return models.Session{}, fmt.Errorf("generating session token failed: %w", err)
	}

	session, err := a.sessionRepository.CreateSession(ctx, models.Session{
		UserID:        userID,
		Token:         token,
		EncryptionKey: hex.EncodeToString(key),
		ExpiresAt:     time.Now().Add(a.sessionDuration),
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

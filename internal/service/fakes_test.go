package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// In-memory fakes for the repository interfaces. They implement just enough
// behaviour for the service tests: sequential ids, user scoping, sentinel
// errors.

type fakeUserRepository struct {
	users  map[string]models.User
	nextID int64

	createErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]models.User{}, nextID: 1}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	user.UserID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

type fakeSessionRepository struct {
	sessions map[string]models.Session
	nextID   int64
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]models.Session{}, nextID: 1}
}

func (f *fakeSessionRepository) CreateSession(_ context.Context, session models.Session) (models.Session, error) {
	session.SessionID = f.nextID
	f.nextID++
	session.CreatedAt = time.Now()
	f.sessions[session.Token] = session
	return session, nil
}

func (f *fakeSessionRepository) FindLiveSession(_ context.Context, token string, now time.Time) (models.Session, error) {
	session, ok := f.sessions[token]
	if !ok || !session.ExpiresAt.After(now) {
		return models.Session{}, store.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionRepository) DeleteSession(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type fakeCredentialRepository struct {
	credentials map[int64]models.Credential
	nextID      int64

	saveErr error
}

func newFakeCredentialRepository() *fakeCredentialRepository {
	return &fakeCredentialRepository{credentials: map[int64]models.Credential{}, nextID: 1}
}

func (f *fakeCredentialRepository) Save(_ context.Context, credential models.Credential) (models.Credential, error) {
	if f.saveErr != nil {
		return models.Credential{}, f.saveErr
	}
	credential.CredentialID = f.nextID
	f.nextID++
	credential.CreatedAt = time.Now()
	credential.UpdatedAt = credential.CreatedAt
	f.credentials[credential.CredentialID] = credential
	return credential, nil
}

func (f *fakeCredentialRepository) GetAll(_ context.Context, userID int64) ([]models.Credential, error) {
	var out []models.Credential
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.credentials[id]; ok && c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCredentialRepository) GetByID(_ context.Context, id, userID int64) (models.Credential, error) {
	c, ok := f.credentials[id]
	if !ok || c.UserID != userID {
		return models.Credential{}, store.ErrCredentialNotFound
	}
	return c, nil
}

func (f *fakeCredentialRepository) Update(_ context.Context, credential models.Credential) (models.Credential, error) {
	existing, ok := f.credentials[credential.CredentialID]
	if !ok || existing.UserID != credential.UserID {
		return models.Credential{}, store.ErrCredentialNotFound
	}
	credential.CreatedAt = existing.CreatedAt
	credential.UpdatedAt = time.Now()
	f.credentials[credential.CredentialID] = credential
	return credential, nil
}

func (f *fakeCredentialRepository) Delete(_ context.Context, id, userID int64) error {
	if c, ok := f.credentials[id]; ok && c.UserID == userID {
		delete(f.credentials, id)
	}
	return nil
}

type fakeCategoryRepository struct {
	categories map[int64]models.Category
	nextID     int64
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: map[int64]models.Category{}, nextID: 1}
}

func (f *fakeCategoryRepository) Save(_ context.Context, category models.Category) (models.Category, error) {
	category.CategoryID = f.nextID
	f.nextID++
	f.categories[category.CategoryID] = category
	return category, nil
}

func (f *fakeCategoryRepository) GetAll(_ context.Context, userID int64) ([]models.Category, error) {
	var out []models.Category
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.categories[id]; ok && c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepository) Delete(_ context.Context, id, userID int64) error {
	if c, ok := f.categories[id]; ok && c.UserID == userID {
		delete(f.categories, id)
	}
	return nil
}

// fakeKeyDeriver derives keys deterministically and cheaply (a single SHA-256
// over password and salt) and counts derivations so tests can assert a wrong
// password never pays the derivation cost.
type fakeKeyDeriver struct {
	deriveCalls int
	tokenSeq    int
}

func (f *fakeKeyDeriver) GenerateEncryptionSalt() ([]byte, error) {
	return []byte("0123456789abcdef"), nil
}

func (f *fakeKeyDeriver) DeriveKey(masterPassword string, salt []byte) []byte {
	f.deriveCalls++
	sum := sha256.Sum256(append([]byte(masterPassword), salt...))
	return sum[:]
}

func (f *fakeKeyDeriver) GenerateSessionToken() (string, error) {
	f.tokenSeq++
	token := make([]byte, 32)
	token[0] = byte(f.tokenSeq)
	return hex.EncodeToString(token), nil
}

// fakeScorer returns a fixed raw score.
type fakeScorer struct {
	score int
	err   error
}

func (f *fakeScorer) Score(string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.score, nil
}

// fakeCipher produces inspectable "sealed" blobs without real cryptography.
type fakeCipher struct {
	seq     int
	sealErr error
}

func (f *fakeCipher) Seal(plaintext string, key []byte) (string, error) {
	if f.sealErr != nil {
		return "", f.sealErr
	}
	f.seq++
	return fmt.Sprintf("sealed(%s|%s|%d)", plaintext, hex.EncodeToString(key[:4]), f.seq), nil
}

func (f *fakeCipher) Open(blob string, _ []byte) (string, error) {
	return "opened:" + blob, nil
}

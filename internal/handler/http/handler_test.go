package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/require"
)

// Stub services shared by the handler tests. Each test overrides only the
// functions it cares about; unset functions panic to surface wiring
// mistakes.

type stubAuthService struct {
	registerFn     func(ctx context.Context, email, masterPassword string) (models.User, models.Session, error)
	loginFn        func(ctx context.Context, email, masterPassword string) (models.User, models.Session, error)
	logoutFn       func(ctx context.Context, token string) error
	authenticateFn func(ctx context.Context, token, keyHex string) (models.Principal, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, masterPassword string) (models.User, models.Session, error) {
	return s.registerFn(ctx, email, masterPassword)
}

func (s *stubAuthService) Login(ctx context.Context, email, masterPassword string) (models.User, models.Session, error) {
	return s.loginFn(ctx, email, masterPassword)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token, keyHex string) (models.Principal, error) {
	return s.authenticateFn(ctx, token, keyHex)
}

type stubCredentialService struct {
	createFn  func(ctx context.Context, principal models.Principal, input service.CredentialInput) (models.Credential, error)
	listFn    func(ctx context.Context, principal models.Principal) ([]models.Credential, error)
	getFn     func(ctx context.Context, principal models.Principal, id int64) (models.Credential, error)
	updateFn  func(ctx context.Context, principal models.Principal, id int64, input service.CredentialInput) (models.Credential, error)
	deleteFn  func(ctx context.Context, principal models.Principal, id int64) error
	decryptFn func(ctx context.Context, principal models.Principal, sealedBlob string) (string, error)
}

func (s *stubCredentialService) Create(ctx context.Context, principal models.Principal, input service.CredentialInput) (models.Credential, error) {
	return s.createFn(ctx, principal, input)
}

func (s *stubCredentialService) List(ctx context.Context, principal models.Principal) ([]models.Credential, error) {
	return s.listFn(ctx, principal)
}

func (s *stubCredentialService) GetByID(ctx context.Context, principal models.Principal, id int64) (models.Credential, error) {
	return s.getFn(ctx, principal, id)
}

func (s *stubCredentialService) Update(ctx context.Context, principal models.Principal, id int64, input service.CredentialInput) (models.Credential, error) {
	return s.updateFn(ctx, principal, id, input)
}

func (s *stubCredentialService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	return s.deleteFn(ctx, principal, id)
}

func (s *stubCredentialService) Decrypt(ctx context.Context, principal models.Principal, sealedBlob string) (string, error) {
	return s.decryptFn(ctx, principal, sealedBlob)
}

type stubCategoryService struct {
	createFn func(ctx context.Context, principal models.Principal, name, color string) (models.Category, error)
	listFn   func(ctx context.Context, principal models.Principal) ([]models.Category, error)
	deleteFn func(ctx context.Context, principal models.Principal, id int64) error
}

func (s *stubCategoryService) Create(ctx context.Context, principal models.Principal, name, color string) (models.Category, error) {
	return s.createFn(ctx, principal, name, color)
}

func (s *stubCategoryService) List(ctx context.Context, principal models.Principal) ([]models.Category, error) {
	return s.listFn(ctx, principal)
}

func (s *stubCategoryService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	return s.deleteFn(ctx, principal, id)
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, config.App{SessionDuration: time.Hour}, logger.Nop())
}

// okPrincipal is the principal every authenticated stub request resolves to.
var okPrincipal = models.Principal{UserID: 7, Key: make([]byte, 32)}

// authenticatedServices returns stubs where the carrier pair
// ("good-token", "good-key") authenticates and everything else is rejected.
func authenticatedServices() *service.Services {
	return &service.Services{
		AuthService: &stubAuthService{
			authenticateFn: func(_ context.Context, token, keyHex string) (models.Principal, error) {
				if token == "good-token" && keyHex == "good-key" {
					return okPrincipal, nil
				}
				return models.Principal{}, service.ErrUnauthorized
			},
			logoutFn: func(context.Context, string) error { return nil },
		},
		CredentialService: &stubCredentialService{},
		CategoryService:   &stubCategoryService{},
	}
}

func withSessionCookies(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: sessionTokenCookie, Value: "good-token"})
	r.AddCookie(&http.Cookie{Name: encryptionKeyCookie, Value: "good-key"})
	return r
}

func doRequest(t *testing.T, h *Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, r)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	require.Failf(t, "cookie not found", "no %q cookie in response", name)
	return nil
}

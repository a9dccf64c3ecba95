package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setup        func(m *mocks.MockAuthenticator)
		expectedCode int
		errorCode    string
	}{
		{
			name: "sucesso",
			body: `{"email":"joao@exemplo.com","password":"minhasenha"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "joao@exemplo.com", "minhasenha").
					Return(&domain.LoginResponse{Token: "jwt", User: &domain.User{ID: 2}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "credenciais inválidas",
			body: `{"email":"joao@exemplo.com","password":"errada"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 2, ""))
			},
			expectedCode: http.StatusUnauthorized,
			errorCode:    apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "campos ausentes",
			body:         `{"email":"joao@exemplo.com"}`,
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "json inválido",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthenticator(gomock.NewController(t))
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := serve(Authentication(svc), http.MethodPost, "/v1/login", tt.body, nil)

			requireStatus(t, rec, tt.expectedCode)
			if tt.errorCode != "" {
				assert.Equal(t, tt.errorCode, decodeAPIError(t, rec).Code)
				return
			}

			var resp domain.LoginResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "jwt", resp.Token)
		})
	}
}

func TestRegister_DuplicatedEmail(t *testing.T) {
	svc := mocks.NewMockAuthenticator(gomock.NewController(t))
	svc.EXPECT().Register(gomock.Any(), domain.RegisterRequest{FullName: "João", Email: "joao@exemplo.com", Password: "Senha123"}).
		Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, ""))

	rec := serve(Authentication(svc), http.MethodPost, "/v1/register",
		`{"fullName":"João","email":"joao@exemplo.com","password":"Senha123"}`, nil)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, apiErrors.ErrUserAlreadyExists, decodeAPIError(t, rec).Code)
}

func TestChangePassword(t *testing.T) {
	t.Run("própria senha", func(t *testing.T) {
		svc := mocks.NewMockAuthenticator(gomock.NewController(t))
		svc.EXPECT().ChangePassword(gomock.Any(), 2, "antiga", "NovaSenha1").Return(nil)

		rec := serve(Authentication(svc), http.MethodPost, "/v1/users/2/change-password",
			`{"currentPassword":"antiga","newPassword":"NovaSenha1"}`, client)

		requireStatus(t, rec, http.StatusNoContent)
	})

	t.Run("senha de outro usuário é bloqueada pela rota", func(t *testing.T) {
		svc := mocks.NewMockAuthenticator(gomock.NewController(t))

		rec := serve(Authentication(svc), http.MethodPost, "/v1/users/3/change-password",
			`{"currentPassword":"antiga","newPassword":"NovaSenha1"}`, client)

		requireStatus(t, rec, http.StatusForbidden)
		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, apiErr.Code)
		assert.Equal(t, authenticating.ErrNotOwnPassword.Error(), apiErr.Message)
	})

	t.Run("admin também só troca a própria", func(t *testing.T) {
		svc := mocks.NewMockAuthenticator(gomock.NewController(t))

		rec := serve(Authentication(svc), http.MethodPost, "/v1/users/3/change-password",
			`{"currentPassword":"antiga","newPassword":"NovaSenha1"}`, admin)

		requireStatus(t, rec, http.StatusForbidden)
	})

	t.Run("senha atual incorreta", func(t *testing.T) {
		svc := mocks.NewMockAuthenticator(gomock.NewController(t))
		svc.EXPECT().ChangePassword(gomock.Any(), 2, "errada", "NovaSenha1").
			Return(authenticating.NewUserAuthError(authenticating.ErrPasswordMismatch, apiErrors.ErrInvalidCredentials, 2, ""))

		rec := serve(Authentication(svc), http.MethodPost, "/v1/users/2/change-password",
			`{"currentPassword":"errada","newPassword":"NovaSenha1"}`, client)

		requireStatus(t, rec, http.StatusUnauthorized)
	})
}

func TestGetMe_WithoutClaims(t *testing.T) {
	svc := mocks.NewMockAuthenticator(gomock.NewController(t))

	rec := serve(Authentication(svc), http.MethodGet, "/v1/me", "", nil)

	requireStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
}

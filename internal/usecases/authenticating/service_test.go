package authenticating

import (
	"errors"
	"testing"

	"github.com/jlunac/ads-revenue-api/infrastructure/repository/mocks"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, &config.Config{SecretKey: "clave-de-prueba"})

	return service, userRepo
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUserEmiteTokenValidable(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("ana@ejemplo.com").Return(&domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@ejemplo.com",
		Active:       true,
		RoleID:       domain.RoleAnalyst,
		PasswordHash: hashFor(t, "Segura#2024"),
	}, nil)

	token, err := service.LoginUser("  Ana@Ejemplo.com ", "Segura#2024")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, domain.RoleAnalyst, claims.UserRoleID)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "sin credenciales",
			email:    "",
			password: "",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "usuario inexistente",
			email:    "nadie@ejemplo.com",
			password: "x",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("nadie@ejemplo.com").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "usuario desactivado",
			email:    "ex@ejemplo.com",
			password: "x",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ex@ejemplo.com").Return(&domain.User{ID: 2, Active: false}, nil)
			},
			wantErr: ErrUserDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newAuthService(t)
			tt.setup(userRepo)

			_, err := service.LoginUser(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginUserContrasenaIncorrecta(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("ana@ejemplo.com").Return(&domain.User{
		ID:           7,
		Active:       true,
		PasswordHash: hashFor(t, "Correcta#1"),
	}, nil)

	_, err := service.LoginUser("ana@ejemplo.com", "Incorrecta#1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsCredentialsError(err))
}

func TestCreateUserHasheaLaContrasena(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("nuevo@ejemplo.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		assert.NotEqual(t, "Fuerte#2024", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Fuerte#2024")))
		assert.Equal(t, domain.RoleReadOnly, user.RoleID)
		user.ID = 10
		return user, nil
	})

	created, err := service.CreateUser(&domain.User{
		Name:         "Nuevo",
		Lastname:     "Usuario",
		Email:        " Nuevo@Ejemplo.com ",
		PasswordHash: "Fuerte#2024",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.Equal(t, "nuevo@ejemplo.com", created.Email)
}

func TestCreateUserRechazaContrasenaDebil(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.CreateUser(&domain.User{
		Name:         "Nuevo",
		Lastname:     "Usuario",
		Email:        "nuevo@ejemplo.com",
		PasswordHash: "corta",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestCreateUserEmailDuplicado(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("dup@ejemplo.com").Return(&domain.User{ID: 1}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Dup",
		Lastname:     "Licado",
		Email:        "dup@ejemplo.com",
		PasswordHash: "Fuerte#2024",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestValidateTokenConFirmaAjena(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("ana@ejemplo.com").Return(&domain.User{
		ID:           7,
		Active:       true,
		PasswordHash: hashFor(t, "Segura#2024"),
	}, nil)

	token, err := service.LoginUser("ana@ejemplo.com", "Segura#2024")
	require.NoError(t, err)

	otherService := NewService(nil, &config.Config{SecretKey: "otra-clave"})
	_, err = otherService.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenBasura(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.ValidateToken("token-que-no-es-jwt")
	assert.Error(t, err)
}

func TestGetUserProfileOcultaElHash(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: "hash"}, nil)

	user, err := service.GetUserProfile(7)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestGetUserProfileErrorDeBase(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByID(7).Return(nil, errors.New("conexión caída"))

	_, err := service.GetUserProfile(7)
	assert.Error(t, err)
}

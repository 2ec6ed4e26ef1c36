package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/affiliate-dashboard-api/internal/config"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(userRepo *mocks.MockUserRepository) *Service {
	return &Service{
		userRepo: userRepo,
		cfg: &config.Config{
			Auth: config.Auth{Secret: "segredo-de-teste"},
		},
	}
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(nil, nil)

	mockUserRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(u *domain.User) (*domain.User, error) {
			// A senha nunca chega em claro no repositório
			assert.NotEqual(t, "senha-secreta", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha-secreta")))
			assert.True(t, u.Active)
			assert.Equal(t, defaultRoleID, u.RoleID)

			u.ID = 7
			return u, nil
		})

	created, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "  MARIA@exemplo.com ",
		PasswordHash: "senha-secreta",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Empty(t, created.PasswordHash)
}

func TestCreateUserAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{ID: 1}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@exemplo.com",
		PasswordHash: "senha-secreta",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUserMissingData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	_, err := service.CreateUser(&domain.User{Name: "Maria"})
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestLoginUserAndValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-secreta"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{
			ID:           7,
			Name:         "Maria",
			Email:        "maria@exemplo.com",
			PasswordHash: string(hash),
			Active:       true,
			RoleID:       2,
		}, nil)

	token, err := service.LoginUser("Maria@Exemplo.com", "senha-secreta")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Maria", claims.UserName)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestLoginUserWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-secreta"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{
			ID:           7,
			PasswordHash: string(hash),
			Active:       true,
		}, nil)

	_, err = service.LoginUser("maria@exemplo.com", "senha-errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{ID: 7, Active: false}, nil)

	_, err := service.LoginUser("maria@exemplo.com", "senha-secreta")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	mockUserRepo.EXPECT().
		GetUserByEmail("ninguem@exemplo.com").
		Return(nil, nil)

	_, err := service.LoginUser("ninguem@exemplo.com", "senha")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	mockUserRepo.EXPECT().
		GetUserByID(7).
		Return(&domain.User{ID: 7, Name: "Maria", PasswordHash: "hash"}, nil)

	user, err := service.GetUserProfile(7)

	require.NoError(t, err)
	assert.Equal(t, "Maria", user.Name)
	assert.Empty(t, user.PasswordHash)
}

func TestGetUserProfileUserRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	// Token ainda válido, mas o usuário não existe mais na base
	mockUserRepo.EXPECT().
		GetUserByID(7).
		Return(nil, nil)

	_, err := service.GetUserProfile(7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newAuthService(mockUserRepo)

	_, err := service.ValidateToken("nao-é-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

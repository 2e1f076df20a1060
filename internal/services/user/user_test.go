package user

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// MockRepository реализует интерфейс user.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CreateUser(ctx context.Context, user *models.User) (bson.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MockRepository) DeleteUser(ctx context.Context, id bson.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateUserRole(ctx context.Context, id bson.ObjectID, role string) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRegister_NewEmail(t *testing.T) {
	repo := new(MockRepository)
	id := bson.NewObjectID()
	repo.On("FindUserByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@example.com" && u.Name == "New User"
	})).Return(id, nil)

	service := New(repo, newTestLogger())
	user, created, err := service.Register(context.Background(), models.UserRequest{
		Name:  "New User",
		Email: "new@example.com",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, id, user.ID)
	repo.AssertExpectations(t)
}

func TestRegister_ExistingEmail_NoInsert(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindUserByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{Email: "taken@example.com"}, nil)

	service := New(repo, newTestLogger())
	user, created, err := service.Register(context.Background(), models.UserRequest{
		Email: "taken@example.com",
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, user)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindUserByEmail", mock.Anything, "any@example.com").
		Return(nil, errors.New("db error"))

	service := New(repo, newTestLogger())
	_, created, err := service.Register(context.Background(), models.UserRequest{
		Email: "any@example.com",
	})

	assert.Error(t, err)
	assert.False(t, created)
}

func TestHasRole(t *testing.T) {
	tests := []struct {
		name  string
		user  *models.User
		role  string
		want  bool
	}{
		{
			name: "админ с ролью admin",
			user: &models.User{Email: "a@example.com", Role: models.RoleAdmin},
			role: models.RoleAdmin,
			want: true,
		},
		{
			name: "обычный пользователь не админ",
			user: &models.User{Email: "u@example.com"},
			role: models.RoleAdmin,
			want: false,
		},
		{
			name: "отсутствие роли трактуется как user",
			user: &models.User{Email: "u@example.com"},
			role: models.RoleUser,
			want: true,
		},
		{
			name: "продавец не user",
			user: &models.User{Email: "s@example.com", Role: models.RoleSeller},
			role: models.RoleUser,
			want: false,
		},
		{
			name: "пользователь не найден",
			user: nil,
			role: models.RoleAdmin,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("FindUserByEmail", mock.Anything, mock.Anything).Return(tt.user, nil)

			service := New(repo, newTestLogger())
			got, err := service.HasRole(context.Background(), "whoever@example.com", tt.role)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

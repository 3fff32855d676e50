package usecase_test

import (
	"context"
	"testing"

	"talentai-backend/internal/domain"
	"talentai-backend/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin role cannot be self-assigned at registration", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, testSecret)

		_, err := uc.Register(ctx, "a@b.com", "alice", "secret1", domain.RoleAdmin)
		assert.Error(t, err)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("Password is stored hashed", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, testSecret)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.PasswordHash != "secret1" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
		})).Return(nil)

		user, err := uc.Register(ctx, "a@b.com", "alice", "secret1", domain.RoleCandidate)
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		users.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	stored := &domain.User{ID: "user1", Email: "a@b.com", Role: domain.RoleCandidate, PasswordHash: string(hash)}

	t.Run("Wrong password is unauthorized", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, testSecret)
		users.On("GetByEmail", ctx, "a@b.com").Return(stored, nil)

		_, _, err := uc.Login(ctx, "a@b.com", "wrong")
		assert.Error(t, err)
	})

	t.Run("Unknown email is unauthorized, not not-found", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, testSecret)
		users.On("GetByEmail", ctx, "ghost@b.com").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(ctx, "ghost@b.com", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("Valid credentials return a signed token with identity claims", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, testSecret)
		users.On("GetByEmail", ctx, "a@b.com").Return(stored, nil)

		tokenString, user, err := uc.Login(ctx, "a@b.com", "secret1")
		assert.NoError(t, err)
		assert.Equal(t, "user1", user.ID)

		parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "user1", claims["sub"])
		assert.Equal(t, domain.RoleCandidate, claims["role"])
	})
}

func TestAssignRole(t *testing.T) {
	t.Run("Non-admin cannot assign roles", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, testSecret)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleCandidate)
		err := uc.AssignRole(ctx, "user2", domain.RoleCompany)
		assert.Error(t, err)
		users.AssertNotCalled(t, "Update")
	})

	t.Run("Admin can assign roles", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, testSecret)
		users.On("GetByID", mock.Anything, "user2").Return(&domain.User{ID: "user2", Role: domain.RoleCandidate}, nil)
		users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleCompany
		})).Return(nil)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		err := uc.AssignRole(ctx, "user2", domain.RoleCompany)
		assert.NoError(t, err)
		users.AssertExpectations(t)
	})
}

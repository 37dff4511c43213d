package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"player-roster-backend/internal/config"
	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-signing-key",
		JWTExpiryMinutes: 60,
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates a regular user with a hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mocks.NewMockUserRepositoryInterface(ctrl)
		users.EXPECT().GetByUsername("scout").Return(nil, gorm.ErrRecordNotFound)
		users.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
			assert.Equal(t, "scout", user.Username)
			assert.Equal(t, models.UserRoleUser, user.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
			return nil
		})

		service := NewService(testConfig(), users)
		err := service.Register("scout", "s3cret")
		assert.NoError(t, err)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mocks.NewMockUserRepositoryInterface(ctrl)
		users.EXPECT().GetByUsername("scout").Return(&models.User{Username: "scout"}, nil)

		service := NewService(testConfig(), users)
		err := service.Register("scout", "s3cret")
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(testConfig(), mocks.NewMockUserRepositoryInterface(ctrl))
		assert.True(t, apperrors.IsValidation(service.Register("", "s3cret")))
		assert.True(t, apperrors.IsValidation(service.Register("scout", "")))
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &models.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
	}

	t.Run("issues a token that validates back to the same claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mocks.NewMockUserRepositoryInterface(ctrl)
		users.EXPECT().GetByUsername("admin").Return(storedUser, nil)

		service := NewService(testConfig(), users)
		token, err := service.Login("admin", "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, models.UserRoleAdmin, claims.Role)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mocks.NewMockUserRepositoryInterface(ctrl)
		users.EXPECT().GetByUsername("admin").Return(storedUser, nil)

		service := NewService(testConfig(), users)
		_, err := service.Login("admin", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("rejects an unknown user with the same error as a wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mocks.NewMockUserRepositoryInterface(ctrl)
		users.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

		service := NewService(testConfig(), users)
		_, err := service.Login("ghost", "s3cret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(testConfig(), mocks.NewMockUserRepositoryInterface(ctrl))

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			Username: "admin",
			Role:     models.UserRoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := other.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			Username: "admin",
			Role:     models.UserRoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		signed, err := expired.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("rejects the none signing method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "admin"})
		signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(testConfig(), mocks.NewMockUserRepositoryInterface(ctrl))
	middleware := NewMiddleware(service)

	adminToken, err := service.issueToken(&models.User{Username: "admin", Role: models.UserRoleAdmin})
	require.NoError(t, err)
	userToken, err := service.issueToken(&models.User{Username: "scout", Role: models.UserRoleUser})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		username, _ := c.Get("username")
		c.JSON(http.StatusOK, gin.H{"username": username})
	})
	privilegedCalls := 0
	router.POST("/privileged", middleware.RequireAdmin(), func(c *gin.Context) {
		privilegedCalls++
		c.JSON(http.StatusCreated, gin.H{"mutated": true})
	})

	request := func(method, path, token string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header is rejected", func(t *testing.T) {
		w := request("GET", "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", adminToken)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		w := request("GET", "/protected", "bogus")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes and sets user context", func(t *testing.T) {
		w := request("GET", "/protected", userToken)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "scout", response["username"])
	})

	t.Run("regular user is forbidden from privileged routes", func(t *testing.T) {
		before := privilegedCalls
		w := request("POST", "/privileged", userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, before, privilegedCalls, "handler must not run for non-admin users")
		assert.NotContains(t, w.Body.String(), "mutated")
	})

	t.Run("missing header on privileged routes is rejected", func(t *testing.T) {
		before := privilegedCalls
		w := request("POST", "/privileged", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, before, privilegedCalls)
	})

	t.Run("invalid token on privileged routes is rejected", func(t *testing.T) {
		before := privilegedCalls
		w := request("POST", "/privileged", "bogus")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, before, privilegedCalls)
	})

	t.Run("admin passes privileged routes", func(t *testing.T) {
		before := privilegedCalls
		w := request("POST", "/privileged", adminToken)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, before+1, privilegedCalls)
	})
}

package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtripmate/backend/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "roadtrip-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name        string
		userID      uuid.UUID
		email       string
		config      *models.Config
		expectError bool
	}{
		{
			name:        "Valid token generation",
			userID:      uuid.New(),
			email:       "alice@example.com",
			config:      getTestConfig(),
			expectError: false,
		},
		{
			name:        "Empty email",
			userID:      uuid.New(),
			email:       "",
			config:      getTestConfig(),
			expectError: false, // Should still generate token
		},
		{
			name:        "Zero UUID",
			userID:      uuid.UUID{},
			email:       "alice@example.com",
			config:      getTestConfig(),
			expectError: false, // Should still generate token
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.email, tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, tokenString)
				assert.Zero(t, expiresAt)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, tokenString)
				assert.Greater(t, expiresAt, time.Now().Unix())

				// Verify token structure
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(tt.config.JWT.Secret), nil
				})
				require.NoError(t, err)
				require.True(t, token.Valid)

				// Verify claims
				claims, ok := token.Claims.(jwt.MapClaims)
				require.True(t, ok)

				userIDClaim, exists := claims["user_id"]
				assert.True(t, exists)
				assert.Equal(t, tt.userID.String(), userIDClaim)

				emailClaim, exists := claims["email"]
				assert.True(t, exists)
				assert.Equal(t, tt.email, emailClaim)

				issuerClaim, exists := claims["iss"]
				assert.True(t, exists)
				assert.Equal(t, tt.config.JWT.Issuer, issuerClaim)

				expClaim, exists := claims["exp"]
				assert.True(t, exists)
				assert.Equal(t, float64(expiresAt), expClaim)
			}
		})
	}
}

func TestGenerateToken_ExpirationTime(t *testing.T) {
	config := getTestConfig()
	config.JWT.Expiration = 30 // 30 minutes

	userID := uuid.New()

	beforeGeneration := time.Now()
	tokenString, expiresAt, err := GenerateToken(userID, "alice@example.com", config)
	afterGeneration := time.Now()

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// Verify expiration time is approximately 30 minutes from now
	expectedExpiration := beforeGeneration.Add(30 * time.Minute).Unix()
	expectedExpirationMax := afterGeneration.Add(30 * time.Minute).Unix()

	assert.GreaterOrEqual(t, expiresAt, expectedExpiration)
	assert.LessOrEqual(t, expiresAt, expectedExpirationMax)
}

func TestValidateToken(t *testing.T) {
	config := getTestConfig()
	userID := uuid.New()
	email := "alice@example.com"

	// Generate a valid token
	validToken, _, err := GenerateToken(userID, email, config)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
		setupToken  func() string
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      config.JWT.Secret,
			expectError: false,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				// Create an expired token
				expiredConfig := *config
				expiredConfig.JWT.Expiration = -1 // Expired 1 minute ago
				token, _, _ := GenerateToken(userID, email, &expiredConfig)
				return token
			},
			secret:      config.JWT.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)

				// Verify claims content
				claimsMap := *claims
				assert.Equal(t, userID.String(), claimsMap["user_id"])
				assert.Equal(t, email, claimsMap["email"])
				assert.Equal(t, config.JWT.Issuer, claimsMap["iss"])
			}
		})
	}
}

func BenchmarkValidateToken(b *testing.B) {
	config := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "alice@example.com", config)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(tokenString, config.JWT.Secret)
	}
}

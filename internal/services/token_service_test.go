package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"household-expenses/internal/config"
	"household-expenses/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	privateKey      *rsa.PrivateKey
	publicKey       *rsa.PublicKey
	service         TokenServiceInterface
	issuer          string
	accessDuration  time.Duration
	refreshDuration time.Duration
	user            *models.User
}

func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.accessDuration = 15 * time.Minute
	s.refreshDuration = 30 * 24 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               s.issuer,
		AccessTokenDuration:  s.accessDuration,
		RefreshTokenDuration: s.refreshDuration,
	})

	s.user = &models.User{
		ID:          uuid.New(),
		Email:       "owner@example.com",
		DisplayName: "Owner",
	}
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) signClaims(claims models.HouseholdClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)
	return token
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.user)
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(s.accessDuration + time.Minute)))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilUser() {
	token, _, err := s.service.GenerateAccessToken(nil)
	s.Error(err)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestGenerateRefreshToken_IsOpaqueAndUnique() {
	first, expiresAt, err := s.service.GenerateRefreshToken()
	s.Require().NoError(err)
	second, _, err := s.service.GenerateRefreshToken()
	s.Require().NoError(err)

	s.NotEqual(first, second)
	s.Len(first, 43)
	s.True(expiresAt.After(time.Now().Add(s.refreshDuration - time.Minute)))

	_, err = s.service.ValidateAccessToken(first)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Success() {
	token, _, err := s.service.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.Equal(s.user.ID.String(), claims.UserID)
	s.Equal(s.user.Email, claims.Email)
	s.Equal(models.TokenTypeAccess, claims.TokenType)
	s.Equal(s.issuer, claims.Issuer)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Empty() {
	_, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	past := time.Now().Add(-time.Hour)
	token := s.signClaims(models.HouseholdClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
		UserID:    s.user.ID.String(),
		TokenType: models.TokenTypeAccess,
	})

	_, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	token := s.signClaims(models.HouseholdClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    s.user.ID.String(),
		TokenType: models.TokenTypeAccess,
	})

	_, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongType() {
	token := s.signClaims(models.HouseholdClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    s.user.ID.String(),
		TokenType: "refresh",
	})

	_, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_SignedByOtherKey() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		PrivateKey:          otherKey,
		PublicKey:           &otherKey.PublicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Minute,
	})
	token, _, err := other.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsHMAC() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.HouseholdClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: s.issuer},
		TokenType:        models.TokenTypeAccess,
	}).SignedString([]byte("secret"))
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	cases := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer   abc ", "abc", false},
		{"", "", true},
		{"Basic abc", "", true},
		{"Bearer ", "", true},
	}

	for _, tc := range cases {
		got, err := s.service.ExtractTokenFromHeader(tc.header)
		if tc.wantErr {
			s.ErrorIs(err, ErrInvalidAuthHeader, tc.header)
			continue
		}
		s.NoError(err, tc.header)
		s.Equal(tc.want, got)
	}
}

func (s *TokenServiceTestSuite) TestGetJTIAndExpiry() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.Require().NoError(err)

	jti, err := s.service.GetJTI(token)
	s.NoError(err)
	s.Equal(claims.ID, jti)

	expiry, err := s.service.GetTokenExpiry(token)
	s.NoError(err)
	s.WithinDuration(expiresAt, expiry, time.Second)
}

func (s *TokenServiceTestSuite) TestGetJTI_Malformed() {
	_, err := s.service.GetJTI("not-a-jwt")
	s.Error(err)

	_, err = s.service.GetTokenExpiry("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestHashToken() {
	s.Equal(HashToken("abc"), HashToken("abc"))
	s.NotEqual(HashToken("abc"), HashToken("abd"))
	s.Len(HashToken("abc"), 64)
}

package jwt

import (
	"ZWH-Backend/domain"
	"ZWH-Backend/internal/pkg/clock"
	"ZWH-Backend/internal/utils"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
	"time"
)

const tokenLifetime = 120 * time.Minute

type (
	JWTService interface {
		GenerateTokenUser(email string, role string) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserEmailByToken(token string) (string, string, error)
	}

	jwtUserClaim struct {
		Email string `json:"email"`
		Role  string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		clock     clock.Clock
	}
)

func NewJWTService() JWTService {
	return NewJWTServiceWithClock(utils.GetConfig("JWT_SECRET"), clock.NewRealClock())
}

func NewJWTServiceWithClock(secretKey string, clk clock.Clock) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "ZWH",
		clock:     clk,
	}
}

func (j *jwtService) GenerateTokenUser(email string, role string) string {
	now := j.clock.Now()
	claims := jwtUserClaim{
		email,
		role,
		jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Error(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	t_Token, err := parser.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
	if err != nil {
		return t_Token, err
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	if !claims.VerifyExpiresAt(j.clock.Now(), true) {
		t_Token.Valid = false
		return t_Token, jwt.NewValidationError("token is expired", jwt.ValidationErrorExpired)
	}
	return t_Token, nil
}

func (j *jwtService) GetUserEmailByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	return claims.Email, claims.Role, nil
}

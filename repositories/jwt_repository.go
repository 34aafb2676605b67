package repositories

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/consentvault/consentvault-backend/dto"
	"github.com/consentvault/consentvault-backend/models"
)

type JwtRepository struct {
	signingSecret []byte
}

func NewJwtRepository(signingSecret string) *JwtRepository {
	return &JwtRepository{
		signingSecret: []byte(signingSecret),
	}
}

// Claims embeds jwt.RegisteredClaims for expiry handling.
type Claims struct {
	Credentials dto.Credentials `json:"credentials"`
	jwt.RegisteredClaims
}

var validationAlgo = jwt.SigningMethodHS256

func (repo *JwtRepository) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	claims := &Claims{
		Credentials: dto.AdaptCredentialsDto(creds),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "consentvault",
		},
	}

	token := jwt.NewWithClaims(validationAlgo, claims)
	return token.SignedString(repo.signingSecret)
}

func (repo *JwtRepository) ValidateToken(tokenString string) (models.Credentials, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		method, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok || method != validationAlgo {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", token.Header["alg"])
		}
		return repo.signingSecret, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, keyFunc)
	if err != nil {
		return models.Credentials{}, errors.Join(
			models.UnAuthorizedError,
			errors.Wrap(err, "error parsing jwt token claims"),
		)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid token")
	}
	return dto.AdaptCredentials(claims.Credentials), nil
}

package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingEmployee = errors.New("token has no employee_id claim")

// Service verifies the access tokens issued by the HR server. Tokens are
// minted here only for operators and tests; the portal has no login.
type Service interface {
	GenerateAccessToken(employeeID string) (token string, expiresAt int64, err error)
	EmployeeID(token jwt.Token) (string, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(employeeID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "access",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

// EmployeeID reads the employee_id claim of a verified token.
func (j *JWTService) EmployeeID(token jwt.Token) (string, error) {
	if token == nil {
		return "", jwt.ErrInvalidJWT()
	}
	value, ok := token.Get("employee_id")
	if !ok {
		return "", ErrMissingEmployee
	}
	employeeID, ok := value.(string)
	if !ok || employeeID == "" {
		return "", ErrMissingEmployee
	}
	return employeeID, nil
}

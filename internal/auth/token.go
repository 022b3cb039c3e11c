package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ipriyanshu25/infuencer/misc"
)

const (
	TokenAge = 24 * time.Hour

	// context key the verified principal is stashed under
	CtxPrincipal = "principal"
)

// Claims is the signed payload carried by every bearer token. Id holds
// the brandId or influencerId the token was issued for.
type Claims struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func SignToken(id, email, secret string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Id:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenAge)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseToken(tok, secret string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// VerifyToken guards protected routes. Missing or malformed bearer
// headers and expired tokens all abort with a 403.
func (a *Auth) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Request.Header.Get("Authorization")
		if raw == "" {
			misc.AbortWithErr(c, http.StatusForbidden, ErrTokenRequired)
			return
		}

		parts := strings.SplitN(raw, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			misc.AbortWithErr(c, http.StatusForbidden, ErrTokenRequired)
			return
		}

		claims, err := ParseToken(parts[1], a.cfg.TokenSecret)
		if err != nil {
			misc.AbortWithErr(c, http.StatusForbidden, ErrInvalidToken)
			return
		}

		c.Set(CtxPrincipal, claims)
		c.Next()
	}
}

func GetCtxPrincipal(c *gin.Context) *Claims {
	if v, ok := c.Get(CtxPrincipal); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}

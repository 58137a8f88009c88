package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"loja/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey       = "user_id"       // int64
	CtxUserRoleKey     = "user_role"     // string
	CtxTokenVersionKey = "token_version" // int
)

// access tokenから取り出す認証情報
type accessClaims struct {
	UserID       int64
	Role         string
	TokenVersion int
}

// bearerAuth用のJWT検証ミドルウェア。
// 検証に通ったらuser_id/role/token_versionをcontextに積む
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request())
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			ac, err := verifyAccessToken(raw, cfg.JWTSecret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxUserIDKey, ac.UserID)
			c.Set(CtxUserRoleKey, ac.Role)
			c.Set(CtxTokenVersionKey, ac.TokenVersion)

			return next(c)
		}
	}
}

// AuthorizationヘッダからBearer tokenを抜く
func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" {
		return "", false
	}

	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return "", false
	}
	return raw, true
}

// JWTを検証してclaimsを取り出す。HS256以外は拒否
func verifyAccessToken(raw string, secret string) (accessClaims, error) {
	token, err := jwt.Parse(raw,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return accessClaims{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return accessClaims{}, errors.New("invalid claims")
	}

	userID, err := claimInt64(claims["sub"])
	if err != nil || userID <= 0 {
		return accessClaims{}, errors.New("invalid sub")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return accessClaims{}, errors.New("invalid role")
	}

	tv, err := claimInt64(claims["tv"])
	if err != nil || tv < 0 {
		return accessClaims{}, errors.New("invalid tv")
	}

	return accessClaims{
		UserID:       userID,
		Role:         role,
		TokenVersion: int(tv),
	}, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// JSONデコード後の数値claimはfloat64で来る
func claimInt64(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case int64:
		return t, nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid numeric claim")
	}
}

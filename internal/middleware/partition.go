package middleware

import (
	"errors"
	"net/http"
	"time"

	"payetonkawa/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// 訪問者パーティションIDを入れるechoコンテキストキー
	CtxPartitionKey = "partition_id"

	partitionCookieName = "ptk_partition"

	// Cookie自体の寿命。パーティションのデータ側は自動では消えない。
	partitionCookieTTL = 365 * 24 * time.Hour
)

// Partition は訪問者ごとの保存パーティションを割り当てるミドルウェア。
// Cookieが無い・壊れているときは新しいIDを発行して付け直す。
// 署名はCookieの改ざん対策で、認証ではない（誰でも新規IDをもらえる）。
func Partition(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""

			if cookie, err := c.Cookie(partitionCookieName); err == nil {
				id = parsePartitionToken(cookie.Value, cfg.SessionSecret)
			}

			if id == "" {
				id = uuid.NewString()

				signed, err := signPartitionToken(id, cfg.SessionSecret)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
				}

				c.SetCookie(&http.Cookie{
					Name:     partitionCookieName,
					Value:    signed,
					Path:     "/",
					Expires:  time.Now().Add(partitionCookieTTL),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxPartitionKey, id)
			return next(c)
		}
	}
}

// PartitionFromContext はミドルウェアが入れたパーティションIDを取り出す。
func PartitionFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(CtxPartitionKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func signPartitionToken(id string, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub": id,
		"iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// parsePartitionToken は検証に失敗したら空文字（=発行し直し）。
func parsePartitionToken(raw string, secret string) string {
	if raw == "" {
		return ""
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	id, ok := claims["sub"].(string)
	if !ok {
		return ""
	}
	return id
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

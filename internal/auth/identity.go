package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tasktracker/internal/cache"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// currentUserKey is the echo context key the resolved identity is stored under.
const currentUserKey = "currentUser"

const identityCacheTTL = 5 * time.Minute

// RequireUser resolves the calling identity from the validated bearer token
// and attaches it to the request context. It runs after the JWT middleware,
// so a missing or unparseable token never reaches it. Any failure yields a
// generic 401 without detail.
func RequireUser(users repository.UserRepository, cacheClient *cache.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			rawID, ok := claims["user_id"].(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			userID, err := uuid.Parse(rawID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			user, err := resolveUser(c, users, cacheClient, userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity attached by RequireUser.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(currentUserKey).(*model.User)
	return user, ok
}

func identityCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// resolveUser loads the user, preferring the cache. The cached copy never
// contains the password hash because the model excludes it from JSON.
func resolveUser(c echo.Context, users repository.UserRepository, cacheClient *cache.Client, id uuid.UUID) (*model.User, error) {
	ctx := c.Request().Context()

	if data, _ := cacheClient.Get(ctx, identityCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = cacheClient.Set(ctx, identityCacheKey(id), payload, identityCacheTTL)
	}
	return user, nil
}

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
)

// withSession attaches the session of the caller to the request context
// when the request carries a valid session token.
//
// It never rejects a request: anonymous callers and callers with an expired
// or forged token continue without a session. Handlers that need a user
// check for it with [utils.GetSessionFromContext].
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokens, err := sessionTokens(r)
		if err != nil {
			log.Debug().Err(err).Msg("anonymous request")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		for _, token := range tokens {
			session, err := h.services.AuthService.ParseSession(ctx, token)
			if err != nil {
				log.Info().Err(err).Msg("session token ignored")
				continue
			}

			log.Debug().Int64("user_id", session.UserID).Msg("session restored")
			next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionTokens returns the session tokens carried by r in the order they
// are tried: the session cookie first, then the "Authorization: Bearer
// <token>" header. A malformed header is only an error when there is no
// cookie to fall back on.
func sessionTokens(r *http.Request) ([]string, error) {
	var tokens []string
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if len(tokens) == 0 {
			return nil, ErrNoSessionToken
		}
		return tokens, nil
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		if len(tokens) == 0 {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
		}
		return tokens, nil
	}

	return append(tokens, token), nil
}

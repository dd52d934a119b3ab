package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/nutri-track/internal/app"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/service"
	"github.com/MKhiriev/nutri-track/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The signed session value is taken from the session cookie or, for
// non-browser clients, from an "Authorization: Bearer" header. Its signature
// is checked with [utils.ParseSessionToken] and the opaque token it carries
// is resolved through [service.AuthService.Authenticate], so a logged-out or
// expired session is rejected even when the signature is still valid.
//
// On success the user id and the raw token are stored in the request context
// under [utils.UserIDCtxKey] and [utils.SessionTokenCtxKey]. Every failure
// answers 401 except store errors, which answer 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		signed, err := h.sessionCredential(r)
		if err != nil {
			log.Debug().Err(err).Msg("no session credential")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgAuthRequired, "")
			return
		}

		token, err := utils.ParseSessionToken(signed, h.appConfig.SessionSecret)
		if err != nil {
			log.Debug().Err(err).Msg("session credential rejected")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgAuthRequired, "")
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				log.Debug().Msg("session expired or logged out")
				utils.WriteError(w, http.StatusUnauthorized, app.MsgAuthRequired, "")
				return
			}
			writeServiceError(w, r, err, "")
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, session.UserID)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionCredential returns the signed session value. The cookie wins over
// the header when both are present.
func (h *Handler) sessionCredential(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(h.appConfig.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoSessionCredential
	}

	value, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return value, nil
}

// currentUserID reads the id stored by auth. A missing id means the route
// was registered outside the authorized group.
func currentUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("user id missing from request context")
		utils.WriteError(w, http.StatusUnauthorized, app.MsgAuthRequired, "")
	}
	return userID, ok
}

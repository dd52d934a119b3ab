package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/nutri-track/internal/app"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	user, session, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	if err = h.setSessionCookie(w, session); err != nil {
		log.Err(err).Msg("signing of session cookie failed")
		utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError, "")
		return
	}

	writeJSON(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	user, session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	if err = h.setSessionCookie(w, session); err != nil {
		log.Err(err).Msg("signing of session cookie failed")
		utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError, "")
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	writeJSON(w, r, user, http.StatusOK)
}

// logout is idempotent: a missing, forged or already destroyed session still
// answers 200 and clears the cookie. Only a store failure is reported.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if signed, err := h.sessionCredential(r); err == nil {
		token, err := utils.ParseSessionToken(signed, h.appConfig.SessionSecret)
		if err != nil {
			log.Debug().Err(err).Msg("logout with unusable session credential")
		} else if err = h.services.AuthService.Logout(ctx, token); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
	}

	h.clearSessionCookie(w)
	writeJSON(w, r, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.WhoAmI(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

// setSessionCookie issues the signed session cookie. Its lifetime equals the
// session's fixed TTL.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) error {
	signed, err := utils.SignSessionToken(session.Token, session.UserID, session.CreatedAt, session.ExpiresAt, h.appConfig.SessionSecret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.appConfig.SessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(session.ExpiresAt.Sub(session.CreatedAt) / time.Second),
		HttpOnly: true,
		Secure:   h.appConfig.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.appConfig.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.appConfig.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

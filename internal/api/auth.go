package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/auth"
)

// jwtCookieName is the cookie carrying the signed token.
const jwtCookieName = "jwt"

// loginErrorMessage is the single message for every login failure.
// Unknown dealer and wrong password are indistinguishable so account
// existence never leaks.
const loginErrorMessage = "invalid dealer id or password"

// loginRequest is the request body for POST /api/auth/login.
// DealerId is submitted as a digit string per the API contract.
type loginRequest struct {
	DealerID string `json:"DealerId"`
	Password string `json:"Password"`
}

// messageResponse is the `{message}` body used by success responses.
type messageResponse struct {
	Message string `json:"message"`
}

// handleLogin verifies dealer credentials and sets the token cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	dealerID, err := auth.ParseDealerID(req.DealerID)
	if err != nil {
		writeBadRequest(w, auth.ErrInvalidDealerID.Error())
		return
	}
	if req.Password == "" {
		writeBadRequest(w, "password is required")
		return
	}

	dealer, err := s.dealers.GetByDealerID(r.Context(), dealerID)
	if err != nil {
		if errors.Is(err, auth.ErrDealerNotFound) {
			writeUnauthorized(w, loginErrorMessage)
			return
		}
		s.logger.Error("dealer lookup failed", "error", err)
		writeInternalError(w, "login failed")
		return
	}

	if !auth.CheckPassword(req.Password, dealer.PasswordHash) {
		writeUnauthorized(w, loginErrorMessage)
		return
	}

	token, err := auth.IssueToken(dealerID, s.secCfg.JWT)
	if err != nil {
		s.logger.Error("token issue failed", "error", err)
		writeInternalError(w, "login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     jwtCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.secCfg.JWT.TokenTTL().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	s.logger.Info("dealer logged in", "dealer_id", dealerID)
	writeJSON(w, http.StatusOK, messageResponse{Message: "login successful"})
}

// handleLogout clears the token cookie. The token itself stays valid until
// natural expiry (stateless tokens, no revocation list).
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwtCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, messageResponse{Message: "logged out"})
}

// meResponse is the response body for GET /api/auth/me.
type meResponse struct {
	DealerID int `json:"DealerId"`
}

// handleMe returns the authenticated caller's dealer id.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	dealerID, ok := dealerIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, authErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{DealerID: dealerID})
}

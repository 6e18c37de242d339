package synqserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "github.com/SHWFT/synqchain/internal/domains/auth/application"
)

// AuthAPI serves the cookie-stub session endpoints.
type AuthAPI struct {
	service *authapp.Service
}

// NewAuthAPI creates an AuthAPI backed by the provided service.
func NewAuthAPI(service *authapp.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Get /auth/me
// Current session identity, 401 without a valid cookie
func (api *AuthAPI) GetMe(c *gin.Context) {
	cookie, err := c.Cookie(authapp.SessionCookie)
	if err != nil {
		cookie = ""
	}
	user, err := api.service.CurrentUser(c.Request.Context(), cookie)
	if err != nil {
		respondError(c, http.StatusUnauthorized, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Post /auth/logout
// Clears the session cookie; always succeeds
func (api *AuthAPI) Logout(c *gin.Context) {
	c.SetCookie(authapp.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

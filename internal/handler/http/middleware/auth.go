package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Clipture/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Clipture/internal/usecase/contract"
)

// AuthMiddleWare authenticates the request via the Bearer access token and
// places the resolved identity (userID, username, userRole) in the context.
func AuthMiddleWare(jwtService usecase.JWTService, userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be in the form 'Bearer <token>'"})
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired access token"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("username", user.Username)
		c.Set("userRole", string(user.Role))
		c.Next()
	}
}

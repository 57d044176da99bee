package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		email, _ := claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "email claim missing"})
			return
		}

		// Prefer the claims; fall back to a DB lookup for older tokens
		userID, okUser := numericClaim(claims, "userId")
		tenantID, okTenant := numericClaim(claims, "tenantId")
		if !okUser || !okTenant {
			var user models.User
			if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			userID, tenantID = uint(user.ID), user.ClinicID
		}

		c.Set("email", email)
		c.Set("userID", userID)
		c.Set("tenantID", tenantID)

		c.Next()
	}
}

// numericClaim handles the float64 that JSON decoding produces for
// numeric JWT claims.
func numericClaim(claims jwt.MapClaims, key string) (uint, bool) {
	switch v := claims[key].(type) {
	case float64:
		return uint(v), true
	case int64:
		return uint(v), true
	default:
		return 0, false
	}
}

package middleware

import (
	"net/http"

	"github.com/bimma2006/dhanukayaff/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuth gates mutating admin routes behind the shared panel password,
// sent as the X-Admin-Password header. An empty configured password disables
// the gate entirely: the reference deployment enforced the password in the
// admin panel client only, so the server default must stay open.
func AdminAuth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if password == "" {
			c.Next()
			return
		}

		if c.GetHeader("X-Admin-Password") != password {
			zap.L().Warn("admin access denied",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Invalid admin password"))
			c.Abort()
			return
		}

		c.Next()
	}
}

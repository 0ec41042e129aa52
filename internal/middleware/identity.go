package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"asks_web/internal/utils"
)

// Identity 是一個 Gin 中間件，用於解析操作者的身份。
//
// 部署在 API 閘道後面時，閘道會在驗證後注入 X-UserId 標頭，直接採用；
// 獨立部署時退而解析 Authorization 標頭中的 Bearer JWT。
// 兩者都沒有時拒絕請求。
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 閘道模式：信任 X-UserId 標頭
		if userID := c.GetHeader("X-UserId"); userID != "" {
			c.Set("userID", userID)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "X-UserId or Authorization header is required"})
			c.Abort()
			return
		}

		// 檢查 Authorization 頭的格式
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		// 解析 JWT token
		claims, err := utils.ParseToken(parts[1])
		if err != nil || claims.UserID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yeisme/foldervault/pkg/configs"
)

// ContextSubjectKey 认证通过后写入 gin.Context 的主体键.
const ContextSubjectKey = "auth_subject"

// AuthMiddleware 校验 Authorization 头中的 Bearer JWT.
//   - 仅接受 HS256 签名，密钥来自 configs.auth.secret
//   - 配置了 issuer 时同时校验 iss 声明
//   - 校验通过后把 sub 声明写入上下文，供处理器记录归属.
func AuthMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !conf.Enabled {
			c.Next()
			return
		}

		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})

			return
		}

		opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
		if conf.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(conf.Issuer))
		}

		claims := jwt.RegisteredClaims{}

		_, err := jwt.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
			return []byte(conf.Secret), nil
		}, opts...)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})

			return
		}

		if claims.Subject != "" {
			c.Set(ContextSubjectKey, claims.Subject)
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}

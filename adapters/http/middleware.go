package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/auth"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

const GinContextKeyAdmin = "adminUsername"

// ErrorMiddleware renders the last error a handler attached with c.Error.
// Anything that is not an *apperror.AppError is reported as a 500 without
// leaking its text.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		status := apperror.ToHTTPStatus(err)
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, fields...)
		} else {
			log.Debug("Request rejected", append(fields, zap.String("reason", err.Error()))...)
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// AdminTokenMiddleware requires "Authorization: Bearer <token>" carrying a
// token that tokenSvc accepts.
func AdminTokenMiddleware(tokenSvc *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperror.NewUnauthorized("authorization header is required", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Error(apperror.NewUnauthorized("invalid token format", nil))
			c.Abort()
			return
		}

		if !tokenSvc.ValidateToken(tokenString) {
			c.Error(apperror.NewUnauthorized("invalid or expired token", nil))
			c.Abort()
			return
		}

		if claims, err := auth.ParseToken(tokenString); err == nil {
			c.Set(GinContextKeyAdmin, claims.Username)
		}
		c.Next()
	}
}

package middleware

import (
	"time"

	"loja/internal/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// アクセスログ（構造化）。1リクエスト1行。
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
				zap.String("user_agent", req.UserAgent()),
			}

			if userID, ok := c.Get(CtxUserIDKey).(int64); ok && userID > 0 {
				fields = append(fields, zap.Int64("user_id", userID))
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			logger.Z().Info("request", fields...)

			return nil
		}
	}
}

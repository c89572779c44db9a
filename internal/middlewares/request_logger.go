package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader リクエストIDのヘッダー名
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID コンテキストに保存されたリクエストIDを取得
func RequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

// RequestLogger リクエストIDの付与とアクセスログ
//
// X-Request-ID があればそのまま使い、無ければ生成してレスポンスに返す。
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)

		ctx.Next()

		status := ctx.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			event = logger.Info()
		}

		event.
			Str("request_id", id).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", ctx.ClientIP()).
			Msg("request")
	}
}

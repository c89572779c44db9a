package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/SketchShifter/starwars_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	msgInternal  = "Internal server error"
	msgDuplicate = "Resource already exists"
)

// ErrorMiddleware エラーハンドリングミドルウェア
//
// ハンドラーが ctx.Error で登録した最後のエラーを {"error": ...} に変換する。
// パニックも500として返す。
func ErrorMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Str("request_id", RequestID(ctx)).
					Str("panic", fmt.Sprint(rec)).
					Bytes("stack", debug.Stack()).
					Msg("パニックが発生しました")
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorBody(msgInternal))
			}
		}()

		ctx.Next()

		last := ctx.Errors.Last()
		if last == nil || ctx.Writer.Written() {
			return
		}

		status, message := resolve(last.Err)
		if status >= http.StatusInternalServerError {
			logger.Error().
				Err(last.Err).
				Str("request_id", RequestID(ctx)).
				Str("path", ctx.Request.URL.Path).
				Msg("リクエストの処理に失敗しました")
		}
		ctx.AbortWithStatusJSON(status, utils.ErrorBody(message))
	}
}

// resolve エラーをステータスコードとメッセージに変換
func resolve(err error) (int, string) {
	if apiErr, ok := utils.AsAPIError(err); ok {
		return apiErr.StatusCode, apiErr.Message
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusConflict, msgDuplicate
	}
	return http.StatusInternalServerError, msgInternal
}

// CORSMiddleware CORSミドルウェア
func CORSMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		ctx.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		ctx.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		ctx.Writer.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}

package utils

import (
	"errors"
	"net/http"
)

// APIError HTTPステータスとメッセージを持つエラー
//
// ハンドラーは ctx.Error で登録するだけにし、レスポンスへの変換は
// ErrorMiddleware でのみ行う。
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError APIErrorを作成
func NewAPIError(message string, statusCode int) *APIError {
	return &APIError{Message: message, StatusCode: statusCode}
}

// BadRequest 400エラー
func BadRequest(message string) *APIError {
	return NewAPIError(message, http.StatusBadRequest)
}

// NotFound 404エラー
func NotFound(message string) *APIError {
	return NewAPIError(message, http.StatusNotFound)
}

// AsAPIError err がAPIErrorであれば取り出す
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrorBody エラーレスポンスのボディ
func ErrorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

// MessageBody 成功メッセージのボディ
func MessageBody(message string) map[string]string {
	return map[string]string{"message": message}
}

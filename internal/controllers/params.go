package controllers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/SketchShifter/starwars_backend/internal/services"
	"github.com/SketchShifter/starwars_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// parseID パスパラメータのIDを解析
//
// 整数でないIDは存在しないIDと同じく404として扱う。
func parseID(ctx *gin.Context, name, notFoundMsg string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, utils.NotFound(notFoundMsg)
	}
	return uint(id), nil
}

// favoriteRequest お気に入り追加・削除のリクエストボディ
type favoriteRequest struct {
	UserID json.RawMessage `json:"user_id"`
}

// bindUserID ボディからuser_idを取得（読めない・無い・0はすべて400）
//
// 数値と数字だけの文字列（"12"）のどちらも受け付ける。
func bindUserID(ctx *gin.Context) (uint, error) {
	var req favoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return 0, utils.BadRequest(services.MsgUserIDRequired)
	}

	id, ok := parseUserID(req.UserID)
	if !ok || id == 0 {
		return 0, utils.BadRequest(services.MsgUserIDRequired)
	}
	return id, nil
}

func parseUserID(raw json.RawMessage) (uint, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var n uint
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

package services

import (
	"errors"
	"fmt"

	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/utils"

	"gorm.io/gorm"
)

// レスポンスに使うメッセージ（文言はクライアントとの互換のため固定）
const (
	MsgPlanetNotFound    = "Planet not found"
	MsgCharacterNotFound = "Character not found"
	MsgUserNotFound      = "User not found"
	MsgFavoriteNotFound  = "Favorite not found"
	MsgUserIDRequired    = "User ID is required"
	MsgUserIDNotInteger  = "User ID must be an integer"
	MsgInvalidBody       = "Invalid request body"

	MsgPlanetDeleted    = "Planet deleted successfully"
	MsgCharacterDeleted = "Character deleted successfully"
	MsgFavoriteDeleted  = "Favorite deleted successfully"
)

// lookupError レコードが無ければ404、それ以外はラップして返す
func lookupError(err error, notFoundMsg, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(notFoundMsg)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// fieldError リクエストボディのフィールドエラーを400に変換
func fieldError(err error) error {
	var fe *models.FieldError
	if errors.As(err, &fe) {
		return utils.BadRequest(fe.Error())
	}
	return err
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/SketchShifter/starwars_backend/internal/services"
	"github.com/SketchShifter/starwars_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// List お気に入りを含むユーザー一覧を取得
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userService.List(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetFavorites クエリのuser_idのお気に入り一覧を取得
func (c *UserController) GetFavorites(ctx *gin.Context) {
	raw := ctx.Query("user_id")
	if raw == "" {
		ctx.Error(utils.BadRequest(services.MsgUserIDRequired))
		return
	}

	userID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.Error(utils.BadRequest(services.MsgUserIDNotInteger))
		return
	}

	favorites, err := c.userService.GetFavorites(ctx.Request.Context(), uint(userID))
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, favorites)
}

package controllers

import (
	"net/http"

	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/services"
	"github.com/SketchShifter/starwars_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// PeopleController 登場人物に関するコントローラー
type PeopleController struct {
	characterService services.CharacterService
}

// NewPeopleController PeopleControllerを作成
func NewPeopleController(characterService services.CharacterService) *PeopleController {
	return &PeopleController{
		characterService: characterService,
	}
}

// List 登場人物一覧を取得
func (c *PeopleController) List(ctx *gin.Context) {
	characters, err := c.characterService.List(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, characters)
}

// GetByID IDで登場人物を取得
func (c *PeopleController) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx, "people_id", services.MsgCharacterNotFound)
	if err != nil {
		ctx.Error(err)
		return
	}

	character, err := c.characterService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, character)
}

// Create 登場人物を作成
func (c *PeopleController) Create(ctx *gin.Context) {
	var patch models.Patch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.Error(utils.BadRequest(services.MsgInvalidBody))
		return
	}

	character, err := c.characterService.Create(ctx.Request.Context(), patch)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, character)
}

// Update 登場人物を更新
func (c *PeopleController) Update(ctx *gin.Context) {
	id, err := parseID(ctx, "people_id", services.MsgCharacterNotFound)
	if err != nil {
		ctx.Error(err)
		return
	}

	var patch models.Patch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.Error(utils.BadRequest(services.MsgInvalidBody))
		return
	}

	character, err := c.characterService.Update(ctx.Request.Context(), id, patch)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, character)
}

// Delete 登場人物を削除
func (c *PeopleController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx, "people_id", services.MsgCharacterNotFound)
	if err != nil {
		ctx.Error(err)
		return
	}

	if err := c.characterService.Delete(ctx.Request.Context(), id); err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, utils.MessageBody(services.MsgCharacterDeleted))
}

package controllers

import (
	"net/http"

	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/services"
	"github.com/SketchShifter/starwars_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// FavoriteController お気に入りに関するコントローラー
type FavoriteController struct {
	favoriteService services.FavoriteService
}

// NewFavoriteController FavoriteControllerを作成
func NewFavoriteController(favoriteService services.FavoriteService) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// AddPlanet 惑星をお気に入りに追加
func (c *FavoriteController) AddPlanet(ctx *gin.Context) {
	c.add(ctx, "planet_id", services.MsgPlanetNotFound, models.PlanetResource)
}

// AddCharacter 登場人物をお気に入りに追加
func (c *FavoriteController) AddCharacter(ctx *gin.Context) {
	c.add(ctx, "character_id", services.MsgCharacterNotFound, models.CharacterResource)
}

// RemovePlanet 惑星のお気に入りを削除
func (c *FavoriteController) RemovePlanet(ctx *gin.Context) {
	c.remove(ctx, "planet_id", services.MsgPlanetNotFound, models.PlanetResource)
}

// RemoveCharacter 登場人物のお気に入りを削除
func (c *FavoriteController) RemoveCharacter(ctx *gin.Context) {
	c.remove(ctx, "character_id", services.MsgCharacterNotFound, models.CharacterResource)
}

func (c *FavoriteController) add(ctx *gin.Context, param, notFoundMsg string, resource func(uint) models.Resource) {
	id, err := parseID(ctx, param, notFoundMsg)
	if err != nil {
		ctx.Error(err)
		return
	}

	userID, err := bindUserID(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	favorite, err := c.favoriteService.Add(ctx.Request.Context(), userID, resource(id))
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, favorite)
}

func (c *FavoriteController) remove(ctx *gin.Context, param, notFoundMsg string, resource func(uint) models.Resource) {
	id, err := parseID(ctx, param, notFoundMsg)
	if err != nil {
		ctx.Error(err)
		return
	}

	userID, err := bindUserID(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	if err := c.favoriteService.Remove(ctx.Request.Context(), userID, resource(id)); err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, utils.MessageBody(services.MsgFavoriteDeleted))
}

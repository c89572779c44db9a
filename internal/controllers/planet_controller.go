package controllers

import (
	"net/http"

	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/services"
	"github.com/SketchShifter/starwars_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// PlanetController 惑星に関するコントローラー
type PlanetController struct {
	planetService services.PlanetService
}

// NewPlanetController PlanetControllerを作成
func NewPlanetController(planetService services.PlanetService) *PlanetController {
	return &PlanetController{
		planetService: planetService,
	}
}

// List 惑星一覧を取得
func (c *PlanetController) List(ctx *gin.Context) {
	planets, err := c.planetService.List(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, planets)
}

// GetByID IDで惑星を取得
func (c *PlanetController) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx, "planet_id", services.MsgPlanetNotFound)
	if err != nil {
		ctx.Error(err)
		return
	}

	planet, err := c.planetService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, planet)
}

// Create 惑星を作成
func (c *PlanetController) Create(ctx *gin.Context) {
	var patch models.Patch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.Error(utils.BadRequest(services.MsgInvalidBody))
		return
	}

	planet, err := c.planetService.Create(ctx.Request.Context(), patch)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, planet)
}

// Update 惑星を更新
func (c *PlanetController) Update(ctx *gin.Context) {
	id, err := parseID(ctx, "planet_id", services.MsgPlanetNotFound)
	if err != nil {
		ctx.Error(err)
		return
	}

	var patch models.Patch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.Error(utils.BadRequest(services.MsgInvalidBody))
		return
	}

	planet, err := c.planetService.Update(ctx.Request.Context(), id, patch)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, planet)
}

// Delete 惑星を削除
func (c *PlanetController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx, "planet_id", services.MsgPlanetNotFound)
	if err != nil {
		ctx.Error(err)
		return
	}

	if err := c.planetService.Delete(ctx.Request.Context(), id); err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, utils.MessageBody(services.MsgPlanetDeleted))
}

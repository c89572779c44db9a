package routes

import (
	"strings"

	"github.com/SketchShifter/starwars_backend/internal/config"
	"github.com/SketchShifter/starwars_backend/internal/controllers"
	"github.com/SketchShifter/starwars_backend/internal/middlewares"
	"github.com/SketchShifter/starwars_backend/internal/repository"
	"github.com/SketchShifter/starwars_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Version アプリケーションバージョン
const Version = "1.0.0"

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// Ginルーターを作成
	r := gin.New()

	// 末尾スラッシュ有無の両方を直接登録するのでリダイレクトはしない
	r.RedirectTrailingSlash = false

	// ミドルウェアを設定
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.ErrorMiddleware(logger))
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// サービスを作成
	planetService := services.NewPlanetService(planetRepo)
	characterService := services.NewCharacterService(characterRepo)
	userService := services.NewUserService(userRepo, favoriteRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, userRepo)
	healthService := services.NewHealthService(db, Version, logger)

	// コントローラーを作成
	planetController := controllers.NewPlanetController(planetService)
	peopleController := controllers.NewPeopleController(characterService)
	userController := controllers.NewUserController(userService)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	healthController := controllers.NewHealthController(healthService)
	sitemapController := controllers.NewSitemapController(r.Routes)

	handle(r, "GET", "/", sitemapController.Index)
	handle(r, "GET", "/health", healthController.Check)

	// 登場人物ルート
	people := r.Group("/people")
	{
		handle(people, "GET", "", peopleController.List)
		handle(people, "POST", "", peopleController.Create)
		handle(people, "GET", "/:people_id", peopleController.GetByID)
		handle(people, "PUT", "/:people_id", peopleController.Update)
		handle(people, "DELETE", "/:people_id", peopleController.Delete)
	}

	// 惑星ルート
	planets := r.Group("/planets")
	{
		handle(planets, "GET", "", planetController.List)
		handle(planets, "POST", "", planetController.Create)
		handle(planets, "GET", "/:planet_id", planetController.GetByID)
		handle(planets, "PUT", "/:planet_id", planetController.Update)
		handle(planets, "DELETE", "/:planet_id", planetController.Delete)
	}

	// ユーザールート
	users := r.Group("/users")
	{
		handle(users, "GET", "", userController.List)
		handle(users, "GET", "/favorites", userController.GetFavorites)
	}

	// お気に入りルート
	favorite := r.Group("/favorite")
	{
		handle(favorite, "POST", "/planet/:planet_id", favoriteController.AddPlanet)
		handle(favorite, "DELETE", "/planet/:planet_id", favoriteController.RemovePlanet)
		handle(favorite, "POST", "/people/:character_id", favoriteController.AddCharacter)
		handle(favorite, "DELETE", "/people/:character_id", favoriteController.RemoveCharacter)
	}

	logger.Debug().Int("routes", len(r.Routes())).Msg("ルーターを構築しました")

	return r
}

// handle 末尾スラッシュ有り・無しの両方でハンドラーを登録
func handle(rg gin.IRoutes, method, path string, h gin.HandlerFunc) {
	rg.Handle(method, path, h)
	if path == "/" {
		return
	}
	if strings.HasSuffix(path, "/") {
		rg.Handle(method, strings.TrimSuffix(path, "/"), h)
		return
	}
	rg.Handle(method, path+"/", h)
}

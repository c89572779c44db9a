package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SketchShifter/starwars_backend/internal/config"
	"github.com/SketchShifter/starwars_backend/internal/logging"
	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
}

func newClient(t *testing.T) *apiClient {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{GinMode: gin.TestMode}}
	db := testutil.NewDB(t)
	return &apiClient{t: t, router: SetupRouter(cfg, db, logging.Nop()), db: db}
}

func (c *apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	assert.Equal(t, map[string]string{"error": message}, decode[map[string]string](t, w))
}

func TestPlanetRoutes(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/planets", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = c.do(http.MethodPost, "/planets", `{"name":"Tatooine","climate":"arid","population":200000}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Planet](t, w)
	require.NotZero(t, created.ID)

	w = c.do(http.MethodGet, fmt.Sprintf("/planets/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(
		`{"id":%d,"name":"Tatooine","climate":"arid","population":200000,"terrain":null,"diameter":null}`,
		created.ID), w.Body.String())

	w = c.do(http.MethodPut, fmt.Sprintf("/planets/%d", created.ID), `{"terrain":"desert"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Planet](t, w)
	assert.Equal(t, "desert", *updated.Terrain)
	assert.Equal(t, "arid", *updated.Climate)

	w = c.do(http.MethodDelete, fmt.Sprintf("/planets/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Planet deleted successfully"}`, w.Body.String())

	assertError(t, c.do(http.MethodGet, fmt.Sprintf("/planets/%d", created.ID), ""), http.StatusNotFound, "Planet not found")
	assertError(t, c.do(http.MethodDelete, fmt.Sprintf("/planets/%d", created.ID), ""), http.StatusNotFound, "Planet not found")
}

func TestPlanetRoutesErrors(t *testing.T) {
	c := newClient(t)

	assertError(t, c.do(http.MethodGet, "/planets/999999", ""), http.StatusNotFound, "Planet not found")
	assertError(t, c.do(http.MethodGet, "/planets/abc", ""), http.StatusNotFound, "Planet not found")
	assertError(t, c.do(http.MethodPut, "/planets/999999", `{"name":"x"}`), http.StatusNotFound, "Planet not found")
	assertError(t, c.do(http.MethodPost, "/planets", `{"climate":"arid"}`), http.StatusBadRequest, `field "name" is required`)
	assertError(t, c.do(http.MethodPost, "/planets", `{"name":"x","id":5}`), http.StatusBadRequest, `unknown field "id"`)
	assertError(t, c.do(http.MethodPost, "/planets", `{"name":"x","population":"lots"}`), http.StatusBadRequest, `field "population" must be an integer or null`)
	assertError(t, c.do(http.MethodPost, "/planets", `not json`), http.StatusBadRequest, "Invalid request body")
}

func TestPeopleRoutes(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/people/", `{"name":"Luke Skywalker","height":172,"eye_color":"blue"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	luke := decode[models.Character](t, w)

	// PUT は name だけを変える
	w = c.do(http.MethodPut, fmt.Sprintf("/people/%d/", luke.ID), `{"name":"Luke"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Character](t, w)
	assert.Equal(t, "Luke", updated.Name)
	assert.Equal(t, 172, *updated.Height)
	assert.Equal(t, "blue", *updated.EyeColor)

	w = c.do(http.MethodGet, "/people", "")
	assert.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Character](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Luke", list[0].Name)

	w = c.do(http.MethodDelete, fmt.Sprintf("/people/%d", luke.ID), "")
	assert.JSONEq(t, `{"message":"Character deleted successfully"}`, w.Body.String())

	assertError(t, c.do(http.MethodGet, fmt.Sprintf("/people/%d", luke.ID), ""), http.StatusNotFound, "Character not found")
	assertError(t, c.do(http.MethodPut, "/people/x", `{}`), http.StatusNotFound, "Character not found")
}

func TestFavoriteRoutes(t *testing.T) {
	c := newClient(t)
	user := &models.User{Name: "Leia", Email: "leia@alderaan.gov"}
	testutil.MustCreate(t, c.db, user)
	body := fmt.Sprintf(`{"user_id":%d}`, user.ID)

	w := c.do(http.MethodPost, "/favorite/planet/2", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, fmt.Sprintf(`{"id":1,"user_id":%d,"resource_type":"planet","resource_id":2}`, user.ID), w.Body.String())

	// 数字だけの文字列も user_id として受け付ける
	w = c.do(http.MethodPost, "/favorite/people/5/", fmt.Sprintf(`{"user_id":"%d"}`, user.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.do(http.MethodGet, fmt.Sprintf("/users/favorites?user_id=%d", user.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Favorite](t, w), 2)

	w = c.do(http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	users := decode[[]models.User](t, w)
	require.Len(t, users, 1)
	assert.Len(t, users[0].Favorites, 2)

	w = c.do(http.MethodDelete, "/favorite/planet/2", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Favorite deleted successfully"}`, w.Body.String())

	// 削除したお気に入りは一覧に出ない
	w = c.do(http.MethodGet, fmt.Sprintf("/users/favorites/?user_id=%d", user.ID), "")
	favorites := decode[[]models.Favorite](t, w)
	require.Len(t, favorites, 1)
	assert.Equal(t, models.ResourceTypeCharacter, favorites[0].ResourceType)

	assertError(t, c.do(http.MethodDelete, "/favorite/planet/2", body), http.StatusNotFound, "Favorite not found")

	w = c.do(http.MethodDelete, "/favorite/people/5", body)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFavoriteRoutesErrors(t *testing.T) {
	c := newClient(t)

	assertError(t, c.do(http.MethodPost, "/favorite/planet/1", `{}`), http.StatusBadRequest, "User ID is required")
	assertError(t, c.do(http.MethodPost, "/favorite/planet/1", ""), http.StatusBadRequest, "User ID is required")
	assertError(t, c.do(http.MethodPost, "/favorite/planet/1", `{"user_id":0}`), http.StatusBadRequest, "User ID is required")
	assertError(t, c.do(http.MethodPost, "/favorite/people/1", `{"user_id":"x"}`), http.StatusBadRequest, "User ID is required")
	assertError(t, c.do(http.MethodPost, "/favorite/people/1", `{"user_id":null}`), http.StatusBadRequest, "User ID is required")
	assertError(t, c.do(http.MethodPost, "/favorite/people/1", `{"user_id":"77"}`), http.StatusNotFound, "User not found")
	assertError(t, c.do(http.MethodPost, "/favorite/planet/1", `{"user_id":77}`), http.StatusNotFound, "User not found")
	assertError(t, c.do(http.MethodDelete, "/favorite/people/1", `{}`), http.StatusBadRequest, "User ID is required")
	assertError(t, c.do(http.MethodPost, "/favorite/planet/abc", `{"user_id":1}`), http.StatusNotFound, "Planet not found")

	var count int64
	require.NoError(t, c.db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Zero(t, count)

	assertError(t, c.do(http.MethodGet, "/users/favorites", ""), http.StatusBadRequest, "User ID is required")
	assertError(t, c.do(http.MethodGet, "/users/favorites?user_id=abc", ""), http.StatusBadRequest, "User ID must be an integer")
	assertError(t, c.do(http.MethodGet, "/users/favorites?user_id=12", ""), http.StatusNotFound, "User not found")
}

func TestUsersListEmptyFavorites(t *testing.T) {
	c := newClient(t)
	testutil.MustCreate(t, c.db, &models.User{Name: "Han", Email: "han@falcon.io"})

	w := c.do(http.MethodGet, "/users/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Han","email":"han@falcon.io","favorites":[]}]`, w.Body.String())
}

func TestSitemapAndHealth(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	sitemap := decode[struct {
		Routes []struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"routes"`
	}](t, w)
	assert.Len(t, sitemap.Routes, 18)
	for _, r := range sitemap.Routes {
		if r.Path != "/" {
			assert.NotEqual(t, '/', rune(r.Path[len(r.Path)-1]), r.Path)
		}
	}

	w = c.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]string](t, w)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, Version, health["version"])

	sqlDB, err := c.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w = c.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unavailable", decode[map[string]string](t, w)["database"])
}

func TestUnknownRoute(t *testing.T) {
	c := newClient(t)
	w := c.do(http.MethodGet, "/starships", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

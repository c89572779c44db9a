package controllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// RouteEntry サイトマップの1行
type RouteEntry struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SitemapController 登録済みルート一覧を返すコントローラー
type SitemapController struct {
	routes func() gin.RoutesInfo
}

// NewSitemapController SitemapControllerを作成
func NewSitemapController(routes func() gin.RoutesInfo) *SitemapController {
	return &SitemapController{
		routes: routes,
	}
}

// Index ルート一覧を取得
//
// 末尾スラッシュ付きの別名は除く。
func (c *SitemapController) Index(ctx *gin.Context) {
	entries := []RouteEntry{}
	for _, r := range c.routes() {
		if r.Path != "/" && strings.HasSuffix(r.Path, "/") {
			continue
		}
		entries = append(entries, RouteEntry{Method: r.Method, Path: r.Path})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Method < entries[j].Method
	})

	ctx.JSON(http.StatusOK, gin.H{"routes": entries})
}

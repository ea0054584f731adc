package admin

import (
	"github.com/gin-gonic/gin"
	cs "github.com/webtor-io/common-services"

	"github.com/cinebox-io/web-catalog/services/auth"
	"github.com/cinebox-io/web-catalog/services/storage"
)

type Handler struct {
	pg    *cs.PG
	store *storage.Storage
}

func RegisterHandler(r *gin.Engine, pg *cs.PG, store *storage.Storage) {
	h := &Handler{
		pg:    pg,
		store: store,
	}
	g := r.Group("/admin", auth.RequireAdmin)
	g.POST("/movies", h.createMovie)
	g.PUT("/movies/:content_id", h.updateMovie)
	g.POST("/shows", h.createTvShow)
	g.PUT("/shows/:content_id", h.updateTvShow)
	g.POST("/seasons", h.createSeason)
	g.POST("/episodes", h.createEpisode)
	g.DELETE("/content/:content_id", h.deleteContent)
}

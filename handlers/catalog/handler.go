package catalog

import (
	"github.com/gin-gonic/gin"
	cs "github.com/webtor-io/common-services"

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
	r.GET("/content", h.index)
	r.GET("/content/:content_id", h.details)
	r.GET("/popular", h.popular)
	r.GET("/recent", h.recent)
	r.GET("/dubbers", h.dubbers)
}

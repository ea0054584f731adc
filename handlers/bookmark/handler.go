package bookmark

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	cs "github.com/webtor-io/common-services"

	"github.com/cinebox-io/web-catalog/models"
	"github.com/cinebox-io/web-catalog/services/auth"
)

type Handler struct {
	pg *cs.PG
}

func RegisterHandler(r *gin.Engine, pg *cs.PG) {
	h := &Handler{
		pg: pg,
	}
	r.GET("/bookmarks", auth.RequireAuth, h.index)
	r.POST("/content/:content_id/bookmark", auth.RequireAuth, h.toggle)
}

func (s *Handler) index(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	u := auth.GetUserFromContext(c)
	bookmarks, err := models.GetBookmarksForUser(c.Request.Context(), db, u.ID)
	if err != nil {
		log.WithError(err).Error("failed to list bookmarks")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": bookmarks})
}

func (s *Handler) toggle(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	id, err := uuid.FromString(c.Param("content_id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	u := auth.GetUserFromContext(c)
	bookmarked, err := models.ToggleBookmark(c.Request.Context(), db, u.ID, id)
	if err != nil {
		log.WithError(err).Error("failed to toggle bookmark")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

package catalog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/cinebox-io/web-catalog/models"
	"github.com/cinebox-io/web-catalog/services/catalog"
)

func (s *Handler) index(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	p := catalog.ParseListParams(c.Request.URL.Query())
	list, err := catalog.GetContent(c.Request.Context(), db, p)
	if err != nil {
		log.WithError(err).Error("failed to list content")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":  list,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

func (s *Handler) popular(c *gin.Context) {
	s.ranked(c, catalog.GetPopularContent)
}

func (s *Handler) recent(c *gin.Context) {
	s.ranked(c, catalog.GetRecentContent)
}

type rankedFunc func(ctx context.Context, db *pg.DB, limit int, contentType models.ContentType) ([]*models.Content, error)

func (s *Handler) ranked(c *gin.Context, get rankedFunc) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = catalog.DefaultLimit
	}
	var contentType models.ContentType
	switch models.ContentType(c.Query("contentType")) {
	case models.ContentTypeMovie:
		contentType = models.ContentTypeMovie
	case models.ContentTypeTv:
		contentType = models.ContentTypeTv
	}
	list, err := get(c.Request.Context(), db, limit, contentType)
	if err != nil {
		log.WithError(err).Error("failed to list ranked content")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (s *Handler) details(c *gin.Context) {
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
	content, err := models.GetContentWithDetails(c.Request.Context(), db, id)
	if err != nil {
		log.WithError(err).Error("failed to fetch content details")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if content == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"content": content,
		"urls":    s.signedURLs(content),
	})
}

// signedURLs resolves the presentation keys of the content to presigned
// read URLs. Keys that fail to sign are skipped, browsing must not break
// on a single bad key.
func (s *Handler) signedURLs(content *models.Content) map[string]string {
	urls := make(map[string]string)
	if s.store == nil {
		return urls
	}
	sign := func(name string, key *string) {
		if key == nil || *key == "" {
			return
		}
		u, err := s.store.SignedURL(*key)
		if err != nil {
			log.WithError(err).Warnf("failed to sign %v url", name)
			return
		}
		urls[name] = u
	}
	sign("poster", content.PosterKey)
	sign("backdrop", content.BackdropKey)
	sign("trailer", content.TrailerKey)
	return urls
}

func (s *Handler) dubbers(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	dubbers, err := models.GetDubbers(c.Request.Context(), db)
	if err != nil {
		log.WithError(err).Error("failed to list dubbers")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": dubbers})
}

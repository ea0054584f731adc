package download

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	cs "github.com/webtor-io/common-services"

	"github.com/cinebox-io/web-catalog/models"
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
	r.POST("/content/:content_id/download", h.download)
}

type downloadForm struct {
	EpisodeID *string `json:"episode_id"`
}

// download resolves the requested file key (the movie file, or the video
// file of one episode), logs the download event and answers with a
// presigned URL.
func (s *Handler) download(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	if s.store == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("storage not configured"))
		return
	}
	id, err := uuid.FromString(c.Param("content_id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var f downloadForm
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	content, err := models.GetContentWithDetails(c.Request.Context(), db, id)
	if err != nil {
		log.WithError(err).Error("failed to fetch content for download")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if content == nil {
		c.Status(http.StatusNotFound)
		return
	}
	key, d, err := s.resolveFile(content, f.EpisodeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	u := auth.GetUserFromContext(c)
	if u.HasAuth() {
		d.UserID = &u.ID
	}
	err = models.RecordDownload(c.Request.Context(), db, d)
	if err != nil {
		log.WithError(err).Error("failed to record download")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	signed, err := s.store.SignedURL(key)
	if err != nil {
		log.WithError(err).Error("failed to sign download url")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": signed})
}

func (s *Handler) resolveFile(content *models.Content, episodeID *string) (string, *models.Download, error) {
	d := &models.Download{ContentID: content.ContentID}
	if content.ContentType == models.ContentTypeMovie {
		if content.Movie == nil || content.Movie.MovieFileKey == nil {
			return "", nil, errors.New("movie file not available")
		}
		d.MovieID = &content.Movie.ContentID
		return *content.Movie.MovieFileKey, d, nil
	}
	if episodeID == nil {
		return "", nil, errors.New("episode_id required for tv content")
	}
	eID, err := uuid.FromString(*episodeID)
	if err != nil {
		return "", nil, errors.New("invalid episode_id")
	}
	if content.TvShow != nil {
		for _, season := range content.TvShow.Seasons {
			for _, e := range season.Episodes {
				if e.EpisodeID != eID {
					continue
				}
				if e.VideoFileKey == nil {
					return "", nil, errors.New("episode file not available")
				}
				d.EpisodeID = &e.EpisodeID
				return *e.VideoFileKey, d, nil
			}
		}
	}
	return "", nil, errors.New("episode not found")
}

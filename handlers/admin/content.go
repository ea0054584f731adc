package admin

import (
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/cinebox-io/web-catalog/models"
	"github.com/cinebox-io/web-catalog/services/auth"
	"github.com/cinebox-io/web-catalog/services/catalog"
)

type movieForm struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Genre           string   `json:"genre"`
	ReleaseYear     *int16   `json:"release_year"`
	Status          string   `json:"status"`
	PosterKey       *string  `json:"poster_key"`
	BackdropKey     *string  `json:"backdrop_key"`
	TrailerKey      *string  `json:"trailer_key"`
	DubberName      string   `json:"dubber_name"`
	DurationMinutes *int     `json:"duration_minutes"`
	MovieFileKey    *string  `json:"movie_file_key"`
	FileSizeMb      *float64 `json:"file_size_mb"`
}

type tvShowForm struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Genre       string                `json:"genre"`
	ReleaseYear *int16                `json:"release_year"`
	Status      string                `json:"status"`
	PosterKey   *string               `json:"poster_key"`
	BackdropKey *string               `json:"backdrop_key"`
	TrailerKey  *string               `json:"trailer_key"`
	DubberName  string                `json:"dubber_name"`
	Seasons     []catalog.SeasonInput `json:"seasons"`
}

type movieUpdateForm struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Genre           *string  `json:"genre"`
	ReleaseYear     *int16   `json:"release_year"`
	Status          *string  `json:"status"`
	PosterKey       *string  `json:"poster_key"`
	BackdropKey     *string  `json:"backdrop_key"`
	TrailerKey      *string  `json:"trailer_key"`
	IsActive        *bool    `json:"is_active"`
	DubberName      *string  `json:"dubber_name"`
	DurationMinutes *int     `json:"duration_minutes"`
	MovieFileKey    *string  `json:"movie_file_key"`
	FileSizeMb      *float64 `json:"file_size_mb"`
}

type tvShowUpdateForm struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Genre       *string               `json:"genre"`
	ReleaseYear *int16                `json:"release_year"`
	Status      *string               `json:"status"`
	PosterKey   *string               `json:"poster_key"`
	BackdropKey *string               `json:"backdrop_key"`
	TrailerKey  *string               `json:"trailer_key"`
	IsActive    *bool                 `json:"is_active"`
	DubberName  *string               `json:"dubber_name"`
	Seasons     []catalog.SeasonInput `json:"seasons"`
}

func (s *Handler) createMovie(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	var f movieForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := auth.GetUserFromContext(c)
	content, err := catalog.CreateMovie(c.Request.Context(), db, catalog.MovieData{
		Title:           f.Title,
		Description:     f.Description,
		Genre:           f.Genre,
		ReleaseYear:     f.ReleaseYear,
		Status:          models.ContentStatus(f.Status),
		PosterKey:       f.PosterKey,
		BackdropKey:     f.BackdropKey,
		TrailerKey:      f.TrailerKey,
		DubberName:      f.DubberName,
		UploaderID:      &u.ID,
		DurationMinutes: f.DurationMinutes,
		MovieFileKey:    f.MovieFileKey,
		FileSizeMb:      f.FileSizeMb,
	})
	if err != nil {
		log.WithError(err).Error("failed to create movie")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	size := "unknown size"
	if f.FileSizeMb != nil {
		size = humanize.Bytes(uint64(*f.FileSizeMb * 1024 * 1024))
	}
	log.Infof("created movie %v (%v)", content.ContentID, size)
	c.JSON(http.StatusCreated, content)
}

func (s *Handler) createTvShow(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	var f tvShowForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := auth.GetUserFromContext(c)
	content, err := catalog.CreateTvShow(c.Request.Context(), db, catalog.TvShowData{
		Title:       f.Title,
		Description: f.Description,
		Genre:       f.Genre,
		ReleaseYear: f.ReleaseYear,
		Status:      models.ContentStatus(f.Status),
		PosterKey:   f.PosterKey,
		BackdropKey: f.BackdropKey,
		TrailerKey:  f.TrailerKey,
		DubberName:  f.DubberName,
		UploaderID:  &u.ID,
		Seasons:     f.Seasons,
	})
	if err != nil {
		log.WithError(err).Error("failed to create tv show")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	log.Infof("created tv show %v with %d seasons", content.ContentID, len(f.Seasons))
	c.JSON(http.StatusCreated, content)
}

func (s *Handler) updateMovie(c *gin.Context) {
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
	var f movieUpdateForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content, err := catalog.UpdateMovie(c.Request.Context(), db, id, catalog.MovieUpdate{
		Title:           f.Title,
		Description:     f.Description,
		Genre:           f.Genre,
		ReleaseYear:     f.ReleaseYear,
		Status:          statusFromForm(f.Status),
		PosterKey:       f.PosterKey,
		BackdropKey:     f.BackdropKey,
		TrailerKey:      f.TrailerKey,
		IsActive:        f.IsActive,
		Dubber:          catalog.DubberRefFromForm(f.DubberName),
		DurationMinutes: f.DurationMinutes,
		MovieFileKey:    f.MovieFileKey,
		FileSizeMb:      f.FileSizeMb,
	})
	if err != nil {
		s.abortWithCatalogError(c, err, "failed to update movie")
		return
	}
	c.JSON(http.StatusOK, content)
}

func (s *Handler) updateTvShow(c *gin.Context) {
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
	var f tvShowUpdateForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content, err := catalog.UpdateTvShow(c.Request.Context(), db, id, catalog.TvShowUpdate{
		Title:       f.Title,
		Description: f.Description,
		Genre:       f.Genre,
		ReleaseYear: f.ReleaseYear,
		Status:      statusFromForm(f.Status),
		PosterKey:   f.PosterKey,
		BackdropKey: f.BackdropKey,
		TrailerKey:  f.TrailerKey,
		IsActive:    f.IsActive,
		Dubber:      catalog.DubberRefFromForm(f.DubberName),
		Seasons:     f.Seasons,
	})
	if err != nil {
		s.abortWithCatalogError(c, err, "failed to update tv show")
		return
	}
	c.JSON(http.StatusOK, content)
}

func (s *Handler) deleteContent(c *gin.Context) {
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
	var deleter catalog.KeyDeleter
	if s.store != nil {
		deleter = s.store
	}
	err = catalog.DeleteContent(c.Request.Context(), db, deleter, id)
	if err != nil {
		s.abortWithCatalogError(c, err, "failed to delete content")
		return
	}
	log.Infof("deleted content %v", id)
	c.Status(http.StatusNoContent)
}

func (s *Handler) abortWithCatalogError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, catalog.ErrContentNotFound), errors.Is(err, catalog.ErrSeasonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrStorageNotConfigured):
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error(msg)
		_ = c.AbortWithError(http.StatusInternalServerError, err)
	}
}

func statusFromForm(s *string) *models.ContentStatus {
	if s == nil {
		return nil
	}
	st := models.ContentStatus(*s)
	return &st
}

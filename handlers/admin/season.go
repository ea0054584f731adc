package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/cinebox-io/web-catalog/services/catalog"
)

type seasonForm struct {
	TvShowID     string `json:"tv_show_id" binding:"required"`
	SeasonNumber int    `json:"season_number"`
	Title        string `json:"title"`
}

type episodeForm struct {
	SeasonID        string  `json:"season_id" binding:"required"`
	EpisodeNumber   int     `json:"episode_number"`
	Title           string  `json:"title"`
	VideoFileKey    *string `json:"video_file_key"`
	StillKey        *string `json:"still_key"`
	DurationMinutes *int    `json:"duration_minutes"`
}

func (s *Handler) createSeason(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	var f seasonForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	showID, err := uuid.FromString(f.TvShowID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tv_show_id"})
		return
	}
	season, err := catalog.CreateSeason(c.Request.Context(), db, catalog.SeasonData{
		TvShowID:     showID,
		SeasonNumber: f.SeasonNumber,
		Title:        f.Title,
	})
	if err != nil {
		s.abortWithCatalogError(c, err, "failed to create season")
		return
	}
	c.JSON(http.StatusCreated, season)
}

func (s *Handler) createEpisode(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	var f episodeForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seasonID, err := uuid.FromString(f.SeasonID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season_id"})
		return
	}
	episode, err := catalog.CreateEpisode(c.Request.Context(), db, catalog.EpisodeData{
		SeasonID:        seasonID,
		EpisodeNumber:   f.EpisodeNumber,
		Title:           f.Title,
		VideoFileKey:    f.VideoFileKey,
		StillKey:        f.StillKey,
		DurationMinutes: f.DurationMinutes,
	})
	if err != nil {
		s.abortWithCatalogError(c, err, "failed to create episode")
		return
	}
	c.JSON(http.StatusCreated, episode)
}

package review

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
	r.GET("/content/:content_id/reviews", h.index)
	r.POST("/content/:content_id/reviews", auth.RequireAuth, h.create)
}

type reviewForm struct {
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
	ReviewText *string `json:"review_text"`
}

func (s *Handler) index(c *gin.Context) {
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
	reviews, err := models.GetReviewsForContent(c.Request.Context(), db, id)
	if err != nil {
		log.WithError(err).Error("failed to list reviews")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": reviews})
}

func (s *Handler) create(c *gin.Context) {
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
	var f reviewForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := auth.GetUserFromContext(c)
	r := &models.Review{
		UserID:     u.ID,
		ContentID:  id,
		Rating:     f.Rating,
		ReviewText: f.ReviewText,
	}
	err = models.CreateReview(c.Request.Context(), db, r)
	if errors.Is(err, models.ErrReviewExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to create review")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

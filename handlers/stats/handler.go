package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
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
	r.GET("/admin/stats", auth.RequireAdmin, h.dashboard)
	r.GET("/profile/stats", auth.RequireAuth, h.user)
}

func (s *Handler) dashboard(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	st, err := models.GetDashboardStats(c.Request.Context(), db)
	if err != nil {
		log.WithError(err).Error("failed to fetch dashboard stats")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Handler) user(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	u := auth.GetUserFromContext(c)
	st, err := models.GetUserStats(c.Request.Context(), db, u.ID)
	if err != nil {
		log.WithError(err).Error("failed to fetch user stats")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

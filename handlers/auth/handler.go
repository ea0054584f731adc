package auth

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
	r.POST("/auth/login", h.login)
	r.POST("/auth/logout", h.logout)
	r.GET("/auth/me", h.me)
}

type loginForm struct {
	Email string `json:"email" binding:"required,email"`
}

func (s *Handler) login(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
		return
	}
	var f loginForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, created, err := models.GetOrCreateUser(c.Request.Context(), db, f.Email)
	if err != nil {
		log.WithError(err).Error("failed to get or create user")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if created {
		log.Infof("created user %v", u.UserID)
	}
	err = auth.StoreUserInSession(c, u)
	if err != nil {
		log.WithError(err).Error("failed to store session")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": u.UserID, "email": u.Email})
}

func (s *Handler) logout(c *gin.Context) {
	err := auth.ClearSession(c)
	if err != nil {
		log.WithError(err).Error("failed to clear session")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Handler) me(c *gin.Context) {
	u := auth.GetUserFromContext(c)
	if !u.HasAuth() {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":  u.ID,
		"email":    u.Email,
		"is_admin": u.IsAdmin,
	})
}

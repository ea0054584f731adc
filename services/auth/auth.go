package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	"github.com/cinebox-io/web-catalog/models"
	sv "github.com/cinebox-io/web-catalog/services/common"
)

const (
	sessionName   = "catalog"
	sessionUserID = "user_id"
	contextKey    = "auth_user"
)

type User struct {
	ID      uuid.UUID
	Email   string
	IsAdmin bool
}

func (s *User) HasAuth() bool {
	return s.Email != ""
}

type Auth struct {
	pg     *cs.PG
	secret string
}

func New(c *cli.Context, pg *cs.PG) *Auth {
	return &Auth{
		pg:     pg,
		secret: c.String(sv.SessionSecretFlag),
	}
}

// RegisterHandler installs the cookie session store and the middleware
// that resolves the session user into the request context.
func (s *Auth) RegisterHandler(r *gin.Engine) {
	store := cookie.NewStore([]byte(s.secret))
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(s.loadUser)
}

func (s *Auth) loadUser(c *gin.Context) {
	sess := sessions.Default(c)
	raw, ok := sess.Get(sessionUserID).(string)
	if !ok {
		c.Next()
		return
	}
	id, err := uuid.FromString(raw)
	if err != nil {
		c.Next()
		return
	}
	db := s.pg.Get()
	if db == nil {
		c.Next()
		return
	}
	u, err := models.GetUserByID(c.Request.Context(), db, id)
	if err != nil {
		log.WithError(err).Error("failed to load session user")
		c.Next()
		return
	}
	if u != nil {
		c.Set(contextKey, &User{
			ID:      u.UserID,
			Email:   u.Email,
			IsAdmin: u.IsAdmin,
		})
	}
	c.Next()
}

func GetUserFromContext(c *gin.Context) *User {
	if v, ok := c.Get(contextKey); ok {
		if u, ok := v.(*User); ok {
			return u
		}
	}
	return &User{}
}

// StoreUserInSession binds the user id to the cookie session.
func StoreUserInSession(c *gin.Context, u *models.User) error {
	sess := sessions.Default(c)
	sess.Set(sessionUserID, u.UserID.String())
	return sess.Save()
}

func ClearSession(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}

// RequireAuth aborts with 401 when no authenticated user is present.
func RequireAuth(c *gin.Context) {
	u := GetUserFromContext(c)
	if !u.HasAuth() {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Next()
}

// RequireAdmin aborts with 401 for anonymous callers and 403 for
// authenticated non-admins. Every mutating catalog route hangs off this.
func RequireAdmin(c *gin.Context) {
	u := GetUserFromContext(c)
	if !u.HasAuth() {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if !u.IsAdmin {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	c.Next()
}

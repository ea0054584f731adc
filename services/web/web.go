package web

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	hostFlag = "host"
	portFlag = "port"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   hostFlag,
			Usage:  "listening host",
			Value:  "",
			EnvVar: "WEB_HOST",
		},
		cli.IntFlag{
			Name:   portFlag,
			Usage:  "listening port",
			Value:  8080,
			EnvVar: "WEB_PORT",
		},
	)
}

// Web serves the gin engine on the configured address.
type Web struct {
	host string
	port int
	r    *gin.Engine
	ln   net.Listener
}

func New(c *cli.Context, r *gin.Engine) *Web {
	return &Web{
		host: c.String(hostFlag),
		port: c.Int(portFlag),
		r:    r,
	}
}

func (s *Web) Serve() error {
	addr := fmt.Sprintf("%v:%v", s.host, s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.ln = ln
	log.Infof("serving web at %v", addr)
	return http.Serve(ln, s.r)
}

func (s *Web) Close() {
	if s.ln != nil {
		_ = s.ln.Close()
	}
}

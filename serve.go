package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	ha "github.com/cinebox-io/web-catalog/handlers/admin"
	wau "github.com/cinebox-io/web-catalog/handlers/auth"
	hb "github.com/cinebox-io/web-catalog/handlers/bookmark"
	hc "github.com/cinebox-io/web-catalog/handlers/catalog"
	hd "github.com/cinebox-io/web-catalog/handlers/download"
	hr "github.com/cinebox-io/web-catalog/handlers/review"
	hs "github.com/cinebox-io/web-catalog/handlers/stats"
	"github.com/cinebox-io/web-catalog/services/auth"
	"github.com/cinebox-io/web-catalog/services/common"
	"github.com/cinebox-io/web-catalog/services/storage"
	w "github.com/cinebox-io/web-catalog/services/web"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterPGFlags(c.Flags)
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = cs.RegisterS3ClientFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = common.RegisterFlags(c.Flags)
	c.Flags = storage.RegisterFlags(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting DB
	pg := cs.NewPG(c)
	defer pg.Close()

	// Setting Migrations
	err := pgMigrate(c)
	if err != nil {
		return err
	}

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.String(common.DomainFlag)},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"content-type"},
		MaxAge:           1 * time.Minute,
		AllowCredentials: true,
	}))

	// Setting Web
	web := w.New(c, r)
	servers = append(servers, web)
	defer web.Close()

	// Setting Auth
	a := auth.New(c, pg)
	a.RegisterHandler(r)

	// Setting S3 Client
	s3Cl := cs.NewS3Client(c, cl)

	// Setting Storage
	store := storage.New(c, s3Cl)
	if store == nil {
		log.Warn("catalog bucket not configured, media urls and downloads disabled")
	}

	// Setting AuthHandler
	wau.RegisterHandler(r, pg)

	// Setting CatalogHandler
	hc.RegisterHandler(r, pg, store)

	// Setting AdminHandler
	ha.RegisterHandler(r, pg, store)

	// Setting ReviewHandler
	hr.RegisterHandler(r, pg)

	// Setting BookmarkHandler
	hb.RegisterHandler(r, pg)

	// Setting DownloadHandler
	hd.RegisterHandler(r, pg, store)

	// Setting StatsHandler
	hs.RegisterHandler(r, pg)

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}

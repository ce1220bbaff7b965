package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/snypenet/rate-my-music/config"
	"github.com/snypenet/rate-my-music/logcolors"
	"github.com/snypenet/rate-my-music/middleware"
	"github.com/snypenet/rate-my-music/sentry"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}

func main() {
	conf := config.Get()

	sentry.Init(conf.Configuration.SentryDSN)
	defer sentry.Flush(2 * time.Second)

	a, err := newApp(conf)
	if err != nil {
		log.Fatalf("%s Failed to build application: %v", logcolors.LogServer, err)
	}
	defer a.store.Close()

	router := mux.NewRouter()
	setupRoutes(router, a, conf.Configuration.AdminAccessToken)

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(conf.Configuration.CORSAllowedOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	loggedRouter := middleware.LoggingMiddleware(router)
	handler := c.Handler(loggedRouter)

	addr := ":" + conf.Configuration.Port
	log.Infof("%s Listening on %s", logcolors.LogServer, addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

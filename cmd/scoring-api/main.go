package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib"
	"github.com/weit-project/eit-toolkit/lib/annotation"
	http_annotator "github.com/weit-project/eit-toolkit/lib/annotation/http-annotator"
	"github.com/weit-project/eit-toolkit/lib/scoring"
)

// config structure
type scoringAPIConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Server         struct {
		HttpPort        int           `mapstructure:"http_port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	}
	Annotation struct {
		Url     string
		Timeout time.Duration
	}
}

var config scoringAPIConfig

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/scoring-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port":        8080,
			"shutdown_timeout": "10s",
		},
		"annotation": map[string]interface{}{
			"timeout": "30s",
		},
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newRouter(s server) *gin.Engine {
	r := gin.New()
	r.Use(requestID, gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.Recovery(), cors.Default())
	s.RegisterRoutes(r)
	return r
}

func main() {
	initConfig()

	var annotator annotation.Annotator
	if config.Annotation.Url != "" {
		annotator = http_annotator.NewClient(http_annotator.Config{
			Url:     config.Annotation.Url,
			Timeout: config.Annotation.Timeout,
		})
	} else {
		log.Warn().Msg("no annotation service configured, detectors receive no annotations")
	}

	scorer, err := scoring.NewScorer(annotator, scoring.DefaultDetectors())
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Server.HttpPort),
		Handler: newRouter(server{controller: controller{scorer: scorer}}),
	}

	ctx, cancel := lib.HandleInterrupt(context.Background())
	defer cancel()
	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Int("port", config.Server.HttpPort).Msg("scoring api listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Send()
	}
}

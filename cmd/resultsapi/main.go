package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/w0lphi/SE2Einzelprojekt/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	sigc := make(chan os.Signal, 5)
	signal.Notify(sigc, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	if err := config.Load(); err != nil {
		log.Fatalf("failed to load config due to: %v", err)
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("failed to parse log level %s due to: %v", logLevel, err)
	}
	log.SetLevel(level)

	srv := setup()

	go func() {
		log.Infof("server listening at: %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("error starting server, due to: %v", err)
			sigc <- syscall.SIGTERM
		}
	}()

	<-sigc

	log.Info("gracefully shutting down")

	serverShutdownCtx, serverShutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverShutdownCancel()
	if err := srv.Shutdown(serverShutdownCtx); err != nil {
		log.Errorf("failed to gracefully shutdown the server due to: %v", err)
	}
}

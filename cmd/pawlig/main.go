// Package main boots the PawLig marketplace HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pawlig/pawlig/internal/auth"
	"github.com/pawlig/pawlig/internal/config"
	httpapi "github.com/pawlig/pawlig/internal/http"
	"github.com/pawlig/pawlig/internal/obs"
	"github.com/pawlig/pawlig/internal/service"
	"github.com/pawlig/pawlig/internal/store"
	"github.com/pawlig/pawlig/internal/upload"
)

func main() {
	obs.InitLogger()
	cfg, err := config.Load()
	if err != nil {
		obs.Logger.Error("config_error", "error", err)
		os.Exit(1)
	}
	obs.Logger.Info("service_starting")

	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		obs.Logger.Error("store_open_error", "error", err)
		os.Exit(1)
	}
	defer func() { _ = st.Close() }()

	svc := service.New(st)
	codec := auth.NewCodec(cfg.SessionKey)
	signer := upload.NewHMACSigner(cfg.UploadKey)

	app := httpapi.NewApp(cfg, svc, st, codec, signer)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}

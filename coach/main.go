package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coach/coach/config"
	"coach/coach/controllers"
	"coach/coach/routes"
	"coach/coach/services/llm"
	"coach/coach/services/relay"
	"coach/coach/utils/logging"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()
	if err != nil {
		logging.ErrorLogger.Error("config load error", zap.Error(err))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logging.ErrorLogger.Error("config invalid", zap.Error(err))
		os.Exit(1)
	}

	policy := relay.RolesPermissive
	if cfg.StrictRoles {
		policy = relay.RolesStrict
	}
	svc := relay.NewService(llm.NewAnthropicClient(cfg.APIKey, cfg.ProviderBaseURL), policy)
	chatCtrl := controllers.NewChatController(svc)
	healthCtrl := controllers.NewHealthController(relay.Model)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: routes.NewRouter(chatCtrl, healthCtrl),
	}
	go func() {
		logging.AppLogger.Info("relay listening",
			zap.String("addr", cfg.Addr),
			zap.String("model", relay.Model),
			zap.Bool("strict_roles", cfg.StrictRoles),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
			os.Exit(1)
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
		return
	}
	logging.AppLogger.Info("server shutdown complete")
}

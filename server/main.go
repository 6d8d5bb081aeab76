package main

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/meikuraledutech/pipeline/api"
	"github.com/meikuraledutech/pipeline/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := api.New(api.Options{Logger: logger, Registry: reg})

	logger.Info("listening", zap.String("addr", cfg.Addr()), zap.String("environment", cfg.Environment))
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}

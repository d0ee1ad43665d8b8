package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-api-backend/config"
	"todo-api-backend/ent"
	_ "todo-api-backend/ent/runtime"
	"todo-api-backend/pkg/adapter/controller"
	"todo-api-backend/pkg/infrastructure/datastore"
	"todo-api-backend/pkg/infrastructure/logger"
	"todo-api-backend/pkg/infrastructure/router"
	"todo-api-backend/pkg/registry"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	log := logger.New(logger.OptionsFromConfig())
	zap.ReplaceGlobals(log.Desugar())

	client := newDBClient(log)
	ctrl := newController(client)

	e := router.New(ctrl, log, router.Options{
		BodyLimit: config.C.Server.BodyLimit,
	})

	go func() {
		log.Infow("starting server", "app", config.C.AppName, "env", config.C.AppEnv, "address", config.C.Server.Address)
		if err := e.Start(":" + config.C.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var result error
	if err := e.Shutdown(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := client.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if result != nil {
		log.Errorw("shutdown", "error", result)
	}
	_ = log.Sync()
}

func newDBClient(log *zap.SugaredLogger) *ent.Client {
	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalw("Failed to open db connection", "error", err)
	}
	return client
}

func newController(client *ent.Client) controller.Controller {
	r := registry.New(client)
	return r.NewController()
}

package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/shopapi/internal/app"
	"github.com/polkiloo/shopapi/internal/config"
	"github.com/polkiloo/shopapi/internal/logger"
	"github.com/polkiloo/shopapi/internal/metrics"
	"github.com/polkiloo/shopapi/internal/server/http/handlers"
	"github.com/polkiloo/shopapi/internal/server/http/router"
	"github.com/polkiloo/shopapi/internal/storage/memory"
	"github.com/polkiloo/shopapi/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		memory.Module,
		fx.Provide(func(m *metrics.Metrics) usecase.Recorder { return m }),
		usecase.Module,
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

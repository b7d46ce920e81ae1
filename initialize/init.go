package initialize

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"pageforge/app/controllers"
	"pageforge/app/db"
	jwtutil "pageforge/app/jwt"
	"pageforge/app/middleware"
	"pageforge/app/repo"
	"pageforge/app/services"
	"pageforge/config"
	"pageforge/global"
	"pageforge/router"

	"github.com/fsnotify/fsnotify"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Users   *services.UserService
	Configs *services.ConfigService
}

func Build(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath, func(e fsnotify.Event) {
		global.Logger.Info().Str("file", e.Name).Msg("config file changed, restart to apply")
	})
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Path:     cfg.DB.Path,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := db.Migrate(ctx, gdb, cfg.DB.Driver); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	userRepo := repo.NewUserRepository(gdb)
	configRepo := repo.NewConfigRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	configSvc := services.NewConfigService(configRepo)

	signer := &jwtutil.Signer{
		Secret:   []byte(cfg.JWT.Secret),
		Issuer:   cfg.JWT.Issuer,
		Validity: cfg.SessionValidity(),
	}

	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer)
	cfgCtrl := controllers.NewConfigController(configSvc)
	spaCtrl := controllers.NewSPAController(os.DirFS(cfg.Static.Dir))

	mw := &middleware.Auth{Signer: signer}
	rl := &middleware.RateLimit{
		Client: global.Rdb,
		Limit:  cfg.RateLimit.Limit,
		Window: cfg.RateLimitWindow(),
	}

	h := router.NewRouter(httpCtrl, authCtrl, cfgCtrl, spaCtrl, mw, rl)
	h = middleware.Logging(h)
	h = middleware.Recover(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Users: userSvc, Configs: configSvc}, nil
}

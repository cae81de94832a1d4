package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"buyingbd_storefront/internal/config"
	"buyingbd_storefront/internal/controller"
	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/model"
	"buyingbd_storefront/internal/repository"
	"buyingbd_storefront/internal/router"
	"buyingbd_storefront/internal/service"
	"buyingbd_storefront/internal/task"
	"buyingbd_storefront/pkg/database"
	"buyingbd_storefront/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:           "storefront",
		Usage:          "Buying BD 数字商品店面服务",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "启动 HTTP 服务",
				Action: serve,
			},
			{
				Name:  "reset",
				Usage: "清除某个设备的持久化数据，下次加载回落到种子数据",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "device", Usage: "设备ID", Required: true},
				},
				Action: reset,
			},
			{
				Name:   "seed-dump",
				Usage:  "输出内置商品目录 JSON",
				Action: seedDump,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB // 未配置时为 nil
	Store       service.KVStore
	AiCallLog   repository.AICallLogRepository
	Auth        *service.AuthService
	Advisor     *service.AdvisorService
	Sessions    *service.SessionRegistry
	Limiter     *middleware.CooldownLimiter
	Controllers *router.Controllers

	closers []func() error
}

// Close 释放外部连接
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			d.Logger.Warn("释放资源失败", zap.Error(err))
		}
	}
	_ = d.Logger.Sync()
}

// ==================== 初始化函数 ====================

func initDependencies(ctx context.Context) (*Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	deps := &Dependencies{Config: cfg, Logger: zl}

	// -------- 数据库（db 存储或顾问调用日志） --------
	if cfg.Store.Provider == "db" || cfg.Database.DSN != "" {
		db, err := database.InitDB(database.Options{
			Driver:  cfg.Database.Driver,
			DSN:     cfg.Database.DSN,
			Verbose: cfg.Database.Verbose,
		}, zl, &model.KVRecord{}, &model.AICallLog{})
		if err != nil {
			return nil, err
		}
		deps.DB = db
		deps.AiCallLog = repository.NewAICallLogRepository(db)
		if sqlDB, err := db.DB(); err == nil {
			deps.closers = append(deps.closers, sqlDB.Close)
		}
	}

	// -------- 存储 --------
	store, err := service.NewKVStore(ctx, &service.StoreConfig{
		Provider:    cfg.Store.Provider,
		RedisURL:    cfg.Redis.URL,
		RedisPrefix: cfg.Redis.Prefix,
		S3: service.S3StoreConfig{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Endpoint:  cfg.S3.Endpoint,
			BasePath:  cfg.S3.BasePath,
		},
	}, deps.DB)
	if err != nil {
		return nil, fmt.Errorf("初始化存储失败: %w", err)
	}
	deps.Store = store
	if closer, ok := store.(interface{ Close() error }); ok {
		deps.closers = append(deps.closers, closer.Close)
	}
	zl.Info("存储已就绪", zap.String("provider", cfg.Store.Provider))

	return deps, nil
}

// initServices 初始化认证、顾问、会话与控制器
func initServices(ctx context.Context, deps *Dependencies) error {
	cfg := deps.Config

	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTTL,
		Issuer:          middleware.DefaultJWTConfig().Issuer,
	})

	authSvc, err := service.NewAuthService(cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		return err
	}
	deps.Auth = authSvc

	// -------- 顾问 --------
	advisorCfg := service.AdvisorConfig{
		APIKey:      cfg.Advisor.APIKey,
		Model:       cfg.Advisor.Model,
		Transport:   cfg.Advisor.Transport,
		BaseURL:     cfg.Advisor.BaseURL,
		ProxyURL:    cfg.Advisor.ProxyURL,
		Timeout:     cfg.Advisor.Timeout,
		Temperature: cfg.Advisor.Temperature,
	}
	gen, err := service.NewGenerator(ctx, &advisorCfg)
	if err != nil {
		return err
	}
	if gen == nil {
		deps.Logger.Warn("未配置 Gemini API Key，顾问将返回兜底文案")
	} else if closer, ok := gen.(interface{ Close() error }); ok {
		deps.closers = append(deps.closers, closer.Close)
	}
	deps.Advisor = service.NewAdvisorService(advisorCfg, gen, deps.AiCallLog, deps.Logger)

	// -------- 会话 --------
	opts := service.StorefrontOptions{
		Admin:  authSvc,
		Logger: deps.Logger,
		Locale: cfg.Locale,
	}
	if deps.Advisor.Configured() {
		opts.Advisor = deps.Advisor
	}
	deps.Sessions = service.NewSessionRegistry(deps.Store, opts)
	deps.Limiter = middleware.NewCooldownLimiter()

	// -------- Controller 层 --------
	deps.Controllers = &router.Controllers{
		Storefront: controller.NewStorefrontController(deps.Sessions),
		Auth:       controller.NewAuthController(deps.Sessions, authSvc),
		Order:      controller.NewOrderController(deps.Sessions),
		Shop:       controller.NewShopController(deps.Sessions),
		Advisor:    controller.NewAdvisorController(deps.Sessions),
		Admin:      controller.NewAdminController(deps.Sessions, deps.AiCallLog),
	}
	return nil
}

// ==================== 命令 ====================

func serve(c *cli.Context) error {
	deps, err := initDependencies(c.Context)
	if err != nil {
		return err
	}
	defer deps.Close()

	if err := initServices(c.Context, deps); err != nil {
		return err
	}
	cfg, zl := deps.Config, deps.Logger

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// -------- 定时任务 --------
	sweeper := task.NewSessionSweepTask(deps.Sessions, deps.Limiter, cfg.Session.IdleTTL, cfg.Session.SweepCron, zl)
	if err := sweeper.Start(); err != nil {
		return err
	}
	if deps.AiCallLog != nil {
		retention := task.NewAILogRetentionTask(deps.AiCallLog, zl, task.WithRetention(cfg.Advisor.LogRetention))
		retention.Start()
		defer retention.Stop()
	}

	r := router.SetupRouter(deps.Controllers, router.Options{
		Logger:          zl,
		Limiter:         deps.Limiter,
		AdvisorCooldown: cfg.Advisor.Cooldown,
		Debug:           !cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 异步启动服务
	errCh := make(chan error, 1)
	go func() {
		zl.Info("服务启动", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		sweeper.Stop(context.Background())
		return fmt.Errorf("服务启动失败: %w", err)
	}

	zl.Info("正在关闭服务...")

	// 顾问调用最长 60 秒，关闭时多留一些余量
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Advisor.Timeout+10*time.Second)
	defer cancel()

	sweeper.Stop(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}

	zl.Info("服务已退出")
	return nil
}

func reset(c *cli.Context) error {
	deviceID := c.String("device")
	if !middleware.ValidDeviceID(deviceID) {
		return fmt.Errorf("无效的设备ID: %s", deviceID)
	}

	deps, err := initDependencies(c.Context)
	if err != nil {
		return err
	}
	defer deps.Close()

	removed, err := service.ResetNamespace(c.Context, deps.Store, deviceID)
	if err != nil {
		return err
	}
	deps.Logger.Info("设备数据已清除", zap.String("device", deviceID), zap.Int64("removed", removed))
	return nil
}

func seedDump(c *cli.Context) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(model.SeedProducts())
}

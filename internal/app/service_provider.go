package app

import (
	"context"
	"log"

	authAPI "dice_backend/internal/api/auth"
	calibrationAPI "dice_backend/internal/api/calibration"
	gameAPI "dice_backend/internal/api/game"
	"dice_backend/internal/config"
	"dice_backend/internal/config/env"
	"dice_backend/internal/middleware"
	"dice_backend/internal/repository"
	"dice_backend/internal/repository/auth_repo"
	"dice_backend/internal/repository/ledger_repo"
	"dice_backend/internal/repository/report_repo"
	"dice_backend/internal/repository/stats_repo"
	"dice_backend/internal/repository/user_repo"
	"dice_backend/internal/service"
	"dice_backend/internal/service/auth"
	"dice_backend/internal/service/calibration"
	"dice_backend/internal/service/game"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

const configPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Game bits
	gameCfg    config.GameConfig
	ledgerRepo repository.LedgerRepository
	statsRepo  repository.StatsRepository
	gameServ   service.GameService
	gameHand   *gameAPI.Handler

	// Calibration bits
	rtpCfg     config.RTPConfig
	reportRepo *report_repo.Repo
	rtpServ    service.RTPService
	rtpHand    *calibrationAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTConfig())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:         sp.AuthService(ctx),
			SecureCookie: sp.HTTPCfg().SecureCookies(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) RTPCfg() config.RTPConfig {
	if sp.rtpCfg == nil {
		cfg, err := env.NewRTPConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get rtp config: " + err.Error())
		}
		sp.rtpCfg = cfg
	}
	return sp.rtpCfg
}

func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx))
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		cfg := sp.RTPCfg()
		sp.statsRepo = stats_repo.NewStatsRepository(
			cfg.Band().Target(),
			cfg.WindowSize(),
			cfg.CheckPeriod(),
			cfg.CriticalDeviation(),
		)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) ReportRepository() *report_repo.Repo {
	if sp.reportRepo == nil {
		repo, err := report_repo.NewReportRepository(sp.RTPCfg().ReportDBPath())
		if err != nil {
			panic("failed to open report repository: " + err.Error())
		}
		sp.reportRepo = repo
	}
	return sp.reportRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		cfg := sp.GameCfg()
		sp.gameServ = game.NewGameService(game.Deps{
			TxManager:      sp.TXManager(ctx),
			LedgerRepo:     sp.LedgerRepository(ctx),
			StatsRepo:      sp.StatsRepository(),
			Preset:         cfg.ActivePreset(),
			Odds:           cfg.ActiveOdds(),
			Band:           sp.RTPCfg().Band(),
			InitialBalance: cfg.InitialBalance(),
		})
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) RTPService() service.RTPService {
	if sp.rtpServ == nil {
		sp.rtpServ = calibration.NewCalibrationService(sp.GameCfg(), sp.RTPCfg(), sp.ReportRepository())
	}
	return sp.rtpServ
}

func (sp *ServiceProvider) RTPHandler() *calibrationAPI.Handler {
	if sp.rtpHand == nil {
		sp.rtpHand = calibrationAPI.NewHandler(calibrationAPI.HandlerDeps{Serv: sp.RTPService()})
	}
	return sp.rtpHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(chimw.Logger)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		gameHandler := sp.GameHandler(ctx)
		rtpHandler := sp.RTPHandler()
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig().AccessTokenSecretKey()))

			// Game endpoints
			rr.Post("/init", gameHandler.Init)
			rr.Get("/balance", gameHandler.Balance)
			rr.Post("/roll", gameHandler.Roll)
			rr.Get("/history", gameHandler.History)
			rr.Get("/odds", gameHandler.Odds)
			rr.Get("/stats", gameHandler.Stats)

			// Calibration endpoints
			rr.Route("/rtp", func(rt chi.Router) {
				rt.Post("/simulate", rtpHandler.Simulate)
				rt.Get("/reports", rtpHandler.Reports)
			})
		})

		sp.router = r
	}
	return sp.router
}

// Close - releases the pool and the report database
func (sp *ServiceProvider) Close() {
	if sp.reportRepo != nil {
		if err := sp.reportRepo.Close(); err != nil {
			log.Printf("failed to close report repository: %v", err)
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

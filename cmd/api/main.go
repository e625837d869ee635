package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/config"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/user"
	appHTTP "github.com/gestao-rh/gestao-backend-go/internal/handler/http"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/middleware"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/cron"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/jwt"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/memory"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/postgresql"
	advanceService "github.com/gestao-rh/gestao-backend-go/internal/service/advance"
	auditService "github.com/gestao-rh/gestao-backend-go/internal/service/audit"
	serviceAuth "github.com/gestao-rh/gestao-backend-go/internal/service/auth"
	employeeService "github.com/gestao-rh/gestao-backend-go/internal/service/employee"
	employmentService "github.com/gestao-rh/gestao-backend-go/internal/service/employment"
	financeService "github.com/gestao-rh/gestao-backend-go/internal/service/finance"
	rhService "github.com/gestao-rh/gestao-backend-go/internal/service/rh"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// repositories is the storage backend selected by STORE_DRIVER
type repositories struct {
	transactor  database.Transactor
	user        user.UserRepository
	employee    employee.EmployeeRepository
	advance     advance.AdvanceRepository
	transaction finance.TransactionRepository
	payable     finance.AccountPayableRepository
	record      employment.RecordRepository
	contract    employment.ContractRepository
	rh          rh.RHRepository
	audit       audit.AuditRepository
	close       func()

	// set only for the memory driver
	memStore *memory.Store
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	recorder := auditService.NewAuditService(repos.audit, auditService.NewCodec())

	authService := serviceAuth.NewAuthService(repos.transactor, repos.user, JWTService, recorder)
	employeeSvc := employeeService.NewEmployeeService(repos.transactor, repos.employee, recorder)
	advanceSvc := advanceService.NewAdvanceService(repos.transactor, repos.advance, repos.transaction, repos.employee, recorder)
	employmentSvc := employmentService.NewEmploymentService(repos.transactor, repos.record, repos.contract, repos.employee, recorder)
	rhSvc := rhService.NewRHService(repos.transactor, repos.rh, repos.employee, repos.advance, recorder)
	financeSvc := financeService.NewFinanceService(repos.transactor, repos.transaction, repos.payable, recorder)

	if repos.memStore != nil {
		if err := seedAdmin(cfg, repos.memStore); err != nil {
			logger.Error("failed to seed admin user", "error", err)
			os.Exit(1)
		}
	}

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.App.AllowedOrigins,
			RateLimiter:    rateLimiter,
		},
		JWTService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(JWTService, authService),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Advance:    appHTTP.NewAdvanceHandler(advanceSvc),
			Employment: appHTTP.NewEmploymentHandler(employmentSvc),
			RH:         appHTTP.NewRHHandler(rhSvc),
			Finance:    appHTTP.NewFinanceHandler(financeSvc),
			Audit:      appHTTP.NewAuditHandler(recorder),
		},
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler(logger)
	cron.NewFinanceJobs(financeSvc, cfg.Jobs.PayablesOverdueInterval).RegisterJobs(scheduler)
	scheduler.AddJob("prune_rate_limiters", cfg.RateLimit.IdleTTL, func(ctx context.Context) error {
		if n := rateLimiter.Prune(cfg.RateLimit.IdleTTL); n > 0 {
			logger.DebugContext(ctx, "rate limiter buckets pruned", "count", n)
		}
		return nil
	})
	scheduler.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", "addr", server.Addr, "store", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		// scheduler first, then in-flight requests
		scheduler.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
	}
	repos.close()
	logger.Info("server exited")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gestao-backend"),
		slog.String("env", cfg.App.Env),
	)
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		return &repositories{
			transactor:  memory.NewTransactor(store),
			user:        memory.NewUserRepository(store),
			employee:    memory.NewEmployeeRepository(store),
			advance:     memory.NewAdvanceRepository(store),
			transaction: memory.NewTransactionRepository(store),
			payable:     memory.NewAccountPayableRepository(store),
			record:      memory.NewRecordRepository(store),
			contract:    memory.NewContractRepository(store),
			rh:          memory.NewRHRepository(store),
			audit:       memory.NewAuditRepository(store),
			close:       store.Close,
			memStore:    store,
		}, nil

	case config.StoreDriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &repositories{
			transactor:  postgresql.NewTransactor(db),
			user:        postgresql.NewUserRepository(db),
			employee:    postgresql.NewEmployeeRepository(db),
			advance:     postgresql.NewAdvanceRepository(db),
			transaction: postgresql.NewTransactionRepository(db),
			payable:     postgresql.NewAccountPayableRepository(db),
			record:      postgresql.NewRecordRepository(db),
			contract:    postgresql.NewContractRepository(db),
			rh:          postgresql.NewRHRepository(db),
			audit:       postgresql.NewAuditRepository(db),
			close:       db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Database.Driver)
}

// seedAdmin creates the login user for the memory store, which starts empty.
func seedAdmin(cfg *config.Config, store *memory.Store) error {
	if cfg.App.SeedAdminEmail == "" || cfg.App.SeedAdminPassword == "" {
		slog.Warn("memory store started without SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD; login is impossible")
		return nil
	}
	hash, err := serviceAuth.HashPassword(cfg.App.SeedAdminPassword)
	if err != nil {
		return err
	}

	store.AddUser(user.User{
		Name:         "Administrator",
		Email:        strings.ToLower(cfg.App.SeedAdminEmail),
		PasswordHash: &hash,
		Active:       true,
	})
	return nil
}

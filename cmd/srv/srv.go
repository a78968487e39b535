package main

import (
	"context"
	"net/http"
	"os"

	"github.com/timecraft-lab/backend/config"
	"github.com/timecraft-lab/backend/internal/domain"
	"github.com/timecraft-lab/backend/internal/model"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/authenticator"
	"github.com/timecraft-lab/backend/pkg/logger"
	"github.com/timecraft-lab/backend/pkg/router"
	"github.com/timecraft-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	tokenEngine authenticator.TokenEngine[model.AccessToken]

	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	activityRepo repository.ActivityRepository
	reportRepo   repository.ReportRepository

	authDomain     domain.AuthDomain
	profileDomain  domain.ProfileDomain
	activityDomain domain.ActivityDomain
	reportDomain   domain.ReportDomain

	router *router.Router
	server *http.Server
}

// loadConfig reads the optional TOML file named by CONFIG_PATH; secrets
// and the port come from the environment either way.
func (s *srv) loadConfig() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	s.configs = cfg
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.LogLevel)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadContext() {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)
	s.ctx = ctx
}

func (s *srv) loadAuthenticator() {
	s.tokenEngine = authenticator.NewTokenEngine[model.AccessToken](s.configs.Auth.AccessToken)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.profileRepo = repository.NewProfileRepository()
	s.activityRepo = repository.NewActivityRepository()
	s.reportRepo = repository.NewReportRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.profileRepo, s.tokenEngine)
	s.profileDomain = domain.NewProfileDomain(s.userRepo, s.profileRepo)
	s.activityDomain = domain.NewActivityDomain(s.activityRepo, s.profileRepo)
	s.reportDomain = domain.NewReportDomain(s.reportRepo, s.activityRepo, s.profileRepo)
}

package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/timecraft-lab/backend/internal/middleware"
	"github.com/timecraft-lab/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadContext()
	s.loadAuthenticator()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: c.Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Public API.
	router.POST(s.router, "/signup", s.authDomain.Signup)
	router.POST(s.router, "/login", s.authDomain.Login)

	// These following APIs need authentication with an access token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate(s.tokenEngine, s.userRepo))
	{
		// User API
		router.GET(authRouter, "/me", s.authDomain.Me)

		// Profile API
		router.GET(authRouter, "/profile", s.profileDomain.Get)
		router.PATCH(authRouter, "/profile", s.profileDomain.Update)
		router.DELETE(authRouter, "/profile", s.profileDomain.Delete)

		// Activity API
		router.POST(authRouter, "/activity", s.activityDomain.Create)
		router.GET(authRouter, "/activity", s.activityDomain.GetList)
		router.GET(authRouter, "/activity/{id}", s.activityDomain.Get)
		router.PATCH(authRouter, "/activity/{id}", s.activityDomain.Update)
		router.DELETE(authRouter, "/activity/{id}", s.activityDomain.Delete)

		// Report API
		router.POST(authRouter, "/report", s.reportDomain.Create)
		router.GET(authRouter, "/report", s.reportDomain.GetRange)
		router.GET(authRouter, "/report/day", s.reportDomain.GetDay)
		router.GET(authRouter, "/report/week", s.reportDomain.GetWeek)
		router.GET(authRouter, "/report/month", s.reportDomain.GetMonth)
		router.GET(authRouter, "/report/totals", s.reportDomain.GetTotals)
	}
}

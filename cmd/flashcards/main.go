package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/WebeWizard/flashcard-server/auth"
	"github.com/WebeWizard/flashcard-server/core/config"
	"github.com/WebeWizard/flashcard-server/core/email"
	"github.com/WebeWizard/flashcard-server/core/logger"
	"github.com/WebeWizard/flashcard-server/core/response"
	"github.com/WebeWizard/flashcard-server/core/router"
	"github.com/WebeWizard/flashcard-server/core/server"
	"github.com/WebeWizard/flashcard-server/core/static"
	"github.com/WebeWizard/flashcard-server/flash"
	"github.com/WebeWizard/flashcard-server/integration/database/pg"
	"github.com/WebeWizard/flashcard-server/integration/email/postmark"
	"github.com/WebeWizard/flashcard-server/integration/email/smtp"
	"github.com/WebeWizard/flashcard-server/middleware"
	"github.com/WebeWizard/flashcard-server/pkg/webeid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, logger.WithAttr(slog.String("app", cfg.AppName)))

	authDB, err := pg.Connect(ctx, dbConfig(cfg, cfg.Auth.DatabaseURL))
	if err != nil {
		log.Error("failed to connect to accounts database", logger.Component("database"), logger.Error(err))
		os.Exit(1)
	}
	defer authDB.Close()

	flashDB, err := pg.Connect(ctx, dbConfig(cfg, cfg.Flash.DatabaseURL))
	if err != nil {
		log.Error("failed to connect to flashcard database", logger.Component("database"), logger.Error(err))
		os.Exit(1)
	}
	defer flashDB.Close()

	if err := auth.Migrate(ctx, authDB, log.With(logger.Component("migration"))); err != nil {
		log.Error("failed to migrate accounts database", logger.Component("database"), logger.Error(err))
		os.Exit(1)
	}
	if err := flash.Migrate(ctx, flashDB, log.With(logger.Component("migration"))); err != nil {
		log.Error("failed to migrate flashcard database", logger.Component("database"), logger.Error(err))
		os.Exit(1)
	}

	sender, err := newEmailSender(cfg)
	if err != nil {
		log.Error("failed to configure email sender", logger.Component("email"), logger.Error(err))
		os.Exit(1)
	}

	ids := webeid.New(cfg.WebeIDNode)

	authMgr := auth.NewManager(authDB, ids, sender,
		auth.WithLogger(log),
		auth.WithSessionTTL(cfg.Auth.SessionTTL),
		auth.WithVerifyTTL(cfg.Auth.VerifyTTL),
		auth.WithBcryptCost(cfg.Auth.BcryptCost),
		auth.WithVerificationURL(cfg.Auth.VerificationURL),
	)
	flashMgr := flash.NewManager(flashDB, ids, flash.WithLogger(log))

	corsCfg := middleware.CORSConfig{AllowOrigin: cfg.CORSAllowOrigin}

	r := router.New[*router.Context](
		router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]),
		router.WithMiddleware(
			middleware.RequestID[*router.Context](),
			middleware.LoggingWithLogger[*router.Context](log),
			middleware.CORS[*router.Context](corsCfg),
			middleware.BodyLimit[*router.Context](),
		),
	)

	gate := middleware.Auth[*router.Context, auth.Session](authMgr)

	// Routes check in registration order; first match wins. The preflight
	// wildcard goes first and the SPA wildcard last.
	r.Options("/<any...>", middleware.Preflight[*router.Context](corsCfg))

	r.Post("/account/create", auth.CreateAccountHandler[*router.Context](authMgr))
	r.Post("/account/verify", auth.VerifyAccountHandler[*router.Context](authMgr))
	r.Post("/account/login", auth.LoginHandler[*router.Context](authMgr))
	r.Post("/account/logout", auth.LogoutHandler[*router.Context](authMgr), gate)

	r.Get("/decks", flash.ListDecksHandler[*router.Context](flashMgr), gate)
	r.Get("/deck/<id>", flash.GetDeckHandler[*router.Context](flashMgr), gate)
	r.Post("/deck/create", flash.CreateDeckHandler[*router.Context](flashMgr), gate)
	r.Post("/deck/rename", flash.RenameDeckHandler[*router.Context](flashMgr), gate)
	r.Post("/deck/delete", flash.DeleteDeckHandler[*router.Context](flashMgr), gate)
	r.Post("/card/create", flash.CreateCardHandler[*router.Context](flashMgr), gate)
	r.Post("/card/update", flash.UpdateCardHandler[*router.Context](flashMgr), gate)
	r.Post("/card/updatepos", flash.UpdateCardPositionHandler[*router.Context](flashMgr), gate)
	r.Post("/card/delete", flash.DeleteCardHandler[*router.Context](flashMgr), gate)
	r.Post("/card/score", flash.RecordScoreHandler[*router.Context](flashMgr), gate)
	r.Get("/deck/scores/<id>", flash.DeckScoresHandler[*router.Context](flashMgr), gate)

	r.Get("/app/<path...>", static.File[*router.Context](cfg.AppDir, "path"))
	r.Get("/<path...>", static.SPA[*router.Context](cfg.AppDir, "index.html"))

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("failed to bind server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, r))

	log.Info("server listening", logger.Component("server"), slog.String("addr", srv.Addr().String()))

	if err := eg.Wait(); err != nil {
		log.Error("server stopped with error", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}
	log.Info("application stopped")
}

// dbConfig copies the shared pool tuning and points it at one database.
func dbConfig(cfg Config, connString string) pg.Config {
	dbCfg := cfg.DB
	dbCfg.ConnectionString = connString
	return dbCfg
}

// newEmailSender picks the verification mail transport. Dev writes emails to
// local files; smtp and postmark load their credentials from the environment
// only when selected.
func newEmailSender(cfg Config) (email.EmailSender, error) {
	switch cfg.EmailProvider {
	case "dev":
		return email.NewDevSender(cfg.EmailDevDir), nil
	case "smtp":
		var smtpCfg smtp.Config
		if err := config.Load(&smtpCfg); err != nil {
			return nil, err
		}
		return smtp.New(smtpCfg)
	case "postmark":
		var pmCfg postmark.Config
		if err := config.Load(&pmCfg); err != nil {
			return nil, err
		}
		return postmark.New(pmCfg)
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
}

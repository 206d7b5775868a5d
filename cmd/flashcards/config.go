package main

import (
	"github.com/WebeWizard/flashcard-server/auth"
	"github.com/WebeWizard/flashcard-server/core/logger"
	"github.com/WebeWizard/flashcard-server/core/server"
	"github.com/WebeWizard/flashcard-server/flash"
	"github.com/WebeWizard/flashcard-server/integration/database/pg"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"flashcard-server"`

	Server server.Config
	Logger logger.Config

	// DB carries the shared pool tuning; the accounts and flashcard
	// databases get their own connection strings from Auth and Flash.
	DB    pg.Config
	Auth  auth.Config
	Flash flash.Config

	// WebeIDNode distinguishes ID generator instances. Every running node
	// needs its own value or IDs can collide.
	WebeIDNode uint8 `env:"WEBEID_NODE" envDefault:"0"`

	// CORSAllowOrigin is the web client origin allowed to call the API.
	CORSAllowOrigin string `env:"CORS_ALLOW_ORIGIN" envDefault:"http://localhost:1234"`

	// AppDir holds the built web client; the SPA shell is AppDir/index.html.
	AppDir string `env:"APP_DIR" envDefault:"./app"`

	// EmailProvider picks the verification mail transport: dev, smtp, or
	// postmark. Credentials load only for the selected provider.
	EmailProvider string `env:"EMAIL_PROVIDER" envDefault:"dev"`
	EmailDevDir   string `env:"EMAIL_DEV_DIR" envDefault:"./dev_emails"`
}

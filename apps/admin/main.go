package main

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
	logsvc "github.com/AlainDede/Delphinium-gestion-site/services/logger"
	"github.com/AlainDede/Delphinium-gestion-site/storage/database"
	sqlxrepos "github.com/AlainDede/Delphinium-gestion-site/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)

	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		logger.Fatal("creating database", err)
	}
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer func() { _ = db.Close() }()

	api, err := gateway.New(gateway.Options{BaseURL: conf.API.BaseURL, Timeout: conf.API.Timeout})
	if err != nil {
		logger.Fatal("creating API client", err)
	}

	// start CLI
	cli := commandLine{
		db:       db,
		engine:   conf.Database.Engine,
		sessions: session.NewManager(sqlxrepos.NewSessionStore(db)),
		api:      api,
		out:      os.Stdout,
	}
	if err = cli.run(os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			logger.Error("admin command failed", err)
		}
		_ = db.Close()
		os.Exit(1)
	}
}

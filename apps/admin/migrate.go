package main

import (
	"context"

	"github.com/pressly/goose/v3"

	"github.com/AlainDede/Delphinium-gestion-site/storage/database"
)

var gooseRunFunc = goose.RunContext // mockable

func (cli *commandLine) migrate(ctx context.Context, args []string) error {
	if err := database.PrepareGoose(cli.engine); err != nil {
		return err
	}
	return gooseRunFunc(ctx, args[0], cli.db.DB, database.MigrationsDir, args[1:]...)
}

package main

import (
	"path/filepath"

	"github.com/pressly/goose"

	"github.com/web3versity/web3versity/core"
)

var gooseRunFunc = goose.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	if err := goose.SetDialect(core.Conf.Database.Engine); err != nil {
		return err
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	dir := filepath.Join(core.Conf.WorkDir, "migrations")
	return gooseRunFunc(args[0], cli.db.DB, dir, arguments...)
}

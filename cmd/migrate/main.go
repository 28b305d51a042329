// File: cmd/migrate/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ecomarket/internal/config"
	"ecomarket/internal/database"

	"github.com/sirupsen/logrus"
)

var (
	loadDB                = config.LoadDB
	migrateUp             = database.RunMigrations
	migrateDown           = database.RollbackAll
	exitFunc              = os.Exit
	stderr      io.Writer = os.Stderr
)

const usage = "usage: migrate up|down"

// run 依參數執行 up 或 down (退回全部)
func run(args []string) error {
	if len(args) != 1 {
		return errors.New(usage)
	}
	var step func(string) error
	switch args[0] {
	case "up":
		step = migrateUp
	case "down":
		step = migrateDown
	default:
		return fmt.Errorf("unknown command %q; %s", args[0], usage)
	}

	cfg, err := loadDB()
	if err != nil {
		return err
	}
	if err := step(cfg.URL); err != nil {
		return fmt.Errorf("migrate %s: %w", args[0], err)
	}
	logrus.WithField("direction", args[0]).Info("migrations applied")
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(stderr, err)
		exitFunc(1)
	}
}

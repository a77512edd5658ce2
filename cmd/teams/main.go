package main

import (
	"fmt"
	"os"
	"team-lab/balancer"
	"team-lab/internal"
	"team-lab/repositories"
	"team-lab/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires storage, engine and services before handing over to the command tree,
// so deferred cleanup runs whatever the command returns.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLogger(repositories.NewBadgerLogger(log)))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Engine & services
	engine := balancer.NewEngine(log, config.Balancer())
	teamService := services.NewTeamService(repositories.NewRosterRepository(db, log), engine, log)
	wheelService := services.NewWheelService(repositories.NewWheelRepository(db, log), log)

	cli := newApp(teamService, wheelService, balancer.NewRand(config.Seed), config.Colours)
	return cli.rootCommand().Execute()
}

package main

import (
	"math/rand"
	"os"
	"time"

	"lamsa/internal/clock"
	"lamsa/internal/config"
	apphttp "lamsa/internal/http"
	"lamsa/internal/http/handlers"
	applog "lamsa/internal/log"
	"lamsa/internal/repos"
	"lamsa/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("config.load", err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f := applog.UseFile(cfg.LogFile)
		defer f.Close()
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		fatal("db.open", err)
	}
	defer db.Close()

	clk := clock.System{}
	if cfg.SeedDemo {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if _, err := repos.SeedIfEmpty(db, clk, rng); err != nil {
			fatal("db.seed", err)
		}
	}

	authSvc, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.SessionSecret, cfg.SessionTTL, clk)
	if err != nil {
		fatal("auth.init", err)
	}

	deps := handlers.NewDeps(db, authSvc, clk)
	app := apphttp.NewApp(cfg, deps)

	applog.Info(nil, "server.listen", map[string]any{"port": cfg.Port})
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal("server.listen", err)
	}
}

func fatal(action string, err error) {
	applog.Error(nil, action, err, nil)
	os.Exit(1)
}

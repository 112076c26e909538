// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands of the dealer
// program. Commands are organized using the cobra library.
// The root command starts the web server itself, while the other
// sub-commands are a command line client of the same remote API which
// share the core use cases with the web server. The CLI keeps its
// admin session in a SQLite database file, so a login is remembered
// by the following commands.
//
//	./dealer [-c /path/of/config.yaml]           # start web server
//	./dealer login [--email admin@example.com]
//	./dealer status
//	./dealer cars list [--brand Toyota] [--max-price 30000]
//	./dealer cars add --brand Toyota --model Camry ...
//	./dealer cars delete 7 --yes
//	./dealer contact 7 --via whatsapp
//	./dealer logout
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/momeni/car-dealer/pkg/adapter/config"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/routes"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/log"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "dealer",
	Short: "A car dealership web front end and its command line client",
	Long: `A car dealership web front end which renders the public car
listing (with its filters, detail pages, and contact links) and an
admin panel for the car and image slider records, all of them kept by
a remote REST API. The sub-commands realize a command line client of
the same API, sharing the core use cases with the web server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          startWebServer,
}

// loadConfig loads the configuration file and installs its logger as
// the default slog logger.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	slog.SetDefault(c.Logging.NewLogger(os.Stderr))
	return c, nil
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	log.Info(ctx, "configs are loaded", log.Valuer("config", c))
	e := c.Gin.NewEngine()
	if err = routes.Register(ctx, e, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	if err = e.Run(*c.Gin.Address); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. An expired session
// is reported with a hint to log in again. The exit code is non-zero
// for all failures.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, message(err))
		os.Exit(1)
	}
}

func message(err error) string {
	if errors.Is(err, cerr.ErrSessionExpired) {
		return "session expired, run dealer login"
	}
	return err.Error()
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/sample-config.yaml"
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fjacquet/swift-mx/cmd/batch"
	"fjacquet/swift-mx/cmd/inspect"
	"fjacquet/swift-mx/cmd/mt2mx"
	"fjacquet/swift-mx/cmd/mx2mt"
	"fjacquet/swift-mx/cmd/root"
	"fjacquet/swift-mx/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load .env silently first; SWIFTMX_ variables from it feed viper
	_, _ = config.LoadEnv(".")

	// 2. Set the global logrus level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize root command and add all subcommands
	root.Init()
	root.Cmd.AddCommand(mt2mx.Cmd)
	root.Cmd.AddCommand(mx2mt.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// configureLogLevelDirectly sets the global logrus level from
// SWIFTMX_LOG_LEVEL, defaulting to info.
func configureLogLevelDirectly() {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv(config.EnvPrefix + "_LOG_LEVEL")))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

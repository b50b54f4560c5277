// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"sync"

	"fjacquet/swift-mx/internal/config"
	"fjacquet/swift-mx/internal/container"
	"fjacquet/swift-mx/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	Type      string
	LogLevel  string
	LogFormat string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "swift-mx",
		Short: "Convert payment messages between SWIFT MT and ISO 20022 MX.",
		Long: `swift-mx converts SWIFT MT (FIN) messages to ISO 20022 MX XML and back.

Supported conversions:
  MT103 and MT102     <-> pacs.008.001.08
  MT202 and MT202COV  <-> pacs.009.001.08
  MT940               <-> camt.053.001.08

CBPR+ advisories are reported for MT input; they never block a conversion.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	appContainer *container.Container
	initOnce     sync.Once
)

// Init registers the persistent flags on the root command. It is safe to call
// more than once.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory (\"-\" reads standard input)")
		flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory (empty writes to standard output)")
		flags.StringVar(&SharedFlags.Type, "type", "", "Source message type, overriding detection (e.g. 103, MT202COV, pacs.008.001.08)")
		flags.StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
		flags.StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format: text or json")
	})
}

// initialize loads the configuration, applies the logging flags and builds
// the container shared by every subcommand.
func initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	Log.SetOutput(cmd.ErrOrStderr())

	c, err := container.NewContainerWithLogger(cfg, logging.NewLogrusAdapterFromLogger(Log))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	SetContainer(c)
	return nil
}

// ErrNotInitialized is returned by subcommands run without the root
// command's initialization.
var ErrNotInitialized = errors.New("application container not initialized")

// GetContainer returns the container built before the running command.
func GetContainer() *container.Container {
	return appContainer
}

// RequireContainer returns the shared container or ErrNotInitialized.
func RequireContainer() (*container.Container, error) {
	if appContainer == nil {
		return nil, ErrNotInitialized
	}
	return appContainer, nil
}

// InputPath returns the first positional argument when present, else the
// --input flag.
func InputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return SharedFlags.Input
}

// SetContainer replaces the shared container. Tests use it to inject one
// built around a MockLogger.
func SetContainer(c *container.Container) {
	appContainer = c
}

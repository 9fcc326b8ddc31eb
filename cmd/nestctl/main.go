package main

import (
	"fmt"
	"os"

	"github.com/neuronlabs/uni-logger"
	"github.com/spf13/cobra"

	"github.com/gospike/nest"
	"github.com/gospike/nest/config"
	"github.com/gospike/nest/log"
	_ "github.com/gospike/nest/simulator/mocksim"
)

var (
	configName  string
	driverName  string
	modelTables string
	verbosity   string
)

// rootCmd represents the base command when called without any sub commands.
var rootCmd = &cobra.Command{
	Use:   "nestctl",
	Short: "A session control utility for the nest simulation adapter.",
	Long: `nestctl inspects and drives a simulation engine through the session
facade of the github.com/gospike/nest package. The engine is resolved from
the registered driver factories - the builtin 'mock' driver serves an in
memory engine with a realistic model table.`,
	PersistentPreRunE: setVerbosity,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configName, "config", "c", "", "name of the config file read from '.' or 'configs' (without extension)")
	rootCmd.PersistentFlags().StringVarP(&driverName, "driver", "d", "mock", "engine driver name")
	rootCmd.PersistentFlags().StringVar(&modelTables, "model-tables", "", "path of a yaml model table served to the engine driver")
	rootCmd.PersistentFlags().StringVar(&verbosity, "verbosity", "", "logging level: debug3, debug2, debug, info, warning, error, critical")
}

func main() {
	// session warnings surface on stderr
	log.Default()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setVerbosity(cmd *cobra.Command, args []string) error {
	if verbosity == "" {
		return nil
	}
	level := unilogger.ParseLevel(verbosity)
	if level == unilogger.UNKNOWN {
		return fmt.Errorf("unknown verbosity level: '%s'", verbosity)
	}
	if log.Logger() == nil {
		log.Default()
	}
	return log.SetLevel(level)
}

// sessionConfig loads the named config or the defaults and binds the engine
// driver flags on top of it.
func sessionConfig() (*config.Simulation, error) {
	cfg := config.Default()
	if configName != "" {
		read, err := config.ReadNamedConfig(configName)
		if err != nil {
			return nil, err
		}
		cfg = read
	}
	if cfg.Engine == nil {
		cfg.Engine = &config.Engine{}
	}
	if cfg.Engine.DriverName == "" || rootCmd.PersistentFlags().Changed("driver") {
		cfg.Engine.DriverName = driverName
	}
	if modelTables != "" {
		cfg.Engine.ModelTables = modelTables
	}
	return cfg, nil
}

// newSession builds an unconfigured session over the flagged engine driver.
func newSession() (*nest.Session, error) {
	cfg, err := sessionConfig()
	if err != nil {
		return nil, err
	}
	return nest.NewFromConfig(cfg)
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nicpower/internal/device"
	"github.com/joshuapare/nicpower/internal/logger"
	"github.com/joshuapare/nicpower/pkg/reg"
	"github.com/joshuapare/nicpower/pkg/types"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	logDir    string
	classFlag string
)

// Swapped by tests.
var (
	facility           = reg.Native()
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "nicpower",
	Short: "Disable idle power-down of network adapters",
	Long: `nicpower lists the network adapter instances registered under the
network device class, shows their driver and power-management settings, and
rewrites the idle power settings of the selected instance so the adapter is
never powered down while idle.

Writing requires an elevated prompt. The change takes effect after the
adapter is restarted.

Example:
  nicpower
  nicpower list --json
  nicpower --index 0 --yes`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initLogging() },
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTune(cmd.InOrStdin())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors and prompts")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to daily files in this directory")
	rootCmd.PersistentFlags().
		StringVar(&classFlag, "class", device.NetworkAdapterClass.String(), "Device setup class GUID")
	addTuneFlags(rootCmd)
}

func execute() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogging() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logger.Init(logger.Options{
		Enabled: !quiet || logDir != "",
		LogDir:  logDir,
		Console: stderr,
		Level:   level,
	})
}

// openClass opens the selected device class under HKEY_LOCAL_MACHINE.
func openClass(opts *reg.OpenOptions) (*reg.Key, error) {
	class, err := device.ParseClass(classFlag)
	if err != nil {
		return nil, err
	}
	root, err := reg.RootOn(facility, reg.RootLocalMachine)
	if err != nil {
		return nil, err
	}
	printVerbose("Opening %s\\%s\n", root.Path(), device.ClassPath(class))
	return device.OpenClass(root, class, opts)
}

// scanClass opens the class key and scans its instances. The caller closes
// both the key and the instances.
func scanClass(opts *reg.OpenOptions) (*reg.Key, []*device.Instance, error) {
	class, err := openClass(opts)
	if err != nil {
		return nil, nil, err
	}
	s := &device.Scanner{Open: opts}
	instances, err := s.Scan(class)
	if err != nil {
		class.Close()
		return nil, nil, fmt.Errorf("failed to scan %s: %w", class.Path(), err)
	}
	return class, instances, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(stderr, format, args...)
}

// printRegError prints a registry failure with its status code
func printRegError(err error) {
	var re *types.Error
	if errors.As(err, &re) {
		printError("%s (error code: %d)\n", re.Error(), re.Code)
		return
	}
	printError("%v\n", err)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printInstances prints every instance with its current power settings
func printInstances(instances []*device.Instance) {
	printInfo("Found %d media instances:\n\n", len(instances))
	for _, inst := range instances {
		printInfo("%s\n%s\n\n", inst.Description(), inst.Power)
	}
}

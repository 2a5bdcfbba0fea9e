package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/nicpower/internal/device"
	"github.com/joshuapare/nicpower/pkg/reg"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List device instances and their power settings",
		Long: `The list command prints every instance of the device class with its
driver metadata and current power settings. Keys are opened read-only, so no
elevation is needed.

Example:
  nicpower list
  nicpower list --json
  nicpower list --class {4d36e972-e325-11ce-bfc1-08002be10318}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
	return cmd
}

func runList() error {
	class, instances, err := scanClass(&reg.OpenOptions{ReadOnly: true})
	if err != nil {
		return err
	}
	defer class.Close()
	defer device.CloseAll(instances)

	if jsonOut {
		out := make([]device.Summary, 0, len(instances))
		for _, inst := range instances {
			out = append(out, inst.Summary())
		}
		return printJSON(out)
	}

	if len(instances) == 0 {
		printError("No media instances found!\n")
		return nil
	}
	printInstances(instances)
	return nil
}

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nicpower/internal/device"
)

var (
	tuneIndex   int
	tuneYes     bool
	tuneAsDword bool
	tuneTarget  = device.TargetPowerSettings
)

func addTuneFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&tuneIndex, "index", -1, "Select the instance with this index instead of prompting")
	cmd.Flags().BoolVarP(&tuneYes, "yes", "y", false, "Apply without asking for confirmation")
	cmd.Flags().BoolVar(&tuneAsDword, "as-dword", false, "Write REG_DWORD values instead of 4-byte REG_BINARY")
	cmd.Flags().Uint32Var(&tuneTarget.ConservationIdleTime, "conservation-idle-time",
		device.TargetPowerSettings.ConservationIdleTime, "Target ConservationIdleTime")
	cmd.Flags().Uint32Var(&tuneTarget.PerformanceIdleTime, "performance-idle-time",
		device.TargetPowerSettings.PerformanceIdleTime, "Target PerformanceIdleTime")
	cmd.Flags().Uint32Var(&tuneTarget.IdlePowerState, "idle-power-state",
		device.TargetPowerSettings.IdlePowerState, "Target IdlePowerState")
}

func runTune(in io.Reader) error {
	class, instances, err := scanClass(nil)
	if err != nil {
		return err
	}
	defer class.Close()
	defer device.CloseAll(instances)

	if len(instances) == 0 {
		printError("No media instances found!\n")
		return nil
	}
	printInstances(instances)

	p := newPrompter(in, stdout)
	choice := tuneIndex
	if choice < 0 || choice >= len(instances) {
		if tuneIndex >= 0 {
			printError("Index %d is out of range\n", tuneIndex)
		}
		if choice, err = p.selectIndex(len(instances)); err != nil {
			return err
		}
	}
	inst := instances[choice]

	printInfo("Selected %s\n"+
		"The program is about to update device's power settings to the following values:\n"+
		"%s\n", inst.Description(), device.FormatChange(inst.Power, tuneTarget))

	update := tuneYes
	if !update {
		if update, err = p.confirm(); err != nil {
			return err
		}
	}
	if !update {
		printInfo("Aborting\n")
		return nil
	}

	enc := device.EncodingBinary
	if tuneAsDword {
		enc = device.EncodingDword
	}
	for _, r := range device.Failed(device.Apply(inst, tuneTarget, enc)) {
		printRegError(r.Err)
	}
	printInfo("Settings have been updated\n")
	return nil
}

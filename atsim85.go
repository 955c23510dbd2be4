// This file is part of atsim85.
//
// atsim85 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atsim85 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atsim85.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/attiny85sim/atsim85/cartridgeloader"
	"github.com/attiny85sim/atsim85/errors"
	"github.com/attiny85sim/atsim85/hardware/cpu/instructions"
	"github.com/attiny85sim/atsim85/hardware/machine"
	"github.com/attiny85sim/atsim85/hardware/mcu"
	"github.com/attiny85sim/atsim85/logger"
	"github.com/attiny85sim/atsim85/modalflag"
	"github.com/attiny85sim/atsim85/peripherals"
	"github.com/attiny85sim/atsim85/peripherals/usi"
	"github.com/attiny85sim/atsim85/statsview"
	"github.com/attiny85sim/atsim85/version"
)

// a program that never settles into a halt loop should still end
// eventually. generous: a halting program on an 8K part converges long
// before this.
const defaultMaxCycles = 100000000

func main() {
	os.Exit(launch())
}

// launch parses the command line and dispatches to the chosen mode,
// returning the value for os.Exit(): zero on a normal halt, one on an
// argument error or I/O failure.
func launch() int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	// the first sub-mode is the default: a bare image filename runs it
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 1
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "VERSION":
		vers, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vers, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 1
	}

	return 0
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "force image format: RAW, CASSETTE")
	wavFile := md.AddString("wav", "", "render USI shift-out activity to a wav file")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stdout")
	maxCycles := md.AddInt("cycles", defaultMaxCycles, "maximum number of cycles to run")
	stackGuard := md.AddInt("stackguard", 0, "log a warning when SP falls below this data address (0 disables)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	logger.SetEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return errors.New(errors.ArgumentError, "program image required for RUN mode")
	case 1:
		// continues below
	default:
		return errors.New(errors.ArgumentError, "too many arguments for RUN mode")
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0), *format)
	if err := cartload.Load(mcu.ATtiny85.FlashSize); err != nil {
		return err
	}

	table := instructions.BuildDispatchTable(instructions.Table)
	m := machine.New(mcu.ATtiny85, table)
	m.Load(cartload.Data)
	m.Data.LowWater = uint16(*stackGuard)

	// the USI shifter always runs; its byte stream goes to stdout the
	// same way the register dump does
	shifter := usi.NewShifter(os.Stdout)

	var sonifier *usi.Sonifier
	if *wavFile != "" {
		sonifier = usi.NewSonifier(*wavFile)
		shifter.OnByte(sonifier.AppendByte)
	}

	m.SetObserver(peripherals.Multi{shifter})

	machine.RunUntilHalt(m, *maxCycles)

	fmt.Print(m.DumpRegisters())
	fmt.Print(m.DumpStack())

	if sonifier != nil {
		if err := sonifier.Close(); err != nil {
			return err
		}
	}

	return nil
}

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

// Command generator reads table.csv and checks it for internal
// consistency: well-formed 16-bit patterns and no two same-specificity
// definitions that can match the same concrete opcode. It is the
// validation half of the instruction table pipeline; the behaviour half
// (the Exec closures) is written by hand in table.go, the same split the
// CSV-to-Go-source pipeline this is modeled on uses between generated
// field metadata and hand-written operator bodies.
//
// Run with `go generate ./hardware/cpu/instructions` from the package
// directory that owns table.csv.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/attiny85sim/atsim85/hardware/cpu/instructions"
)

func main() {
	csvPath := flag.String("csv", "table.csv", "path to the instruction table CSV")
	flag.Parse()

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("generator: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ','
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		log.Fatalf("generator: reading %s: %v", *csvPath, err)
	}

	var defs []*instructions.Definition
	for i, rec := range records {
		if i == 0 || len(rec) == 0 {
			continue // header row
		}
		mnemonic, pattern := rec[0], rec[1]
		if len(strings.ReplaceAll(pattern, "_", "")) != 16 {
			log.Fatalf("generator: %s: pattern %q is not 16 bits", mnemonic, pattern)
		}
		defs = append(defs, instructions.NewDefinition(mnemonic, pattern, nil))
	}

	if problems := instructions.Validate(defs); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, "generator: ambiguous: "+p)
		}
		log.Fatalf("generator: %d ambiguous pattern pair(s) found", len(problems))
	}

	fmt.Printf("generator: %d instruction forms validated, no ambiguity\n", len(defs))
}

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

// Command instrviz renders the instruction catalog as a Graphviz dot
// file: one node per operand shape, fanning out to the instruction
// forms that share it. Useful for eyeballing the decode space when
// editing the table -- pipe the output through dot:
//
//	go run ./cmd/instrviz | dot -Tsvg -o table.svg
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/attiny85sim/atsim85/hardware/cpu/instructions"
)

// form is the view of one Definition that is worth drawing: everything
// except the Exec closure, which has no useful graph shape.
type form struct {
	Mnemonic string
	Pattern  string
	Mask     string
	Value    string
	TwoWord  bool
}

// catalog groups forms by their operand shape.
type catalog struct {
	Shapes map[string][]form
}

func main() {
	out := flag.String("o", "", "write dot output to file instead of stdout")
	flag.Parse()

	c := catalog{Shapes: make(map[string][]form)}
	for _, d := range instructions.Table {
		key := shapeKey(d.Operands)
		c.Shapes[key] = append(c.Shapes[key], form{
			Mnemonic: d.Mnemonic,
			Pattern:  d.Pattern,
			Mask:     fmt.Sprintf("%#04x", d.Mask),
			Value:    fmt.Sprintf("%#04x", d.Value),
			TwoWord:  d.TwoWord,
		})
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("instrviz: %v", err)
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, &c)
}

func shapeKey(ops []instructions.OperandKind) string {
	if len(ops) == 0 {
		return "implicit"
	}
	key := ""
	for i, op := range ops {
		if i > 0 {
			key += ","
		}
		key += opName(op)
	}
	return key
}

func opName(op instructions.OperandKind) string {
	switch op {
	case instructions.OperandReg5:
		return "reg5"
	case instructions.OperandRegHigh:
		return "reghigh"
	case instructions.OperandRegPair:
		return "regpair"
	case instructions.OperandImm:
		return "imm"
	case instructions.OperandBit:
		return "bit"
	case instructions.OperandIOAddr5:
		return "ioaddr5"
	case instructions.OperandIOAddr6:
		return "ioaddr6"
	case instructions.OperandBranchOffset7:
		return "branchoffset7"
	case instructions.OperandWordOffset12:
		return "wordoffset12"
	case instructions.OperandSREGBit3:
		return "sregbit3"
	case instructions.OperandDisp6:
		return "disp6"
	}
	return "unknown"
}

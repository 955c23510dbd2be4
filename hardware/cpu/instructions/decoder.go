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

package instructions

import (
	"fmt"
	"math/bits"
	"sort"
)

// Dispatch is a precomputed 65536-entry lookup table from opcode to the
// most specific matching Definition. Building it is the decoder's only
// real work; decoding an opcode at run time is a single array index.
type Dispatch [65536]*Definition

// BuildDispatchTable sorts defs by descending mask specificity (most
// fixed bits first) and fills every opcode slot with the first
// definition whose mask/value pair matches it. A later, less specific
// definition never overwrites an earlier, more specific match -- this
// is what gives two-word LDS/STS priority handling and the rest of the
// catalog its "most specific wins" semantics.
func BuildDispatchTable(defs []*Definition) *Dispatch {
	sorted := make([]*Definition, len(defs))
	copy(sorted, defs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bits.OnesCount16(sorted[i].Mask) > bits.OnesCount16(sorted[j].Mask)
	})

	var table Dispatch
	for op := 0; op < len(table); op++ {
		for _, d := range sorted {
			if uint16(op)&d.Mask == d.Value {
				table[op] = d
				break
			}
		}
	}
	return &table
}

// Decode looks up the Definition matching opcode, or nil if no
// definition's pattern matches (an unimplemented or illegal opcode).
func (t *Dispatch) Decode(opcode uint16) *Definition {
	return t[opcode]
}

// Validate reports every pair of definitions in defs that can both
// match some concrete opcode despite having equal specificity -- a
// genuine ambiguity the table can't resolve by mask popcount alone.
//
// An opcode matching both definitions exists exactly when their fixed
// bits agree wherever the two masks overlap: such an opcode is then
// a.Value|b.Value with the remaining free bits chosen arbitrarily.
func Validate(defs []*Definition) []string {
	var problems []string
	for i := 0; i < len(defs); i++ {
		for j := i + 1; j < len(defs); j++ {
			a, b := defs[i], defs[j]
			if bits.OnesCount16(a.Mask) != bits.OnesCount16(b.Mask) {
				continue
			}
			common := a.Mask & b.Mask
			if a.Value&common != b.Value&common {
				continue
			}
			problems = append(problems, fmt.Sprintf(
				"%s (%s) and %s (%s) both match opcode %#04x",
				a.Mnemonic, a.Pattern, b.Mnemonic, b.Pattern, a.Value|b.Value))
		}
	}
	return problems
}

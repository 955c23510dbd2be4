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

package registers

// AddFlags computes H, V, C (and, via the caller, N/Z/S from the
// result) for an 8-bit addition result = d + r (+ carryIn). Grounded on
// the reference implementation's C1/C2/C3 and H1/H2/H3 carry-from-bit
// formulas: a carry into bit w+1 occurred if both source bits were set,
// or if exactly one source bit was set and the result bit is clear.
func AddFlags(d, r, result uint8) (h, v, c bool) {
	d32, r32, res32 := uint32(d), uint32(r), uint32(result)

	c1 := GetBit(d32, 7) && GetBit(r32, 7)
	c2 := GetBit(d32, 7) && !GetBit(res32, 7)
	c3 := !GetBit(res32, 7) && GetBit(r32, 7)
	c = c1 || c2 || c3

	h1 := GetBit(d32, 3) && GetBit(r32, 3)
	h2 := GetBit(d32, 3) && !GetBit(res32, 3)
	h3 := !GetBit(res32, 3) && GetBit(r32, 3)
	h = h1 || h2 || h3

	v1 := GetBit(d32, 7) && GetBit(r32, 7) && !GetBit(res32, 7)
	v2 := !GetBit(d32, 7) && !GetBit(r32, 7) && GetBit(res32, 7)
	v = v1 || v2

	return h, v, c
}

// SubFlags computes H, V, C for an 8-bit subtraction result = d - r (-
// carryIn). This is AddFlags with the source-bit sense inverted, per the
// reference's check_invert variant of the same carry-bit formulas.
func SubFlags(d, r, result uint8) (h, v, c bool) {
	d32, r32, res32 := uint32(d), uint32(r), uint32(result)

	c1 := !GetBit(d32, 7) && GetBit(r32, 7)
	c2 := !GetBit(d32, 7) && GetBit(res32, 7)
	c3 := GetBit(res32, 7) && GetBit(r32, 7)
	c = c1 || c2 || c3

	h1 := !GetBit(d32, 3) && GetBit(r32, 3)
	h2 := !GetBit(d32, 3) && GetBit(res32, 3)
	h3 := GetBit(res32, 3) && GetBit(r32, 3)
	h = h1 || h2 || h3

	v1 := !GetBit(res32, 7) && GetBit(d32, 7) && !GetBit(r32, 7)
	v2 := GetBit(res32, 7) && !GetBit(d32, 7) && GetBit(r32, 7)
	v = v1 || v2

	return h, v, c
}

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

//go:generate go run ./generator -csv table.csv

package instructions

import "github.com/attiny85sim/atsim85/hardware/cpu/registers"

// def is a small constructor wrapper so the catalog below reads close to
// the CSV table it mirrors: mnemonic, pattern, operand shape, effect.
func def(mnemonic, pattern string, operands []OperandKind, exec ExecFunc) *Definition {
	d := NewDefinition(mnemonic, pattern, exec)
	d.Operands = operands
	return d
}

func twoWord(d *Definition) *Definition {
	d.TwoWord = true
	return d
}

// regHigh maps a 4-bit field value onto the R16-R31 window used by the
// immediate-operand ALU instructions (ANDI, ORI, SUBI, SBCI, CPI, LDI).
func regHigh(field uint16) uint8 {
	return uint8(16 + field)
}

func addFlags8(s *registers.StatusRegister, d, r, result uint8) {
	h, v, c := registers.AddFlags(d, r, result)
	s.H, s.V, s.C = h, v, c
	s.N = result&0x80 != 0
	s.Z = result == 0
	s.S = s.N != s.V
}

func subFlags8(s *registers.StatusRegister, d, r, result uint8, preserveZero bool) {
	h, v, c := registers.SubFlags(d, r, result)
	s.H, s.V, s.C = h, v, c
	s.N = result&0x80 != 0
	if preserveZero {
		s.Z = result == 0 && s.Z
	} else {
		s.Z = result == 0
	}
	s.S = s.N != s.V
}

// Table is the full catalog of instruction forms this simulator
// recognises. Ordering here is cosmetic; BuildDispatchTable sorts by
// specificity before filling the lookup table.
var Table = []*Definition{
	def("NOP", "0000_0000_0000_0000", nil, func(c CPU, op uint16, d *Definition) {}),

	// ---- 8-bit ALU, register-register ----
	def("ADD", "0000_11rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		dv, rv := c.GetReg(rd), c.GetReg(rr)
		res := dv + rv
		c.SetReg(rd, res)
		addFlags8(c.SREG(), dv, rv, res)
	}),
	def("ADC", "0001_11rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		dv, rv := c.GetReg(rd), c.GetReg(rr)
		carry := uint8(0)
		if c.SREG().C {
			carry = 1
		}
		res := dv + rv + carry
		c.SetReg(rd, res)
		addFlags8(c.SREG(), dv, rv, res)
	}),
	def("SUB", "0001_10rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		dv, rv := c.GetReg(rd), c.GetReg(rr)
		res := dv - rv
		c.SetReg(rd, res)
		subFlags8(c.SREG(), dv, rv, res, false)
	}),
	def("SBC", "0000_10rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		dv, rv := c.GetReg(rd), c.GetReg(rr)
		borrow := uint8(0)
		if c.SREG().C {
			borrow = 1
		}
		res := dv - rv - borrow
		c.SetReg(rd, res)
		subFlags8(c.SREG(), dv, rv, res, true)
	}),
	def("AND", "0010_00rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		res := c.GetReg(rd) & c.GetReg(rr)
		c.SetReg(rd, res)
		c.SREG().SetArithmeticFlags8(res)
	}),
	def("OR", "0010_10rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		res := c.GetReg(rd) | c.GetReg(rr)
		c.SetReg(rd, res)
		c.SREG().SetArithmeticFlags8(res)
	}),
	def("EOR", "0010_01rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		res := c.GetReg(rd) ^ c.GetReg(rr)
		c.SetReg(rd, res)
		c.SREG().SetArithmeticFlags8(res)
	}),
	def("MOV", "0010_11rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		c.SetReg(rd, c.GetReg(rr))
	}),
	def("CP", "0001_01rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		dv, rv := c.GetReg(rd), c.GetReg(rr)
		subFlags8(c.SREG(), dv, rv, dv-rv, false)
	}),
	def("CPC", "0000_01rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		dv, rv := c.GetReg(rd), c.GetReg(rr)
		borrow := uint8(0)
		if c.SREG().C {
			borrow = 1
		}
		subFlags8(c.SREG(), dv, rv, dv-rv-borrow, true)
	}),
	def("CPSE", "0001_00rd_dddd_rrrr", []OperandKind{OperandReg5, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd, rr := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'r'))
		if c.GetReg(rd) == c.GetReg(rr) {
			c.SetSkip()
		}
	}),

	// ---- 8-bit ALU, register-immediate (Rd restricted to r16..31) ----
	def("ANDI", "0111_KKKK_dddd_KKKK", []OperandKind{OperandRegHigh, OperandImm}, func(c CPU, op uint16, d *Definition) {
		rd := regHigh(d.Field(op, 'd'))
		res := c.GetReg(rd) & uint8(d.Field(op, 'K'))
		c.SetReg(rd, res)
		c.SREG().SetArithmeticFlags8(res)
	}),
	def("ORI", "0110_KKKK_dddd_KKKK", []OperandKind{OperandRegHigh, OperandImm}, func(c CPU, op uint16, d *Definition) {
		rd := regHigh(d.Field(op, 'd'))
		res := c.GetReg(rd) | uint8(d.Field(op, 'K'))
		c.SetReg(rd, res)
		c.SREG().SetArithmeticFlags8(res)
	}),
	def("SUBI", "0101_KKKK_dddd_KKKK", []OperandKind{OperandRegHigh, OperandImm}, func(c CPU, op uint16, d *Definition) {
		rd := regHigh(d.Field(op, 'd'))
		k := uint8(d.Field(op, 'K'))
		dv := c.GetReg(rd)
		res := dv - k
		c.SetReg(rd, res)
		subFlags8(c.SREG(), dv, k, res, false)
	}),
	def("SBCI", "0100_KKKK_dddd_KKKK", []OperandKind{OperandRegHigh, OperandImm}, func(c CPU, op uint16, d *Definition) {
		rd := regHigh(d.Field(op, 'd'))
		k := uint8(d.Field(op, 'K'))
		dv := c.GetReg(rd)
		borrow := uint8(0)
		if c.SREG().C {
			borrow = 1
		}
		res := dv - k - borrow
		c.SetReg(rd, res)
		subFlags8(c.SREG(), dv, k, res, true)
	}),
	def("CPI", "0011_KKKK_dddd_KKKK", []OperandKind{OperandRegHigh, OperandImm}, func(c CPU, op uint16, d *Definition) {
		rd := regHigh(d.Field(op, 'd'))
		k := uint8(d.Field(op, 'K'))
		dv := c.GetReg(rd)
		subFlags8(c.SREG(), dv, k, dv-k, false)
	}),
	def("LDI", "1110_KKKK_dddd_KKKK", []OperandKind{OperandRegHigh, OperandImm}, func(c CPU, op uint16, d *Definition) {
		rd := regHigh(d.Field(op, 'd'))
		c.SetReg(rd, uint8(d.Field(op, 'K')))
	}),

	// ---- single-operand ALU ----
	def("COM", "1001_010d_dddd_0000", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		res := ^c.GetReg(rd)
		c.SetReg(rd, res)
		s := c.SREG()
		s.SetArithmeticFlags8(res)
		s.C = true
	}),
	def("NEG", "1001_010d_dddd_0001", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		dv := c.GetReg(rd)
		res := uint8(0) - dv
		c.SetReg(rd, res)
		subFlags8(c.SREG(), 0, dv, res, false)
	}),
	def("SWAP", "1001_010d_dddd_0010", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		v := c.GetReg(rd)
		c.SetReg(rd, v<<4|v>>4)
	}),
	def("INC", "1001_010d_dddd_0011", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		dv := c.GetReg(rd)
		res := dv + 1
		c.SetReg(rd, res)
		s := c.SREG()
		s.N = res&0x80 != 0
		s.Z = res == 0
		s.V = dv == 0x7f
		s.S = s.N != s.V
	}),
	def("DEC", "1001_010d_dddd_1010", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		dv := c.GetReg(rd)
		res := dv - 1
		c.SetReg(rd, res)
		s := c.SREG()
		s.N = res&0x80 != 0
		s.Z = res == 0
		s.V = dv == 0x80
		s.S = s.N != s.V
	}),
	def("LSR", "1001_010d_dddd_0110", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		dv := c.GetReg(rd)
		res := dv >> 1
		c.SetReg(rd, res)
		s := c.SREG()
		s.C = dv&1 != 0
		s.N = false
		s.Z = res == 0
		s.V = s.N != s.C
		s.S = s.N != s.V
	}),
	def("ROR", "1001_010d_dddd_0111", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		dv := c.GetReg(rd)
		cin := uint8(0)
		if c.SREG().C {
			cin = 0x80
		}
		res := dv>>1 | cin
		c.SetReg(rd, res)
		s := c.SREG()
		s.C = dv&1 != 0
		s.N = res&0x80 != 0
		s.Z = res == 0
		s.V = s.N != s.C
		s.S = s.N != s.V
	}),
	def("ASR", "1001_010d_dddd_0101", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		dv := c.GetReg(rd)
		res := (dv >> 1) | (dv & 0x80)
		c.SetReg(rd, res)
		s := c.SREG()
		s.C = dv&1 != 0
		s.N = res&0x80 != 0
		s.Z = res == 0
		s.V = s.N != s.C
		s.S = s.N != s.V
	}),

	// ---- register pair move ----
	def("MOVW", "0000_0001_dddd_rrrr", []OperandKind{OperandRegPair, OperandRegPair}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd')) * 2
		rr := uint8(d.Field(op, 'r')) * 2
		c.SetReg(rd, c.GetReg(rr))
		c.SetReg(rd+1, c.GetReg(rr+1))
	}),

	// ---- SREG bit set/clear, and its assembler aliases ----
	def("BSET", "1001_0100_0sss_1000", []OperandKind{OperandSREGBit3}, func(c CPU, op uint16, d *Definition) {
		s := uint8(d.Field(op, 's'))
		*c.SREG().Flag(s) = true
	}),
	def("BCLR", "1001_0100_1sss_1000", []OperandKind{OperandSREGBit3}, func(c CPU, op uint16, d *Definition) {
		s := uint8(d.Field(op, 's'))
		*c.SREG().Flag(s) = false
	}),

	def("BLD", "1111_100d_dddd_0bbb", []OperandKind{OperandReg5, OperandBit}, func(c CPU, op uint16, d *Definition) {
		rd, b := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'b'))
		v := c.GetReg(rd)
		if c.SREG().T {
			v |= 1 << b
		} else {
			v &^= 1 << b
		}
		c.SetReg(rd, v)
	}),
	def("BST", "1111_101d_dddd_0bbb", []OperandKind{OperandReg5, OperandBit}, func(c CPU, op uint16, d *Definition) {
		rd, b := uint8(d.Field(op, 'd')), uint8(d.Field(op, 'b'))
		c.SREG().T = c.GetReg(rd)&(1<<b) != 0
	}),
	def("SBRC", "1111_110r_rrrr_0bbb", []OperandKind{OperandReg5, OperandBit}, func(c CPU, op uint16, d *Definition) {
		rr, b := uint8(d.Field(op, 'r')), uint8(d.Field(op, 'b'))
		if c.GetReg(rr)&(1<<b) == 0 {
			c.SetSkip()
		}
	}),
	def("SBRS", "1111_111r_rrrr_0bbb", []OperandKind{OperandReg5, OperandBit}, func(c CPU, op uint16, d *Definition) {
		rr, b := uint8(d.Field(op, 'r')), uint8(d.Field(op, 'b'))
		if c.GetReg(rr)&(1<<b) != 0 {
			c.SetSkip()
		}
	}),

	// ---- I/O bit and byte access ----
	def("SBI", "1001_1010_AAAA_Abbb", []OperandKind{OperandIOAddr5, OperandBit}, func(c CPU, op uint16, d *Definition) {
		a, b := ioDataAddr(d.Field(op, 'A')), uint8(d.Field(op, 'b'))
		c.DataSet(a, c.DataGet(a)|1<<b)
	}),
	def("CBI", "1001_1000_AAAA_Abbb", []OperandKind{OperandIOAddr5, OperandBit}, func(c CPU, op uint16, d *Definition) {
		a, b := ioDataAddr(d.Field(op, 'A')), uint8(d.Field(op, 'b'))
		c.DataSet(a, c.DataGet(a)&^(1<<b))
	}),
	def("SBIC", "1001_1001_AAAA_Abbb", []OperandKind{OperandIOAddr5, OperandBit}, func(c CPU, op uint16, d *Definition) {
		a, b := ioDataAddr(d.Field(op, 'A')), uint8(d.Field(op, 'b'))
		if c.DataGet(a)&(1<<b) == 0 {
			c.SetSkip()
		}
	}),
	def("SBIS", "1001_1011_AAAA_Abbb", []OperandKind{OperandIOAddr5, OperandBit}, func(c CPU, op uint16, d *Definition) {
		a, b := ioDataAddr(d.Field(op, 'A')), uint8(d.Field(op, 'b'))
		if c.DataGet(a)&(1<<b) != 0 {
			c.SetSkip()
		}
	}),
	def("IN", "1011_0AAd_dddd_AAAA", []OperandKind{OperandReg5, OperandIOAddr6}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		c.SetReg(rd, c.DataGet(ioDataAddr(d.Field(op, 'A'))))
	}),
	def("OUT", "1011_1AAd_dddd_AAAA", []OperandKind{OperandIOAddr6, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		c.DataSet(ioDataAddr(d.Field(op, 'A')), c.GetReg(rd))
	}),

	// ---- stack ----
	def("PUSH", "1001_001d_dddd_1111", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		c.Push8(c.GetReg(uint8(d.Field(op, 'd'))))
	}),
	def("POP", "1001_000d_dddd_1111", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		c.SetReg(uint8(d.Field(op, 'd')), c.Pop8())
	}),

	// ---- branches and calls ----
	def("RJMP", "1100_kkkk_kkkk_kkkk", []OperandKind{OperandWordOffset12}, func(c CPU, op uint16, d *Definition) {
		off := SignExtend(d.Field(op, 'k'), 12)
		c.SetPC((c.PC() + uint16(off)) & c.PCMask())
	}),
	def("RCALL", "1101_kkkk_kkkk_kkkk", []OperandKind{OperandWordOffset12}, func(c CPU, op uint16, d *Definition) {
		off := SignExtend(d.Field(op, 'k'), 12)
		c.Push16(c.PC())
		c.SetPC((c.PC() + uint16(off)) & c.PCMask())
	}),
	def("RET", "1001_0101_0000_1000", nil, func(c CPU, op uint16, d *Definition) {
		c.SetPC(c.Pop16() & c.PCMask())
	}),
	def("RETI", "1001_0101_0001_1000", nil, func(c CPU, op uint16, d *Definition) {
		c.SetPC(c.Pop16() & c.PCMask())
		c.SREG().I = true
	}),
	def("BRBS", "1111_00kk_kkkk_ksss", []OperandKind{OperandSREGBit3, OperandBranchOffset7}, func(c CPU, op uint16, d *Definition) {
		s := uint8(d.Field(op, 's'))
		if *c.SREG().Flag(s) {
			off := SignExtend(d.Field(op, 'k'), 7)
			c.SetPC((c.PC() + uint16(off)) & c.PCMask())
		}
	}),
	def("BRBC", "1111_01kk_kkkk_ksss", []OperandKind{OperandSREGBit3, OperandBranchOffset7}, func(c CPU, op uint16, d *Definition) {
		s := uint8(d.Field(op, 's'))
		if !*c.SREG().Flag(s) {
			off := SignExtend(d.Field(op, 'k'), 7)
			c.SetPC((c.PC() + uint16(off)) & c.PCMask())
		}
	}),
	def("IJMP", "1001_0100_0000_1001", nil, func(c CPU, op uint16, d *Definition) {
		c.SetPC(c.GetRegPair(30) & c.PCMask())
	}),
	def("ICALL", "1001_0101_0000_1001", nil, func(c CPU, op uint16, d *Definition) {
		c.Push16(c.PC())
		c.SetPC(c.GetRegPair(30) & c.PCMask())
	}),

	// ---- load program memory ----
	def("LPM_R0_Z", "1001_0101_1100_1000", nil, func(c CPU, op uint16, d *Definition) {
		z := c.GetRegPair(30)
		c.SetReg(0, c.FlashByte(z))
	}),
	def("LPM", "1001_000d_dddd_0100", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		z := c.GetRegPair(30)
		c.SetReg(rd, c.FlashByte(z))
	}),
	def("LPM_INC", "1001_000d_dddd_0101", []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		z := c.GetRegPair(30)
		c.SetReg(rd, c.FlashByte(z))
		c.SetRegPair(30, z+1)
	}),

	// ---- indirect load/store via X/Y/Z ----
	indirectLoad("LD_X", "1001_000d_dddd_1100", 26, 0),
	indirectLoad("LD_X_INC", "1001_000d_dddd_1101", 26, +1),
	indirectLoad("LD_X_DEC", "1001_000d_dddd_1110", 26, -1),
	indirectLoad("LD_Y", "1000_000d_dddd_1000", 28, 0),
	indirectLoad("LD_Y_INC", "1001_000d_dddd_1001", 28, +1),
	indirectLoad("LD_Y_DEC", "1001_000d_dddd_1010", 28, -1),
	indirectLoad("LD_Z", "1000_000d_dddd_0000", 30, 0),
	indirectLoad("LD_Z_INC", "1001_000d_dddd_0001", 30, +1),
	indirectLoad("LD_Z_DEC", "1001_000d_dddd_0010", 30, -1),

	indirectStore("ST_X", "1001_001r_rrrr_1100", 26, 0),
	indirectStore("ST_X_INC", "1001_001r_rrrr_1101", 26, +1),
	indirectStore("ST_X_DEC", "1001_001r_rrrr_1110", 26, -1),
	indirectStore("ST_Y", "1000_001r_rrrr_1000", 28, 0),
	indirectStore("ST_Y_INC", "1001_001r_rrrr_1001", 28, +1),
	indirectStore("ST_Y_DEC", "1001_001r_rrrr_1010", 28, -1),
	indirectStore("ST_Z", "1000_001r_rrrr_0000", 30, 0),
	indirectStore("ST_Z_INC", "1001_001r_rrrr_0001", 30, +1),
	indirectStore("ST_Z_DEC", "1001_001r_rrrr_0010", 30, -1),

	// ---- displacement load/store via Y/Z (q=0 decodes as plain LD/ST,
	// which has the more specific pattern and so wins the dispatch) ----
	displacedLoad("LDD_Y_Q", "10q0_qq0d_dddd_1qqq", 28),
	displacedLoad("LDD_Z_Q", "10q0_qq0d_dddd_0qqq", 30),
	displacedStore("STD_Y_Q", "10q0_qq1r_rrrr_1qqq", 28),
	displacedStore("STD_Z_Q", "10q0_qq1r_rrrr_0qqq", 30),

	// ---- direct 16-bit-address load/store (two-word forms) ----
	twoWord(def("LDS", "1001_000d_dddd_0000", []OperandKind{OperandReg5, OperandImm}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		addr := c.FlashWord(c.PC())
		c.SetPC((c.PC() + 1) & c.PCMask())
		c.SetReg(rd, c.DataGet(addr))
	})),
	twoWord(def("STS", "1001_001d_dddd_0000", []OperandKind{OperandImm, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		addr := c.FlashWord(c.PC())
		c.SetPC((c.PC() + 1) & c.PCMask())
		c.DataSet(addr, c.GetReg(rd))
	})),

	// ---- misc ----
	// BREAK is for an attached debugger; with none attached it leaves
	// architectural state alone. WDR and SLEEP have nothing to act on in
	// a model with no watchdog and no clocking.
	def("BREAK", "1001_0101_1001_1000", nil, func(c CPU, op uint16, d *Definition) {}),
	def("SLEEP", "1001_0101_1000_1000", nil, func(c CPU, op uint16, d *Definition) {}),
	def("WDR", "1001_0101_1010_1000", nil, func(c CPU, op uint16, d *Definition) {}),
}

// ioDataAddr turns a 5- or 6-bit I/O register address into a unified
// data-memory address by adding the I/O window base (0x20).
func ioDataAddr(ioAddr uint16) uint16 {
	return ioAddr + 0x20
}

// indirectLoad builds the LD Rd,{X,Y,Z}[+/-] family: base is the
// register-pair base index (26=X, 28=Y, 30=Z), delta is applied to the
// pointer after (positive) or before (negative) the access.
func indirectLoad(mnemonic, pattern string, base uint8, delta int) *Definition {
	return def(mnemonic, pattern, []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		ptr := c.GetRegPair(base)
		if delta < 0 {
			ptr--
			c.SetRegPair(base, ptr)
		}
		c.SetReg(rd, c.DataGet(ptr))
		if delta > 0 {
			c.SetRegPair(base, ptr+1)
		}
	})
}

// displacedLoad builds the LDD Rd,{Y,Z}+q pair: base is the register
// pair holding the pointer, q the unsigned 6-bit displacement encoded
// across three separated bit groups.
func displacedLoad(mnemonic, pattern string, base uint8) *Definition {
	return def(mnemonic, pattern, []OperandKind{OperandReg5, OperandDisp6}, func(c CPU, op uint16, d *Definition) {
		rd := uint8(d.Field(op, 'd'))
		q := d.Field(op, 'q')
		c.SetReg(rd, c.DataGet(c.GetRegPair(base)+q))
	})
}

// displacedStore builds the STD {Y,Z}+q,Rr pair.
func displacedStore(mnemonic, pattern string, base uint8) *Definition {
	return def(mnemonic, pattern, []OperandKind{OperandDisp6, OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rr := uint8(d.Field(op, 'r'))
		q := d.Field(op, 'q')
		c.DataSet(c.GetRegPair(base)+q, c.GetReg(rr))
	})
}

// indirectStore builds the ST {X,Y,Z}[+/-],Rr family.
func indirectStore(mnemonic, pattern string, base uint8, delta int) *Definition {
	return def(mnemonic, pattern, []OperandKind{OperandReg5}, func(c CPU, op uint16, d *Definition) {
		rr := uint8(d.Field(op, 'r'))
		ptr := c.GetRegPair(base)
		if delta < 0 {
			ptr--
			c.SetRegPair(base, ptr)
		}
		c.DataSet(ptr, c.GetReg(rr))
		if delta > 0 {
			c.SetRegPair(base, ptr+1)
		}
	})
}

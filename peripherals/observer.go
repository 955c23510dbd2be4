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

// Package peripherals defines the single hook a simulated machine
// offers for attaching peripheral behaviour: synchronous callbacks
// around data-memory access and around each cycle. The core never
// depends on a concrete peripheral; peripherals depend on the core.
package peripherals

// Machine is the minimal surface a peripheral needs to observe or drive
// state. It is satisfied by *hardware/machine.Machine.
type Machine interface {
	DataByte(addr uint16) uint8
	SetDataByte(addr uint16, v uint8)
}

// Observer is notified around every data-memory access in the I/O
// register range, and around every cycle. All six methods are called
// synchronously, on the same goroutine that is driving the machine; an
// Observer must never block.
type Observer interface {
	PreGet(m Machine, addr uint16)
	PostGet(m Machine, addr uint16, v uint8)
	PreSet(m Machine, addr uint16, v uint8)
	PostSet(m Machine, addr uint16)
	PreTick(m Machine)
	PostTick(m Machine)
}

// Multi fans a single observer slot out to several observers, called in
// registration order. Used by callers that want more than one
// peripheral watching the same machine.
type Multi []Observer

func (m Multi) PreGet(mc Machine, addr uint16) {
	for _, o := range m {
		o.PreGet(mc, addr)
	}
}

func (m Multi) PostGet(mc Machine, addr uint16, v uint8) {
	for _, o := range m {
		o.PostGet(mc, addr, v)
	}
}

func (m Multi) PreSet(mc Machine, addr uint16, v uint8) {
	for _, o := range m {
		o.PreSet(mc, addr, v)
	}
}

func (m Multi) PostSet(mc Machine, addr uint16) {
	for _, o := range m {
		o.PostSet(mc, addr)
	}
}

func (m Multi) PreTick(mc Machine) {
	for _, o := range m {
		o.PreTick(mc)
	}
}

func (m Multi) PostTick(mc Machine) {
	for _, o := range m {
		o.PostTick(mc)
	}
}

// This file is part of delf - a bytecode assembler and virtual machine toolchain
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"math"

	"github.com/pkg/errors"

	"github.com/dvm-project/delf/opcode"
)

// floatEpsilon bounds the EQF64/NEQF64 comparisons; it matches the
// originating implementation's use of the float64 machine epsilon rather
// than a bit-exact comparison.
const floatEpsilon = 2.220446049250313e-16

func (i *Instance) reg(n byte) int32 {
	if int(n) >= NumRegisters {
		raise(ErrRegisterOutOfRange)
	}
	return i.Registers[n]
}

func (i *Instance) setReg(n byte, v int32) {
	if int(n) >= NumRegisters {
		raise(ErrRegisterOutOfRange)
	}
	i.Registers[n] = v
}

func (i *Instance) freg(n byte) float64 {
	if int(n) >= NumRegisters {
		raise(ErrRegisterOutOfRange)
	}
	return i.FloatRegisters[n]
}

func (i *Instance) setFreg(n byte, v float64) {
	if int(n) >= NumRegisters {
		raise(ErrRegisterOutOfRange)
	}
	i.FloatRegisters[n] = v
}

func (i *Instance) push(v int32) {
	if i.sp >= len(i.stack) {
		raise(ErrStackOverflow)
	}
	i.stack[i.sp] = v
	i.sp++
}

func (i *Instance) pop() int32 {
	if i.sp <= 0 {
		raise(ErrStackUnderflow)
	}
	i.sp--
	return i.stack[i.sp]
}

// Run executes instructions from the current PC until the program is
// exhausted or HLT is reached.
//
// Run recovers any panic raised by the decode/execute loop (division by
// zero, an out-of-range register or heap access, a stack over/underflow, a
// backward jump before the start of the program) and turns it into a
// wrapped error reporting the PC at which execution stopped, preserving
// the "halting panic" semantics the VM core is specified to have without
// threading an error return through every opcode case below.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			f, ok := e.(fault)
			if !ok {
				panic(e)
			}
			err = errors.Wrapf(f.err, "vm: halted at pc=%d (%d instructions executed, %d-byte program)", i.PC, i.insCount, len(i.Program))
		}
	}()
	i.insCount = 0
	for i.PC < len(i.Program) {
		i.step()
		i.insCount++
	}
	return nil
}

// RunOnce executes a single instruction and reports whether the program
// counter still points inside the loaded program afterwards.
func (i *Instance) RunOnce() (more bool, err error) {
	defer func() {
		if e := recover(); e != nil {
			f, ok := e.(fault)
			if !ok {
				panic(e)
			}
			err = errors.Wrapf(f.err, "vm: halted at pc=%d", i.PC)
		}
	}()
	if i.PC >= len(i.Program) {
		return false, nil
	}
	i.step()
	i.insCount++
	return i.PC < len(i.Program), nil
}

// step fetches and executes exactly one 4-byte instruction. Every
// instruction consumes its full 4-byte frame regardless of how many of the
// trailing 3 bytes its shape actually uses, so that byte offsets computed
// by the assembler (which always emits 4-byte words) stay in sync with the
// VM's program counter; this is why CALL's saved return address is always
// a multiple of the instruction stream's 4-byte grain.
func (i *Instance) step() {
	pc := i.PC
	if pc+4 > len(i.Program) {
		raise(ErrTruncatedInstruction)
	}
	op := opcode.Code(i.Program[pc])
	b1, b2, b3 := i.Program[pc+1], i.Program[pc+2], i.Program[pc+3]
	i.PC = pc + 4

	switch op {
	case opcode.HLT:
		i.PC = len(i.Program)

	case opcode.LOAD:
		i.setReg(b1, int32(imm16(b2, b3)))
	case opcode.ADD:
		i.setReg(b3, i.reg(b1)+i.reg(b2))
	case opcode.SUB:
		i.setReg(b3, i.reg(b1)-i.reg(b2))
	case opcode.MUL:
		i.setReg(b3, i.reg(b1)*i.reg(b2))
	case opcode.DIV:
		rb := i.reg(b2)
		if rb == 0 {
			raise(ErrDivisionByZero)
		}
		ra := i.reg(b1)
		i.setReg(b3, ra/rb)
		i.Remainder = uint32(ra % rb)

	case opcode.JMP:
		i.PC = int(i.reg(b1))
	case opcode.JMPF:
		i.PC += int(i.reg(b1))
	case opcode.JMPB:
		step := int(i.reg(b1))
		if i.PC < step {
			raise(ErrJumpBackUnderflow)
		}
		i.PC -= step

	case opcode.EQ:
		i.CmpFlag = i.reg(b1) == i.reg(b2)
	case opcode.LT:
		i.CmpFlag = i.reg(b1) < i.reg(b2)
	case opcode.LTE:
		i.CmpFlag = i.reg(b1) <= i.reg(b2)
	case opcode.GT:
		i.CmpFlag = i.reg(b1) > i.reg(b2)
	case opcode.GTE:
		i.CmpFlag = i.reg(b1) >= i.reg(b2)

	case opcode.JE:
		if i.CmpFlag {
			i.PC = int(i.reg(b1))
		}
	case opcode.JNE:
		if !i.CmpFlag {
			i.PC = int(i.reg(b1))
		}
	case opcode.JLT, opcode.JGT:
		// Shares JE's semantics per the originating implementation:
		// the distinct comparison is performed by LT/GT beforehand and
		// this opcode only tests the resulting flag.
		if i.CmpFlag {
			i.PC = int(i.reg(b1))
		}

	case opcode.ALOC:
		n := i.reg(b1)
		if n < 0 || len(i.Heap)+int(n) < 0 {
			raise(ErrHeapOutOfRange)
		}
		i.Heap = append(i.Heap, make([]byte, n)...)
	case opcode.INC:
		i.setReg(b1, i.reg(b1)+1)
	case opcode.DEC:
		i.setReg(b1, i.reg(b1)-1)

	case opcode.PRTS:
		i.prts(i.reg(b1))

	case opcode.LOADF64:
		i.setFreg(b1, float64(imm16(b2, b3)))
	case opcode.ADDF64:
		i.setFreg(b3, i.freg(b1)+i.freg(b2))
	case opcode.SUBF64:
		i.setFreg(b3, i.freg(b1)-i.freg(b2))
	case opcode.MULF64:
		i.setFreg(b3, i.freg(b1)*i.freg(b2))
	case opcode.DIVF64:
		i.setFreg(b3, i.freg(b1)/i.freg(b2))
	case opcode.EQF64:
		i.CmpFlag = math.Abs(i.freg(b1)-i.freg(b2)) < floatEpsilon
	case opcode.NEQF64:
		i.CmpFlag = math.Abs(i.freg(b1)-i.freg(b2)) > floatEpsilon
	case opcode.LTF64:
		i.CmpFlag = i.freg(b1) < i.freg(b2)
	case opcode.LTEF64:
		i.CmpFlag = i.freg(b1) <= i.freg(b2)
	case opcode.GTF64:
		i.CmpFlag = i.freg(b1) > i.freg(b2)
	case opcode.GTEF64:
		i.CmpFlag = i.freg(b1) >= i.freg(b2)

	case opcode.AND:
		i.setReg(b3, i.reg(b1)&i.reg(b2))
	case opcode.OR:
		i.setReg(b3, i.reg(b1)|i.reg(b2))
	case opcode.XOR:
		i.setReg(b3, i.reg(b1)^i.reg(b2))
	case opcode.NOT:
		i.setReg(b2, ^i.reg(b1))

	case opcode.PUSH:
		i.push(i.reg(b1))
	case opcode.POP:
		i.setReg(b1, i.pop())

	case opcode.CALL:
		target := i.reg(b1)
		retPC := i.PC
		i.push(int32(retPC))
		i.push(int32(i.bp))
		i.bp = i.sp
		i.PC = int(target)
	case opcode.RET:
		i.sp = i.bp
		i.bp = int(i.pop())
		i.PC = int(i.pop())

	default:
		raise(errors.Errorf("vm: illegal opcode %#x at pc=%d", byte(op), pc))
	}
}

func imm16(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

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
	"fmt"
	"io"

	"github.com/dvm-project/delf/opcode"
)

// Disassemble writes a textual disassembly of one instruction at byte
// offset pc in program to w, and returns the offset of the next
// instruction (pc+4, the fixed instruction width). It is a diagnostic aid
// only; it does not validate operand semantics the way Run does.
func Disassemble(program []byte, pc int, w io.Writer) (next int) {
	if pc+4 > len(program) {
		fmt.Fprintf(w, "??? (truncated at %d)", pc)
		return len(program)
	}
	op := opcode.Code(program[pc])
	b1, b2, b3 := program[pc+1], program[pc+2], program[pc+3]

	switch op.Shape() {
	case opcode.None:
		fmt.Fprintf(w, "%s", op)
	case opcode.OneReg:
		fmt.Fprintf(w, "%s $%d", op, b1)
	case opcode.TwoReg:
		fmt.Fprintf(w, "%s $%d $%d", op, b1, b2)
	case opcode.ThreeReg:
		fmt.Fprintf(w, "%s $%d $%d $%d", op, b1, b2, b3)
	case opcode.RegImm16:
		fmt.Fprintf(w, "%s $%d #%d", op, b1, imm16(b2, b3))
	}
	return pc + 4
}

// DisassembleAll writes a disassembly of every instruction in program to w,
// one per line.
func DisassembleAll(program []byte, w io.Writer) {
	for pc := 0; pc < len(program); {
		next := Disassemble(program, pc, w)
		io.WriteString(w, "\n")
		pc = next
	}
}

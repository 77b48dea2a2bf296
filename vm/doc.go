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

// Package vm implements the DELF register machine: 32 signed 32-bit
// integer registers, 32 float64 registers, a program counter, a boolean
// comparison flag, a u32 remainder set by DIV, a byte-addressable heap
// grown only by ALOC, and an int32 operand stack with an explicit stack
// pointer and base pointer.
//
// Use New to create an instance, LoadProgram to install an assembled
// object's code region (LoadProgram accepts the full object, header
// included, and reports whether the DELF magic was present — a bad magic
// is a non-fatal diagnostic, not a load failure), SetROData to install the
// string-constant buffer an asm.Object carries alongside its code, and Run
// to execute to completion:
//
//	i, _ := vm.New()
//	i.LoadProgram(obj.Bytes)
//	i.SetROData(obj.ROData)
//	if err := i.Run(); err != nil {
//		// halting fault: division by zero, stack over/underflow, an
//		// out-of-range register or heap access, or a backward jump
//		// before the start of the program
//	}
//
// Every instruction is a fixed 4-byte word: one opcode byte followed by
// three operand bytes, regardless of how many of those bytes the opcode's
// shape actually uses. CALL pushes the return address as the byte offset
// immediately after its own 4-byte frame, followed by the caller's base
// pointer; RET restores both and pops the saved return address into PC.
package vm

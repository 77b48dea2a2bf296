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

// Package opcode is the authoritative mapping between mnemonic, numeric
// opcode and operand shape for the DELF virtual machine's instruction set.
//
//	code	mnemonic	shape		description
//	0x00	HLT		none		halt execution
//	0x01	LOAD		reg,imm16	register <- zero-extended 16-bit immediate
//	0x02	ADD		r,r,r		rC <- rA + rB
//	0x03	SUB		r,r,r		rC <- rA - rB
//	0x04	MUL		r,r,r		rC <- rA * rB
//	0x05	DIV		r,r,r		rC <- rA / rB, remainder <- rA mod rB
//	0x06	JMP		r		pc <- rA
//	0x07	JMPF		r		pc <- pc + rA
//	0x08	JMPB		r		pc <- pc - rA
//	0x09	EQ		r,r		cmp <- rA == rB
//	0x0A	JE		r		if cmp: pc <- rA
//	0x0B	ALOC		r		grow heap by rA bytes
//	0x0C	INC		r		rA <- rA + 1
//	0x0D	DEC		r		rA <- rA - 1
//	0x0E	PRTS		r		print NUL-terminated string at ro_data[rA]
//	0x0F	JNE		r		if !cmp: pc <- rA
//	0x10	JLT		r		if cmp: pc <- rA
//	0x11	JGT		r		if cmp: pc <- rA
//	0x12	LT		r,r		cmp <- rA < rB
//	0x13	LTE		r,r		cmp <- rA <= rB
//	0x14	GT		r,r		cmp <- rA > rB
//	0x15	GTE		r,r		cmp <- rA >= rB
//	0x16	LOADF64		reg,imm16	float register <- widened 16-bit immediate
//	0x17	ADDF64		r,r,r		float form of ADD
//	0x18	SUBF64		r,r,r		float form of SUB
//	0x19	MULF64		r,r,r		float form of MUL
//	0x1A	DIVF64		r,r,r		float form of DIV
//	0x1B	EQF64		r,r		float form of EQ (epsilon compare)
//	0x1C	NEQF64		r,r		float form of EQ, negated
//	0x1D	LTF64		r,r		float form of LT
//	0x1E	LTEF64		r,r		float form of LTE
//	0x1F	GTF64		r,r		float form of GT
//	0x20	GTEF64		r,r		float form of GTE
//	0x21	AND		r,r,r		bitwise and
//	0x22	OR		r,r,r		bitwise or
//	0x23	XOR		r,r,r		bitwise xor
//	0x24	NOT		r,r		rB <- ^rA
//	0x25	PUSH		r		stack.push(rA)
//	0x26	POP		r		rA <- stack.pop()
//	0x27	CALL		r		call rA
//	0x28	RET		none		return
//
// Every instruction encodes to exactly 4 bytes: the opcode followed by three
// operand bytes, trailing unused bytes zero-filled. A register operand
// occupies one byte; a 16-bit immediate or a resolved label offset occupies
// two bytes in big-endian order. Any byte value not assigned above decodes as
// Illegal.
package opcode

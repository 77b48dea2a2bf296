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

// Package asm implements the two-pass DELF assembler: a line tokenizer, an
// instruction parser, a program parser, and the pass-one/pass-two driver
// that turns parsed instructions into a DELF object.
//
// Source syntax is line-oriented and comment-free. Each line is split on
// whitespace into tokens classified by their leading character:
//
//	$n		register n (0-255; the parser admits the wider range and
//			leaves bounds-checking against the VM's 32 registers
//			to the VM, which faults when the instruction executes)
//	#n		signed 32-bit integer literal
//	@name		label use
//	.name		directive
//	name:		label declaration
//	"..."		string literal (may span multiple whitespace-separated
//			fields; re-joined with single spaces)
//	LOAD, ADD, ...	opcode mnemonic (case-insensitive; label and
//			directive names are case-sensitive)
//
// A label declaration may prefix a directive or an instruction on the same
// line; its fields are folded into whichever follows ("main: load $1 #500"
// declares "main" at the LOAD instruction's offset). A bare "name:" line is
// legal and emits nothing.
//
// Three directives are recognized: .code and .data switch the section that
// subsequent labels and instructions belong to (.bss is accepted as an
// alias for .data); .asciiz "text" appends text's bytes plus a terminating
// NUL to the read-only data section.
//
//	.code
//	main:	load $1 #500
//		add $0 $1 $2
//		prts @hw
//		hlt
//	.data
//	hw:	.asciiz "hello, world"
//
// Assemble runs two passes over the parsed instruction sequence. Pass one
// walks every instruction, sizing the code and data sections and recording
// label offsets, so a label may be used before it is declared (a forward
// reference resolves correctly because pass one sees the entire program,
// both sections, before pass two emits anything). Pass two re-walks the
// same sequence, emitting 4-byte code words and resolving label uses
// against the now fully-populated symbol table. Each operand is packed
// into the instruction's three operand bytes in source order: a register
// consumes one byte, an integer literal or resolved label use consumes two
// bytes in big-endian order; any bytes left over stay zero.
//
// The result is an Object: the 64-byte DELF header followed by code bytes,
// plus the read-only data buffer handed to the VM loader out of band
// rather than appended to the object stream.
package asm

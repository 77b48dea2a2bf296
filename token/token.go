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

// Package token defines the lexical tokens produced by scanning a single
// line of DELF assembly source. A line decomposes into a flat sequence of
// tokens; the instruction parser assembles them into operands, the program
// parser assembles lines into labels, directives and instructions.
package token

import "github.com/dvm-project/delf/opcode"

// Kind discriminates the variants of Token.
type Kind int

const (
	// Op is a bare mnemonic, e.g. "LOAD".
	Op Kind = iota
	// Register is a `$n` register reference.
	Register
	// IntegerOperand is a `#n` integer literal.
	IntegerOperand
	// LabelDeclaration is an identifier followed by `:` at the start of a line.
	LabelDeclaration
	// LabelUsage is an `@name` label reference.
	LabelUsage
	// Directive is a `.name` assembler directive such as `.code` or `.data`.
	Directive
	// IrString is a double-quoted string literal, as produced by `.asciiz`.
	IrString
)

func (k Kind) String() string {
	switch k {
	case Op:
		return "Op"
	case Register:
		return "Register"
	case IntegerOperand:
		return "IntegerOperand"
	case LabelDeclaration:
		return "LabelDeclaration"
	case LabelUsage:
		return "LabelUsage"
	case Directive:
		return "Directive"
	case IrString:
		return "IrString"
	default:
		return "Unknown"
	}
}

// Token is a single lexical unit. Only the fields relevant to Kind are
// populated; the rest hold their zero value.
type Token struct {
	Kind Kind

	// Opcode is set when Kind == Op.
	Opcode opcode.Code
	// Reg is set when Kind == Register.
	Reg byte
	// Value is set when Kind == IntegerOperand.
	Value int32
	// Name is set when Kind is LabelDeclaration, LabelUsage, or Directive —
	// the label or directive name, without its sigil.
	Name string
	// Text is set when Kind == IrString — the decoded string contents
	// (quotes stripped; escape sequences are kept as written).
	Text string
}

// NewOp returns an Op token for c.
func NewOp(c opcode.Code) Token { return Token{Kind: Op, Opcode: c} }

// NewRegister returns a Register token for register number n.
func NewRegister(n byte) Token { return Token{Kind: Register, Reg: n} }

// NewInteger returns an IntegerOperand token holding v.
func NewInteger(v int32) Token { return Token{Kind: IntegerOperand, Value: v} }

// NewLabelDeclaration returns a LabelDeclaration token naming name.
func NewLabelDeclaration(name string) Token { return Token{Kind: LabelDeclaration, Name: name} }

// NewLabelUsage returns a LabelUsage token naming name.
func NewLabelUsage(name string) Token { return Token{Kind: LabelUsage, Name: name} }

// NewDirective returns a Directive token naming name.
func NewDirective(name string) Token { return Token{Kind: Directive, Name: name} }

// NewIrString returns an IrString token holding the decoded text s.
func NewIrString(s string) Token { return Token{Kind: IrString, Text: s} }

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

package asm

import (
	"github.com/pkg/errors"

	"github.com/dvm-project/delf/opcode"
	"github.com/dvm-project/delf/token"
)

// Instruction is one parsed line of source: at most one opcode or
// directive, an optional attached label declaration, and the opcode's
// operand tokens (empty for directives and bare label lines).
type Instruction struct {
	// Line is the 1-based source line number this instruction came from.
	Line int

	Opcode    opcode.Code
	HasOpcode bool

	// Label is the name declared on this line ("name:"), or "" if none.
	Label string

	// Directive is the directive name ("code", "data", "asciiz"), or ""
	// if this line has no directive. A ".bss" directive
	// is normalized to "data" per the language's aliasing rule.
	Directive string
	// Str holds the decoded .asciiz string argument.
	Str string

	// Operands holds the opcode's operand tokens, in source order. Each
	// is a Register, IntegerOperand or LabelUsage token.
	Operands []token.Token
}

// ParseLine tokenizes and parses a single line of assembly source. A blank
// line (no tokens) returns a nil *Instruction and a nil error.
func ParseLine(line string) (*Instruction, error) {
	toks, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, nil
	}
	return parseTokens(toks)
}

func parseTokens(toks []token.Token) (*Instruction, error) {
	first := toks[0]
	switch first.Kind {
	case token.Directive:
		return parseDirective(toks)
	case token.LabelDeclaration:
		var inst *Instruction
		if len(toks) > 1 {
			var err error
			inst, err = parseTokens(toks[1:])
			if err != nil {
				return nil, err
			}
		}
		if inst == nil {
			inst = &Instruction{}
		}
		if inst.Label != "" {
			return nil, errors.Errorf("ParseError: multiple label declarations on one line (%q, %q)", first.Name, inst.Label)
		}
		inst.Label = first.Name
		return inst, nil
	case token.Op:
		return parseOpInstruction(toks)
	default:
		return nil, errors.Errorf("ParseError: unexpected %s at start of line", first.Kind)
	}
}

func parseDirective(toks []token.Token) (*Instruction, error) {
	name := toks[0].Name
	switch name {
	case "code", "data":
		if len(toks) != 1 {
			return nil, errors.Errorf("ParseError: .%s takes no arguments", name)
		}
		return &Instruction{Directive: name}, nil
	case "bss":
		if len(toks) != 1 {
			return nil, errors.New("ParseError: .bss takes no arguments")
		}
		return &Instruction{Directive: "data"}, nil
	case "asciiz":
		if len(toks) != 2 || toks[1].Kind != token.IrString {
			return nil, errors.New("StringConstantNotFound: .asciiz requires a quoted string argument")
		}
		return &Instruction{Directive: "asciiz", Str: toks[1].Text}, nil
	default:
		return nil, errors.Errorf("UnknownDirectiveFound: %q", name)
	}
}

func parseOpInstruction(toks []token.Token) (*Instruction, error) {
	op := toks[0].Opcode
	operands := toks[1:]
	shape := op.Shape()

	var want int
	switch shape {
	case opcode.None:
		want = 0
	case opcode.OneReg:
		want = 1
	case opcode.TwoReg:
		want = 2
	case opcode.ThreeReg:
		want = 3
	case opcode.RegImm16:
		want = 2
	}
	if len(operands) != want {
		return nil, errors.Errorf("ParseError: %s expects %d operand(s), got %d", op, want, len(operands))
	}
	for i, opd := range operands {
		if err := validateOperand(op, shape, i, opd); err != nil {
			return nil, err
		}
	}
	return &Instruction{
		Opcode:    op,
		HasOpcode: true,
		Operands:  append([]token.Token(nil), operands...),
	}, nil
}

// validateOperand enforces the per-shape operand-kind rules: every register
// slot additionally accepts a label use (the label substitutes for the
// register/immediate).
func validateOperand(op opcode.Code, shape opcode.Shape, idx int, t token.Token) error {
	if shape == opcode.RegImm16 && idx == 1 {
		if t.Kind != token.IntegerOperand && t.Kind != token.LabelUsage {
			return errors.Errorf("ParseError: %s operand %d must be an integer or label, got %s", op, idx+1, t.Kind)
		}
		return nil
	}
	if t.Kind != token.Register && t.Kind != token.LabelUsage {
		return errors.Errorf("ParseError: %s operand %d must be a register or label, got %s", op, idx+1, t.Kind)
	}
	return nil
}

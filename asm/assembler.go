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
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/dvm-project/delf/delf"
	"github.com/dvm-project/delf/symbol"
	"github.com/dvm-project/delf/token"
)

// Sentinel errors matching the error kinds surfaced by the assembler.
var (
	ErrNoSectionDeclaration = errors.New("NoSectionDeclarationFound")
	ErrInsufficientSections = errors.New("InsufficientSections")
)

type section int

const (
	sectionNone section = iota
	sectionCode
	sectionData
)

// Object is the result of a successful Assemble call.
type Object struct {
	// Bytes is the full object stream: the 64-byte DELF header followed
	// by the code section.
	Bytes []byte
	// ROData is the read-only data section, handed to the VM loader
	// separately via its SetROData-equivalent call rather than appended
	// to Bytes.
	ROData []byte
	// Symbols is the fully resolved symbol table.
	Symbols *symbol.Table
}

// Assemble reads assembly source from r and compiles it into an Object.
// name is used only to annotate errors (typically the source file name).
//
// Assemble runs a two-pass compilation: pass one walks the full instruction
// sequence, populating the symbol table and read-only data buffer and
// sizing the code section; pass two re-walks the same sequence, emitting
// resolved code bytes. Because pass one observes every instruction before
// pass two emits anything, both forward and backward label references
// resolve correctly.
func Assemble(name string, r io.Reader) (*Object, error) {
	insts, err := ParseProgram(r)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble %s", name)
	}

	syms := symbol.New()
	roData, codeLen, err := passOne(insts, syms)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble %s", name)
	}

	code, err := passTwo(insts, syms, codeLen)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble %s", name)
	}

	var out bytes.Buffer
	if err := delf.WriteHeader(&out); err != nil {
		return nil, errors.Wrapf(err, "assemble %s", name)
	}
	out.Write(code)

	return &Object{Bytes: out.Bytes(), ROData: roData, Symbols: syms}, nil
}

func passOne(insts []*Instruction, syms *symbol.Table) (roData []byte, codeLen int, err error) {
	var ro bytes.Buffer
	var dataLen int
	sec := sectionNone
	var sawCode, sawData bool

	for _, inst := range insts {
		// A label attached to the same line as a directive (e.g.
		// `hw: .asciiz "hi"`) names the offset *before* that directive's
		// effect, so the label is resolved against the section's
		// counters as they stood on entry to this line.
		if inst.Label != "" {
			if sec == sectionNone {
				return nil, 0, errors.Wrapf(ErrNoSectionDeclaration, "label %q at line %d", inst.Label, inst.Line)
			}
			kind := symbol.Code
			offset := codeLen
			if sec == sectionData {
				kind = symbol.Data
				offset = dataLen
			}
			if err := syms.Add(inst.Label, offset, kind); err != nil {
				return nil, 0, errors.Wrapf(err, "line %d", inst.Line)
			}
		}

		if inst.Directive != "" {
			switch inst.Directive {
			case "code":
				sec = sectionCode
				sawCode = true
			case "data":
				sec = sectionData
				sawData = true
			case "asciiz":
				ro.WriteString(inst.Str)
				ro.WriteByte(0x00)
				dataLen += len(inst.Str) + 1
			default:
				return nil, 0, errors.Errorf("UnknownDirectiveFound: %q at line %d", inst.Directive, inst.Line)
			}
		}

		if inst.HasOpcode {
			if sec == sectionNone {
				return nil, 0, errors.Wrapf(ErrNoSectionDeclaration, "instruction at line %d", inst.Line)
			}
			if sec == sectionCode {
				codeLen += 4
			}
		}
	}

	if !sawCode || !sawData {
		return nil, 0, ErrInsufficientSections
	}
	return ro.Bytes(), codeLen, nil
}

func passTwo(insts []*Instruction, syms *symbol.Table, codeLen int) ([]byte, error) {
	code := make([]byte, 0, codeLen)
	sec := sectionNone

	for _, inst := range insts {
		if inst.Directive != "" {
			switch inst.Directive {
			case "code":
				sec = sectionCode
			case "data":
				sec = sectionData
			}
			continue
		}
		if !inst.HasOpcode {
			continue
		}
		if sec != sectionCode {
			return nil, errors.Errorf("instruction at line %d emitted outside the code section", inst.Line)
		}
		b, err := encodeInstruction(inst, syms)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", inst.Line)
		}
		code = append(code, b[:]...)
	}
	return code, nil
}

// encodeInstruction packs one instruction into its 4-byte wire form. Each
// operand is appended to the 3 operand bytes in source order: a Register
// consumes 1 byte, an IntegerOperand or a resolved LabelUsage consumes 2
// bytes in big-endian order. Any bytes left over after all operands are
// packed stay zero.
func encodeInstruction(inst *Instruction, syms *symbol.Table) ([4]byte, error) {
	var b [4]byte
	b[0] = byte(inst.Opcode)
	pos := 1
	for _, opd := range inst.Operands {
		switch opd.Kind {
		case token.Register:
			b[pos] = opd.Reg
			pos++
		case token.IntegerOperand:
			v := uint16(opd.Value)
			b[pos] = byte(v >> 8)
			b[pos+1] = byte(v)
			pos += 2
		case token.LabelUsage:
			off, ok := syms.OffsetOf(opd.Name)
			if !ok {
				return b, errors.Errorf("SymbolNotFound: %q", opd.Name)
			}
			v := uint16(off)
			b[pos] = byte(v >> 8)
			b[pos+1] = byte(v)
			pos += 2
		default:
			return b, errors.Errorf("unencodable operand kind %s", opd.Kind)
		}
	}
	return b, nil
}

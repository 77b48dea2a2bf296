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

// Package symbol implements the assembler's symbol table: the set of named
// offsets (labels) declared across the code and data sections of a program,
// resolved during the assembler's two-pass compilation.
package symbol

import "github.com/pkg/errors"

// Kind distinguishes a label declared in the code section from one declared
// in the (implicit) read-only data section.
type Kind int

const (
	// Code labels name an offset into the code section.
	Code Kind = iota
	// Data labels name an offset into the read-only data section.
	Data
)

// Symbol is a single named offset.
type Symbol struct {
	Name   string
	Offset int
	Kind   Kind
}

// Table is an ordered, unique-by-name collection of symbols. Insertion
// order is preserved independently of Go's unordered map iteration, since
// deterministic iteration matters for disassembly and for tests.
type Table struct {
	index map[string]int // name -> index into order
	order []Symbol
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Add declares a new symbol. It returns an error wrapping
// ErrAlreadyDeclared if name is already present.
func (t *Table) Add(name string, offset int, kind Kind) error {
	if _, ok := t.index[name]; ok {
		return errors.Wrapf(ErrAlreadyDeclared, "label %q", name)
	}
	t.index[name] = len(t.order)
	t.order = append(t.order, Symbol{Name: name, Offset: offset, Kind: kind})
	return nil
}

// Get returns the symbol named name and whether it was found.
func (t *Table) Get(name string) (Symbol, bool) {
	i, ok := t.index[name]
	if !ok {
		return Symbol{}, false
	}
	return t.order[i], true
}

// OffsetOf returns the offset of the symbol named name and whether it was
// found. It is a convenience wrapper around Get for the assembler's
// resolution pass.
func (t *Table) OffsetOf(name string) (int, bool) {
	s, ok := t.Get(name)
	if !ok {
		return 0, false
	}
	return s.Offset, true
}

// SetOffset updates the offset of an already-declared symbol. It returns an
// error wrapping ErrUndeclared if name has not been declared via Add.
func (t *Table) SetOffset(name string, offset int) error {
	i, ok := t.index[name]
	if !ok {
		return errors.Wrapf(ErrUndeclared, "label %q", name)
	}
	t.order[i].Offset = offset
	return nil
}

// Len returns the number of declared symbols.
func (t *Table) Len() int { return len(t.order) }

// All returns the declared symbols in declaration order. The returned slice
// must not be modified by the caller.
func (t *Table) All() []Symbol { return t.order }

// Errors returned by Table methods. Callers that need to distinguish the
// failure reason should use errors.Cause (or errors.Is on the wrapped
// chain) against these sentinels.
var (
	// ErrAlreadyDeclared is returned by Add when a label name collides
	// with one already in the table.
	ErrAlreadyDeclared = errors.New("symbol: label already declared")
	// ErrUndeclared is returned by SetOffset when the named label has no
	// prior declaration to update.
	ErrUndeclared = errors.New("symbol: label undeclared")
)

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
	"testing"

	"github.com/dvm-project/delf/opcode"
	"github.com/dvm-project/delf/token"
)

func TestTokenizeKinds(t *testing.T) {
	toks, err := tokenize("main: load $1 #500 @hw .code")
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Kind{
		token.LabelDeclaration,
		token.Op,
		token.Register,
		token.IntegerOperand,
		token.LabelUsage,
		token.Directive,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d (%+v)", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[1].Opcode != opcode.LOAD {
		t.Errorf("token 1 opcode = %s, want LOAD", toks[1].Opcode)
	}
	if toks[2].Reg != 1 {
		t.Errorf("token 2 reg = %d, want 1", toks[2].Reg)
	}
	if toks[3].Value != 500 {
		t.Errorf("token 3 value = %d, want 500", toks[3].Value)
	}
	if toks[4].Name != "hw" {
		t.Errorf("token 4 name = %q, want hw", toks[4].Name)
	}
	if toks[5].Name != "code" {
		t.Errorf("token 5 name = %q, want code", toks[5].Name)
	}
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := tokenize(`hw: .asciiz "hello, world"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3 (%+v)", len(toks), toks)
	}
	if toks[2].Kind != token.IrString || toks[2].Text != "hello, world" {
		t.Fatalf("string token = %+v", toks[2])
	}
}

func TestTokenizeBlankLine(t *testing.T) {
	toks, err := tokenize("   ")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 0 {
		t.Fatalf("got %d tokens, want 0", len(toks))
	}
}

func TestTokenizeCaseInsensitiveMnemonic(t *testing.T) {
	toks, err := tokenize("HlT")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Opcode != opcode.HLT {
		t.Fatalf("got %+v, want single HLT op token", toks)
	}
}

func TestTokenizeUnrecognizedMnemonic(t *testing.T) {
	if _, err := tokenize("xxx $1"); err == nil {
		t.Fatal("expected error for unrecognized mnemonic")
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	if _, err := tokenize(`.asciiz "unterminated`); err == nil {
		t.Fatal("expected error for unterminated string literal")
	}
}

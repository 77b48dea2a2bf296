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

package vm_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"github.com/dvm-project/delf/delf"
	"github.com/dvm-project/delf/vm"
)

// object builds a full DELF object (header + code) from raw code bytes, for
// tests that exercise the VM core directly without going through the
// assembler.
func object(code ...byte) []byte {
	var buf bytes.Buffer
	if err := delf.WriteHeader(&buf); err != nil {
		panic(err)
	}
	buf.Write(code)
	return buf.Bytes()
}

func TestArithmetic(t *testing.T) {
	code := []byte{
		0x01, 0x00, 0x00, 0x0A, // LOAD $0 #10
		0x01, 0x01, 0x00, 0x03, // LOAD $1 #3
		0x02, 0x00, 0x01, 0x02, // ADD  $0 $1 $2
		0x03, 0x00, 0x01, 0x03, // SUB  $0 $1 $3
		0x04, 0x00, 0x01, 0x04, // MUL  $0 $1 $4
		0x05, 0x00, 0x01, 0x05, // DIV  $0 $1 $5
		0x00, 0x00, 0x00, 0x00, // HLT
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	if ok := i.LoadProgram(object(code...)); !ok {
		t.Fatal("LoadProgram reported bad magic on a valid object")
	}
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if i.Registers[2] != 13 {
		t.Errorf("ADD result = %d, want 13", i.Registers[2])
	}
	if i.Registers[3] != 7 {
		t.Errorf("SUB result = %d, want 7", i.Registers[3])
	}
	if i.Registers[4] != 30 {
		t.Errorf("MUL result = %d, want 30", i.Registers[4])
	}
	if i.Registers[5] != 3 {
		t.Errorf("DIV result = %d, want 3", i.Registers[5])
	}
	if i.Remainder != 1 {
		t.Errorf("Remainder = %d, want 1", i.Remainder)
	}
}

func TestDivisionByZero(t *testing.T) {
	code := []byte{
		0x01, 0x00, 0x00, 0x05, // LOAD $0 #5
		0x01, 0x01, 0x00, 0x00, // LOAD $1 #0
		0x05, 0x00, 0x01, 0x02, // DIV  $0 $1 $2
		0x00, 0x00, 0x00, 0x00, // HLT
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	err = i.Run()
	if errors.Cause(err) != vm.ErrDivisionByZero {
		t.Fatalf("Cause(err) = %v, want ErrDivisionByZero", errors.Cause(err))
	}
}

func TestCallRet(t *testing.T) {
	code := []byte{
		0x01, 0x00, 0x00, 0x0C, // 0:  LOAD $0 #12   (target of CALL)
		0x27, 0x00, 0x00, 0x00, // 4:  CALL $0
		0x00, 0x00, 0x00, 0x00, // 8:  HLT           (CALL's return address)
		0x01, 0x01, 0x00, 0x63, // 12: LOAD $1 #99
		0x28, 0x00, 0x00, 0x00, // 16: RET
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if i.Registers[1] != 99 {
		t.Errorf("Registers[1] = %d, want 99 (subroutine did not run)", i.Registers[1])
	}
	if i.SP() != 0 {
		t.Errorf("SP() = %d, want 0 (RET must restore sp)", i.SP())
	}
	if i.BP() != 0 {
		t.Errorf("BP() = %d, want 0 (RET must restore bp)", i.BP())
	}
	if i.PC != len(code) {
		t.Errorf("PC = %d, want %d (should run to completion after RET)", i.PC, len(code))
	}
}

func TestEqJe(t *testing.T) {
	code := []byte{
		0x01, 0x00, 0x00, 0x05, // 0: LOAD $0 #5
		0x01, 0x01, 0x00, 0x05, // 4: LOAD $1 #5
		0x09, 0x00, 0x01, 0x00, // 8: EQ $0 $1
		0x01, 0x1F, 0x00, 0x14, // 12: LOAD $31 #20 (jump target)
		0x0A, 0x1F, 0x00, 0x00, // 16: JE $31
		0x01, 0x02, 0x00, 0x01, // 20: LOAD $2 #1 (should be reached directly via JE)
		0x00, 0x00, 0x00, 0x00, // 24: HLT
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if i.Registers[2] != 1 {
		t.Errorf("Registers[2] = %d, want 1", i.Registers[2])
	}
	if !i.CmpFlag {
		t.Error("CmpFlag = false, want true after EQ on equal registers")
	}
}

func TestJumpBackUnderflow(t *testing.T) {
	code := []byte{
		0x01, 0x00, 0x00, 0x64, // 0: LOAD $0 #100 (step larger than pc)
		0x08, 0x00, 0x00, 0x00, // 4: JMPB $0
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	err = i.Run()
	if errors.Cause(err) != vm.ErrJumpBackUnderflow {
		t.Fatalf("Cause(err) = %v, want ErrJumpBackUnderflow", errors.Cause(err))
	}
}

func TestStackOverflow(t *testing.T) {
	code := []byte{
		0x01, 0x00, 0x00, 0x01, // 0: LOAD $0 #1
		0x25, 0x00, 0x00, 0x00, // 4: PUSH $0
		0x25, 0x00, 0x00, 0x00, // 8: PUSH $0
	}
	i, err := vm.New(vm.StackSize(1))
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	err = i.Run()
	if errors.Cause(err) != vm.ErrStackOverflow {
		t.Fatalf("Cause(err) = %v, want ErrStackOverflow", errors.Cause(err))
	}
}

func TestPopUnderflow(t *testing.T) {
	code := []byte{
		0x26, 0x00, 0x00, 0x00, // 0: POP $0
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	err = i.Run()
	if errors.Cause(err) != vm.ErrStackUnderflow {
		t.Fatalf("Cause(err) = %v, want ErrStackUnderflow", errors.Cause(err))
	}
}

func TestALOCGrowsHeap(t *testing.T) {
	code := []byte{
		0x01, 0x00, 0x00, 0x10, // 0: LOAD $0 #16
		0x0B, 0x00, 0x00, 0x00, // 4: ALOC $0
		0x00, 0x00, 0x00, 0x00, // 8: HLT
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if len(i.Heap) != 16 {
		t.Fatalf("len(Heap) = %d, want 16", len(i.Heap))
	}
}

func TestFloatArithmeticAndEpsilonCompare(t *testing.T) {
	code := []byte{
		0x16, 0x00, 0x00, 0x0A, // 0: LOADF64 $0 #10
		0x16, 0x01, 0x00, 0x03, // 4: LOADF64 $1 #3
		0x17, 0x00, 0x01, 0x02, // 8: ADDF64 $0 $1 $2
		0x1B, 0x00, 0x00, 0x03, // 12: EQF64 $0 $0 (unused third byte)
		0x00, 0x00, 0x00, 0x00, // 16: HLT
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if i.FloatRegisters[2] != 13.0 {
		t.Errorf("FloatRegisters[2] = %v, want 13.0", i.FloatRegisters[2])
	}
	if !i.CmpFlag {
		t.Error("CmpFlag = false, want true (EQF64 of a register against itself)")
	}
}

func TestIllegalOpcode(t *testing.T) {
	code := []byte{0x7F, 0x00, 0x00, 0x00}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	i.LoadProgram(object(code...))
	if err := i.Run(); err == nil {
		t.Fatal("expected an error for an illegal opcode")
	}
}

func TestLoadProgramBadMagic(t *testing.T) {
	bad := make([]byte, 64+4)
	copy(bad, []byte{0, 1, 2, 3})
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	if ok := i.LoadProgram(bad); ok {
		t.Fatal("LoadProgram reported a valid magic for a bad header")
	}
}

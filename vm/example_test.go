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
	"fmt"
	"strings"

	"github.com/dvm-project/delf/asm"
	"github.com/dvm-project/delf/delf"
	"github.com/dvm-project/delf/vm"
)

// Shows assembling a small program with asm.Assemble and running it on a
// fresh vm.Instance, capturing PRTS output.
func ExampleInstance_Run() {
	src := `.code
main:	load $1 #500
	add $0 $1 $2
	prts @hw
	hlt
.data
hw:	.asciiz "hello, world"
`
	obj, err := asm.Assemble("hello.dasm", strings.NewReader(src))
	if err != nil {
		panic(err)
	}

	output := bytes.NewBuffer(nil)
	i, err := vm.New(vm.Output(output))
	if err != nil {
		panic(err)
	}
	i.LoadProgram(obj.Bytes)
	i.SetROData(obj.ROData)
	if err := i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(output.String())
	// Output:
	// hello, world
}

// Shows disassembling an assembled object's code section.
func ExampleDisassembleAll() {
	src := ".code\nmain: load $1 #500\nadd $0 $1 $2\nhlt\n.data\n"
	obj, err := asm.Assemble("t.dasm", strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	vm.DisassembleAll(delf.SplitCode(obj.Bytes), bytes.NewBuffer(nil))

	var buf bytes.Buffer
	vm.DisassembleAll(delf.SplitCode(obj.Bytes), &buf)
	fmt.Print(buf.String())
	// Output:
	// LOAD $1 #500
	// ADD $0 $1 $2
	// HLT
}

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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/dvm-project/delf/vm"
)

func replaceExt(name, ext string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i] + ext
	}
	return name + ext
}

func atExit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "delfvm: %v\n", err)
	os.Exit(1)
}

func main() {
	var err error
	defer func() { atExit(err) }()

	roName := flag.String("rodata", "", "read-only data `filename` (default: object name with \".rodata\" extension)")
	disasm := flag.Bool("disasm", false, "disassemble the loaded code section instead of running it")
	stats := flag.Bool("stats", false, "print the executed instruction count to stderr on halt")
	flag.Parse()

	if flag.NArg() != 1 {
		err = errors.New("usage: delfvm [flags] program.delf")
		return
	}
	objName := flag.Arg(0)

	var obj []byte
	if obj, err = os.ReadFile(objName); err != nil {
		err = errors.Wrap(err, "delfvm")
		return
	}

	dataName := *roName
	if dataName == "" {
		dataName = replaceExt(objName, ".rodata")
	}
	roData, roErr := os.ReadFile(dataName)
	if roErr != nil && !os.IsNotExist(roErr) {
		err = errors.Wrap(roErr, "delfvm")
		return
	}

	stdout := bufio.NewWriter(os.Stdout)
	i, err := vm.New(vm.Output(stdout))
	if err != nil {
		return
	}
	magicOK := i.LoadProgram(obj)
	if !magicOK {
		fmt.Fprintln(os.Stderr, "delfvm: Not ELF file")
	}
	i.SetROData(roData)

	if *disasm {
		vm.DisassembleAll(i.Program, os.Stdout)
		return
	}

	err = i.Run()
	stdout.Flush()
	if *stats {
		fmt.Fprintf(os.Stderr, "executed %d instructions\n", i.InsCount())
	}
}

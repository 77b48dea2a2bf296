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
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/dvm-project/delf/asm"
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
	fmt.Fprintf(os.Stderr, "delfc: %v\n", err)
	os.Exit(1)
}

func main() {
	var err error
	defer func() { atExit(err) }()

	outName := flag.String("o", "", "output object `filename` (default: source name with \".delf\" extension)")
	roName := flag.String("rodata", "", "output read-only data `filename` (default: output name with \".rodata\" extension)")
	printSymbols := flag.Bool("symbols", false, "print the resolved symbol table to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		err = errors.New("usage: delfc [flags] source.dasm")
		return
	}
	srcName := flag.Arg(0)

	src, err := os.Open(srcName)
	if err != nil {
		err = errors.Wrap(err, "delfc")
		return
	}
	defer src.Close()

	var obj *asm.Object
	obj, err = asm.Assemble(srcName, src)
	if err != nil {
		return
	}

	objName := *outName
	if objName == "" {
		objName = replaceExt(srcName, ".delf")
	}
	if err = os.WriteFile(objName, obj.Bytes, 0644); err != nil {
		err = errors.Wrapf(err, "delfc: write %s", objName)
		return
	}

	dataName := *roName
	if dataName == "" {
		dataName = replaceExt(objName, ".rodata")
	}
	if err = os.WriteFile(dataName, obj.ROData, 0644); err != nil {
		err = errors.Wrapf(err, "delfc: write %s", dataName)
		return
	}

	if *printSymbols {
		for _, s := range obj.Symbols.All() {
			fmt.Fprintf(os.Stderr, "%-20s %-4s %d\n", s.Name, kindName(s.Kind), s.Offset)
		}
	}
}

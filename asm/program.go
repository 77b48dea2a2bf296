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
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// ParseProgram reads source line by line, parsing each with ParseLine and
// collecting the resulting instructions in order. Blank lines are skipped.
// Parsing stops at the first error, which is wrapped with the offending
// line number.
func ParseProgram(r io.Reader) ([]*Instruction, error) {
	sc := bufio.NewScanner(r)
	var insts []*Instruction
	line := 0
	for sc.Scan() {
		line++
		inst, err := ParseLine(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if inst == nil {
			continue
		}
		inst.Line = line
		insts = append(insts, inst)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "ParseProgram")
	}
	return insts, nil
}

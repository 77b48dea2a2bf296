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

package vm

import (
	"bufio"
	"os"
)

// prts scans i.ROData starting at start for the first NUL byte and writes
// the bytes in between to the VM's output, flushing immediately afterward.
// A missing terminator is a halting fault: it would otherwise scan past
// the end of ro_data looking for a byte that never appears.
func (i *Instance) prts(start int32) {
	if start < 0 || int(start) > len(i.ROData) {
		raise(ErrHeapOutOfRange)
	}
	s := int(start)
	end := s
	for {
		if end >= len(i.ROData) {
			raise(ErrUnterminatedString)
		}
		if i.ROData[end] == 0x00 {
			break
		}
		end++
	}
	w := i.writer()
	w.Write(i.ROData[s:end])
	w.Flush()
}

func (i *Instance) writer() *bufio.Writer {
	if i.out == nil {
		i.out = bufio.NewWriter(os.Stdout)
	}
	return i.out
}

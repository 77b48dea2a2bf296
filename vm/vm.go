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
	"io"

	"github.com/dvm-project/delf/delf"
)

// NumRegisters is the number of general-purpose integer and float
// registers the VM exposes.
const NumRegisters = 32

// DefaultStackSize is the default capacity, in entries, of the operand
// stack.
const DefaultStackSize = 2097152

// Option configures an Instance at construction time.
type Option func(*Instance) error

// StackSize overrides the operand stack's capacity. The default is
// DefaultStackSize.
func StackSize(n int) Option {
	return func(i *Instance) error { i.stack = make([]int32, n); return nil }
}

// Output sets the writer PRTS prints to, wrapped in a *bufio.Writer that is
// flushed after every PRTS. The default, used if Output is never passed, is
// os.Stdout.
func Output(w io.Writer) Option {
	return func(i *Instance) error { i.out = bufio.NewWriter(w); return nil }
}

// Instance is one DELF virtual machine: its registers, stacks, heap, and
// loaded program. VM state is created fresh per load; LoadProgram replaces
// the code, SetROData replaces the constants buffer.
type Instance struct {
	Registers      [NumRegisters]int32
	FloatRegisters [NumRegisters]float64

	PC        int
	Remainder uint32
	CmpFlag   bool

	Program []byte
	ROData  []byte
	Heap    []byte

	sp    int
	bp    int
	stack []int32

	out *bufio.Writer

	insCount int64
}

// New creates a VM instance with no program loaded. Call LoadProgram and
// SetROData before Run.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if i.stack == nil {
		i.stack = make([]int32, DefaultStackSize)
	}
	return i, nil
}

// LoadProgram installs program as the VM's active code. Per the DELF
// loader contract, a missing or malformed magic is a non-fatal diagnostic:
// LoadProgram still installs whatever follows the 64-byte header region
// (or the whole buffer, if shorter than a header) and returns a bool
// reporting whether the magic was valid, for the caller to surface.
func (i *Instance) LoadProgram(program []byte) (magicOK bool) {
	if len(program) < delf.HeaderSize {
		i.Program = program
		return false
	}
	i.Program = delf.SplitCode(program)
	return delf.HasMagic(program)
}

// SetROData installs the read-only data (string constants) section.
func (i *Instance) SetROData(b []byte) {
	i.ROData = b
}

// InsCount returns the number of instructions executed by the most recent
// Run or RunOnce call (cumulative across RunOnce calls until Run resets it).
func (i *Instance) InsCount() int64 { return i.insCount }

// SP returns the current operand stack pointer (the number of entries on
// the stack).
func (i *Instance) SP() int { return i.sp }

// BP returns the current operand stack base pointer.
func (i *Instance) BP() int { return i.bp }

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

import "github.com/pkg/errors"

// Sentinel errors for the VM's halting-panic conditions. Run recovers the
// panic that carries one of these and reports it wrapped with execution
// context; callers that need to distinguish the cause should use
// errors.Cause against these vars.
var (
	ErrDivisionByZero       = errors.New("vm: division by zero")
	ErrJumpBackUnderflow    = errors.New("vm: JMPB target before start of program")
	ErrStackOverflow        = errors.New("vm: operand stack overflow")
	ErrStackUnderflow       = errors.New("vm: operand stack underflow")
	ErrRegisterOutOfRange   = errors.New("vm: register index out of range")
	ErrHeapOutOfRange       = errors.New("vm: heap access out of range")
	ErrTruncatedInstruction = errors.New("vm: truncated instruction at end of program")
	ErrUnterminatedString   = errors.New("vm: PRTS string is not NUL-terminated")
)

// fault is the panic payload raised by the decode/execute loop on a
// halting condition; Run's deferred recover converts it to an error.
type fault struct {
	err error
}

func raise(err error) {
	panic(fault{err})
}

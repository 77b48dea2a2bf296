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

// Package delf implements the DELF object file header: a fixed 64-byte
// prefix identifying an assembled binary, followed by the code section.
//
//	offset	size	contents
//	0	4	magic "delf" (0x64, 0x65, 0x6C, 0x66)
//	4	60	reserved, 0xFF-filled
//	64	4*N	N four-byte instructions
//
// The reserved bytes are laid out in the original toolchain's design for a
// version field, an entry point, and segment table offsets, but this
// generation of the assembler writes them as 0xFF and the loader does not
// interpret them; WriteHeader therefore takes no arguments beyond the
// destination writer.
package delf

import (
	"io"

	"github.com/pkg/errors"
)

// HeaderSize is the fixed size in bytes of a DELF header.
const HeaderSize = 64

// Magic is the 4-byte signature every DELF object begins with.
var Magic = [4]byte{0x64, 0x65, 0x6C, 0x66}

// WriteHeader writes a 64-byte DELF header to w: the 4-byte magic followed
// by 60 bytes of 0xFF filler.
func WriteHeader(w io.Writer) error {
	var buf [HeaderSize]byte
	copy(buf[:4], Magic[:])
	for i := 4; i < HeaderSize; i++ {
		buf[i] = 0xFF
	}
	if _, err := w.Write(buf[:]); err != nil {
		return errors.Wrap(err, "delf: write header")
	}
	return nil
}

// HasMagic reports whether the first four bytes of b are the DELF magic.
// It does not consume or validate the rest of the header.
func HasMagic(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	return b[0] == Magic[0] && b[1] == Magic[1] && b[2] == Magic[2] && b[3] == Magic[3]
}

// SplitCode returns the code region of a full DELF object (everything
// after the 64-byte header). If b is shorter than HeaderSize it returns nil.
// SplitCode does not itself check the magic; callers that need the "Not ELF
// file" diagnostic should call HasMagic first, per the loader's behavior of
// treating a bad magic as non-fatal and continuing to install the code
// region regardless.
func SplitCode(b []byte) []byte {
	if len(b) < HeaderSize {
		return nil
	}
	return b[HeaderSize:]
}

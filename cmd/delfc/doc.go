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

// The delfc command assembles DELF assembly source into a DELF object
// file: a 64-byte header followed by the code section. The read-only
// data section produced alongside it is written to a sibling file, since
// the object stream itself carries only code (see github.com/dvm-project/delf/asm).
//
// Usage:
//
//	delfc [flags] source.dasm
//
//	-o filename
//		  output object file (default: source file name with its
//		  extension replaced by ".delf")
//	-rodata filename
//		  output read-only data file (default: output file name with
//		  its extension replaced by ".rodata")
//	-symbols
//		  print the resolved symbol table to stderr after assembling
package main

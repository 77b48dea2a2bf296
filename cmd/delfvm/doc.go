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

// The delfvm command loads a DELF object file produced by delfc and runs
// it on the register-based DELF virtual machine (github.com/dvm-project/delf/vm).
//
// Usage:
//
//	delfvm [flags] program.delf
//
//	-rodata filename
//		  read-only data file to install before running (default:
//		  object name with its extension replaced by ".rodata")
//	-disasm
//		  print a disassembly of the loaded code section instead of
//		  running it
//	-stats
//		  print the executed instruction count to stderr on halt
package main

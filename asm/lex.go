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
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dvm-project/delf/opcode"
	"github.com/dvm-project/delf/token"
)

// tokenize splits one line of source into tokens. Whitespace is the field
// separator; each field is classified by its leading character, except for
// double-quoted string literals which may span several whitespace-separated
// fields and are re-joined with single spaces.
func tokenize(line string) ([]token.Token, error) {
	fields := strings.Fields(line)
	toks := make([]token.Token, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if strings.HasPrefix(f, `"`) {
			parts := []string{f}
			j := i
			for !(len(parts[len(parts)-1]) > 1 && strings.HasSuffix(parts[len(parts)-1], `"`)) {
				j++
				if j >= len(fields) {
					return nil, errors.New("unterminated string literal")
				}
				parts = append(parts, fields[j])
			}
			i = j
			joined := strings.Join(parts, " ")
			joined = strings.TrimPrefix(joined, `"`)
			joined = strings.TrimSuffix(joined, `"`)
			toks = append(toks, token.NewIrString(joined))
			continue
		}
		tok, err := classify(f)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// classify turns a single non-string field into a token based on its
// leading character (or trailing ':' for label declarations).
func classify(f string) (token.Token, error) {
	switch {
	case strings.HasPrefix(f, "$"):
		n, err := strconv.ParseUint(f[1:], 10, 8)
		if err != nil {
			return token.Token{}, errors.Wrapf(err, "invalid register %q", f)
		}
		return token.NewRegister(byte(n)), nil
	case strings.HasPrefix(f, "#"):
		n, err := strconv.ParseInt(f[1:], 10, 32)
		if err != nil {
			return token.Token{}, errors.Wrapf(err, "invalid integer operand %q", f)
		}
		return token.NewInteger(int32(n)), nil
	case strings.HasPrefix(f, "@"):
		name := f[1:]
		if name == "" {
			return token.Token{}, errors.New("empty label usage name")
		}
		return token.NewLabelUsage(name), nil
	case strings.HasPrefix(f, "."):
		name := f[1:]
		if name == "" {
			return token.Token{}, errors.New("empty directive name")
		}
		return token.NewDirective(name), nil
	case strings.HasSuffix(f, ":"):
		name := strings.TrimSuffix(f, ":")
		if name == "" {
			return token.Token{}, errors.New("empty label declaration name")
		}
		return token.NewLabelDeclaration(name), nil
	default:
		if c, ok := opcode.Lookup(strings.ToUpper(f)); ok {
			return token.NewOp(c), nil
		}
		return token.Token{}, errors.Errorf("ParseError: unrecognized mnemonic %q", f)
	}
}

// Copyright 2020 Google Inc.
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

// Package indent indents lines of text with a prefix.
package indent

import (
	"bytes"
	"io"
)

// String returns s with each line prefixed by prefix.
func String(prefix, s string) string {
	if prefix == "" || s == "" {
		return s
	}
	return string(Bytes([]byte(prefix), []byte(s)))
}

// Bytes returns b with each line prefixed by prefix.
func Bytes(prefix, b []byte) []byte {
	if len(prefix) == 0 || len(b) == 0 {
		return b
	}
	var buf bytes.Buffer
	w := NewWriter(&buf, string(prefix))
	w.Write(b)
	return buf.Bytes()
}

// NewWriter returns a writer that writes to w with each line prefixed by
// prefix.  The prefix is written when the first byte of a line arrives, so
// a trailing newline does not produce a dangling prefix.
func NewWriter(w io.Writer, prefix string) io.Writer {
	if prefix == "" {
		return w
	}
	return &indenter{
		w:      w,
		prefix: []byte(prefix),
		bol:    true,
	}
}

type indenter struct {
	w      io.Writer
	prefix []byte
	bol    bool // at the beginning of a line
}

// Write implements io.Writer.  Writes may be split at any byte boundary;
// the beginning-of-line state carries across calls.
func (in *indenter) Write(buf []byte) (int, error) {
	written := 0
	for len(buf) > 0 {
		if in.bol {
			if _, err := in.w.Write(in.prefix); err != nil {
				return written, err
			}
			in.bol = false
		}
		x := bytes.IndexByte(buf, '\n')
		if x < 0 {
			n, err := in.w.Write(buf)
			written += n
			return written, err
		}
		n, err := in.w.Write(buf[:x+1])
		written += n
		if err != nil {
			return written, err
		}
		in.bol = true
		buf = buf[x+1:]
	}
	return written, nil
}

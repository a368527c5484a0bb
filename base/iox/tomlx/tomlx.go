// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides easy TOML encoding and decoding functions
// for settings and other configuration values.
package tomlx

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f)
}

// Read reads the given value from the given reader, using TOML encoding.
func Read(v any, reader io.Reader) error {
	return toml.NewDecoder(reader).Decode(v)
}

// Save writes the given value to the given TOML file.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(v, f)
}

// Write writes the given value to the given writer, using TOML encoding.
func Write(v any, writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(v)
}

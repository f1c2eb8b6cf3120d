// Copyright 2024 The Lens Authors.
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

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/miracade/lens"
	"github.com/miracade/lens/vm"
)

// requireExt checks that path's extension matches want (one of the
// lens.Ext* constants, without its leading dot). A path of "-" (stdin)
// is exempt, since it carries no filename to check.
func requireExt(path, want string) error {
	if path == "-" {
		return nil
	}
	if got := strings.TrimPrefix(filepath.Ext(path), "."); got != want {
		return errors.Errorf("%s: expected a .%s file", path, want)
	}
	return nil
}

// readSource reads name, or stdin if name is "-".
func readSource(name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), errors.Wrap(err, "read stdin")
	}
	b, err := os.ReadFile(name)
	return string(b), errors.Wrapf(err, "read %s", name)
}

// writeOutput writes data to path, or stdout if path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "write stdout")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}

// loadImage reads a 256-byte assembled image from path.
func loadImage(path string) (vm.Image, error) {
	var img vm.Image
	if err := requireExt(path, lens.ExtBytecode); err != nil {
		return img, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return img, errors.Wrapf(err, "read %s", path)
	}
	if len(data) != len(img) {
		return img, errors.Errorf("%s: image is %d bytes, want %d", path, len(data), len(img))
	}
	copy(img[:], data)
	return img, nil
}

// Copyright 2016 Google Inc. All rights reserved.
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

package pathtools

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Based on Andrew Gerrand's "10 things you (probably) dont' know about Go"

var OsFs FileSystem = osFs{}

// MockFs returns an in-memory FileSystem preloaded with files.
func MockFs(files map[string][]byte) FileSystem {
	fs := &mockFs{
		files: make(map[string][]byte, len(files)),
		dirs:  make(map[string]bool),
	}

	for f, b := range files {
		fs.add(f, b)
	}

	return fs
}

type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces name with data.  Readers never observe a partially
	// written file.
	WriteFile(name string, data []byte, perm os.FileMode) error
	Exists(name string) (bool, bool, error)
	MkdirAll(name string) error
}

// osFs implements FileSystem using the local disk.
type osFs struct{}

func (osFs) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (osFs) WriteFile(name string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	_, err = f.Write(data)
	if err == nil {
		err = f.Chmod(perm)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp, name)
	}
	if err != nil {
		os.Remove(tmp)
	}
	return err
}

func (osFs) Exists(name string) (bool, bool, error) {
	stat, err := os.Stat(name)
	if err == nil {
		return true, stat.IsDir(), nil
	} else if os.IsNotExist(err) {
		return false, false, nil
	} else {
		return false, false, err
	}
}

func (osFs) MkdirAll(name string) error { return os.MkdirAll(name, 0777) }

type mockFs struct {
	lock  sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
}

func (m *mockFs) add(name string, data []byte) {
	name = filepath.Clean(name)
	m.files[name] = data
	dir := filepath.Dir(name)
	for dir != "." && dir != "/" {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
	m.dirs[dir] = true
}

func (m *mockFs) ReadFile(name string) ([]byte, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if f, ok := m.files[filepath.Clean(name)]; ok {
		return append([]byte(nil), f...), nil
	}

	return nil, &os.PathError{
		Op:   "open",
		Path: name,
		Err:  os.ErrNotExist,
	}
}

func (m *mockFs) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.dirs[filepath.Clean(name)] {
		return &os.PathError{Op: "write", Path: name, Err: os.ErrExist}
	}
	m.add(name, append([]byte(nil), data...))
	return nil
}

func (m *mockFs) Exists(name string) (bool, bool, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	name = filepath.Clean(name)
	if _, ok := m.files[name]; ok {
		return ok, false, nil
	}
	if _, ok := m.dirs[name]; ok {
		return ok, true, nil
	}
	return false, false, nil
}

func (m *mockFs) MkdirAll(name string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	name = filepath.Clean(name)
	if _, ok := m.files[name]; ok {
		return &os.PathError{Op: "mkdir", Path: name, Err: os.ErrExist}
	}
	for name != "." && name != "/" {
		m.dirs[name] = true
		name = filepath.Dir(name)
	}
	return nil
}

// MockFiles returns the sorted names of all files held by a FileSystem
// created with MockFs.
func MockFiles(fs FileSystem) []string {
	m, ok := fs.(*mockFs)
	if !ok {
		return nil
	}
	m.lock.Lock()
	defer m.lock.Unlock()

	names := make([]string, 0, len(m.files))
	for f := range m.files {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// WriteFileIfChanged writes data to name unless name already holds exactly
// data, so that tools watching modification times see no change.  It
// reports whether the file was written.
func WriteFileIfChanged(fs FileSystem, name string, data []byte, perm os.FileMode) (bool, error) {
	old, err := fs.ReadFile(name)
	if err == nil && bytes.Equal(old, data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err := fs.MkdirAll(filepath.Dir(name)); err != nil {
		return false, err
	}
	if err := fs.WriteFile(name, data, perm); err != nil {
		return false, err
	}
	return true, nil
}

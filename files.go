/*
 * files.go, part of gogauss.
 *
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package gauss

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if e := r.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// OpenFile opens name for reading. Files ending in .gz or .zst are
// decompressed on the fly.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewError(ErrMissingFile, "", name, "", err, "OpenFile")
		}
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("OpenFile: gzip %s: %w", name, err)
		}
		return &readCloser{Reader: gz, closers: []io.Closer{f, gz}}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("OpenFile: zstd %s: %w", name, err)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{f, zr.IOReadCloser()}}, nil
	}
	return f, nil
}

// ReadLines reads the whole file (compressed or not) and returns its lines,
// without line endings.
func ReadLines(name string) ([]string, error) {
	r, err := OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var ret []string
	for sc.Scan() {
		ret = append(ret, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadLines %s: %w", name, err)
	}
	return ret, nil
}

// FindFile looks for base in dir, then for its .gz and .zst versions.
// It returns the first path that exists, or an error wrapping
// ErrMissingFile.
func FindFile(dir, base string) (string, error) {
	for _, ext := range []string{"", ".gz", ".zst"} {
		p := filepath.Join(dir, base+ext)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}
	}
	return "", NewError(ErrMissingFile, "", filepath.Join(dir, base), "", nil, "FindFile")
}

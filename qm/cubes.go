/*
 * cubes.go, part of gogauss.
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

package qm

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
)

//CompressCubes gzips every .cube file in dir to a .cube.gz file and
//removes the original. It returns the number of files compressed.
func CompressCubes(dir string) (int, error) {
	errid := "CompressCubes"
	names, err := filepath.Glob(filepath.Join(dir, "*.cube"))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errid, err)
	}
	for i, name := range names {
		if err := gzipFile(name); err != nil {
			return i, fmt.Errorf("%s: %w", errid, err)
		}
	}
	return len(names), nil
}

func gzipFile(name string) (err error) {
	in, err := os.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()
	st, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.Create(name + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name + ".gz")
		}
	}()
	zw, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return err
	}
	zw.Name = filepath.Base(name)
	zw.ModTime = st.ModTime()
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}
	in.Close()
	slog.Debug("compressed cube file", "file", name, "size", humanize.Bytes(uint64(st.Size())))
	return os.Remove(name)
}

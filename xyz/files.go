/*
 * files.go, part of gomol.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package xyz

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	chem "github.com/rmera/gomol"
)

// codec returns "gz", "zst" or "" (plain text) depending on the extension of fname.
func codec(fname string) string {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz", ".gzip":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	}
	return ""
}

// newReader returns a decompressing reader for format ("gz" or "zst") on r.
// The zstd decoder is wrapped to satisfy io.ReadCloser.
func newReader(r io.Reader, format string) (io.ReadCloser, error) {
	switch format {
	case "gz":
		return gzip.NewReader(r)
	case "zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}
	return io.NopCloser(r), nil
}

func newWriter(w io.Writer, format string) (io.WriteCloser, error) {
	switch format {
	case "gz":
		return gzip.NewWriter(w), nil
	case "zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// FileRead reads the XYZ file fname, returning the geometry and the comment line.
// Files ending in .gz or .zst are decompressed on the fly.
func FileRead(fname string) (*chem.Geometry, string, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, "", errors.Wrap(err, "xyz.FileRead")
	}
	defer f.Close()
	r, err := newReader(bufio.NewReader(f), codec(fname))
	if err != nil {
		return nil, "", errors.Wrapf(err, "xyz.FileRead: opening %s", fname)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", errors.Wrapf(err, "xyz.FileRead: reading %s", fname)
	}
	geo, comment, err := FromDXYZString(string(data))
	if err != nil {
		return nil, "", errors.Wrapf(err, "xyz.FileRead: %s", fname)
	}
	return geo, comment, nil
}

// FileWrite writes geo, with the given comment line, as the XYZ file fname, which is
// created or truncated. Files ending in .gz or .zst are compressed.
func FileWrite(fname string, geo *chem.Geometry, comment string) error {
	str, err := DXYZString(geo, comment)
	if err != nil {
		return errors.Wrap(err, "xyz.FileWrite")
	}
	out, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "xyz.FileWrite")
	}
	defer out.Close()
	w, err := newWriter(out, codec(fname))
	if err != nil {
		return errors.Wrapf(err, "xyz.FileWrite: %s", fname)
	}
	if _, err = io.WriteString(w, str+"\n"); err != nil {
		w.Close()
		return errors.Wrapf(err, "xyz.FileWrite: %s", fname)
	}
	if err = w.Close(); err != nil {
		return errors.Wrapf(err, "xyz.FileWrite: %s", fname)
	}
	return out.Close()
}

// Copyright 2024 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package postproc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/klauspost/compress/gzip"
)

// Names of the designated JSON result file in its on-disk forms, as well as
// the name suffix of the archive containing only the result file.
const (
	ResultFilename      = "iridanext.output.json"
	GzipResultFilename  = ResultFilename + ".gz"
	ResultArchiveSuffix = "." + ResultFilename + ".zip"
)

// OpenResultFile opens the designated JSON result file at the top level of
// the specified file system, returning its plain contents. The gzip'ed form
// takes precedence over the plain form. If neither is present, OpenResultFile
// returns ErrNoResultFile.
func OpenResultFile(fsys fs.FS) (io.ReadCloser, error) {
	f, err := fsys.Open(GzipResultFilename)
	if err == nil {
		return newGunzipReadCloser(f, GzipResultFilename)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot open %s, reason: %w", GzipResultFilename, err)
	}
	f, err = fsys.Open(ResultFilename)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot open %s, reason: %w", ResultFilename, err)
	}
	return nil, ErrNoResultFile
}

// gunzipReadCloser decompresses a gzip stream, closing both the decompressor
// as well as the underlying stream when done.
type gunzipReadCloser struct {
	*gzip.Reader
	underlying io.Closer
}

// newGunzipReadCloser wraps the passed stream with a gzip decompressor. An
// empty stream decompresses to empty contents, as a gzip file may consist of
// zero members. If the gzip header cannot be read, the passed stream gets
// closed.
func newGunzipReadCloser(rc io.ReadCloser, name string) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(rc)
	if errors.Is(err, io.EOF) {
		return emptyReadCloser{Closer: rc}, nil
	}
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("cannot decompress %s, reason: %w", name, err)
	}
	return &gunzipReadCloser{Reader: zr, underlying: rc}, nil
}

func (g *gunzipReadCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.underlying.Close(); err == nil {
		err = cerr
	}
	return err
}

// emptyReadCloser has no contents, but closes the underlying stream.
type emptyReadCloser struct {
	io.Closer
}

func (emptyReadCloser) Read([]byte) (int, error) { return 0, io.EOF }

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
	"os"
	"path/filepath"
	"time"

	"github.com/docker/go-units"
	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"
)

// Archiver packages result directories into zip archives.
type Archiver struct {
	log logrus.FieldLogger
}

// NewArchiver returns a new Archiver logging to the passed logger.
func NewArchiver(log logrus.FieldLogger) *Archiver {
	return &Archiver{log: log}
}

// CompressDirectory archives the result directory at “inputPath” into two zip
// files inside “outputPath”:
//   - “{tag}.zip” with all files of the result directory, where a top-level
//     gzip'ed result file is stored decompressed as “iridanext.output.json”.
//   - “{tag}.iridanext.output.json.zip” with only the (plain) result file.
//
// The output directory is created when missing. CompressDirectory fails with
// ErrNoResultFile if the result directory lacks the designated result file in
// either form; in this case, the result-only archive isn't created. Archives
// failing midway are removed again.
func (a *Archiver) CompressDirectory(inputPath, outputPath, tag string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("cannot access result directory, reason: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("result directory %q: %w", inputPath, ErrExpectedDirectory)
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory, reason: %w", err)
	}
	rootfs := os.DirFS(inputPath)

	a.log.Info(fmt.Sprintf("🗜  archiving result directory %q as %q", inputPath, tag))
	err = a.writeArchive(filepath.Join(outputPath, tag+".zip"),
		func(zw *zip.Writer, digests EntryDigests, archive fs.FileInfo) error {
			return a.addDirectory(zw, rootfs, digests, archive)
		})
	if err != nil {
		return err
	}

	result, resultInfo, err := openResultFile(rootfs)
	if err != nil {
		return fmt.Errorf("cannot archive result file from %q, reason: %w", inputPath, err)
	}
	defer result.Close()
	return a.writeArchive(filepath.Join(outputPath, tag+ResultArchiveSuffix),
		func(zw *zip.Writer, digests EntryDigests, _ fs.FileInfo) error {
			return a.addEntry(zw, ResultFilename, resultInfo, result, digests)
		})
}

// writeArchive creates a new zip archive at the specified path and then lets
// the passed fill function add the archive entries; fill gets passed the file
// information of the archive being written. If anything goes wrong,
// writeArchive removes the incomplete archive file.
func (a *Archiver) writeArchive(
	path string,
	fill func(zw *zip.Writer, digests EntryDigests, archive fs.FileInfo) error,
) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create archive, reason: %w", err)
	}
	digests := EntryDigests{}
	zw := zip.NewWriter(f)
	archive, err := f.Stat()
	if err == nil {
		err = fill(zw, digests, archive)
	}
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("cannot write archive %q, reason: %w", path, err)
	}
	size := "unknown size"
	if info, err := os.Stat(path); err == nil {
		size = units.HumanSize(float64(info.Size()))
	}
	a.log.Info(fmt.Sprintf("✅  ...archive %q with %d entries successfully created (%s)",
		path, len(digests), size))
	return nil
}

// addDirectory adds all regular files found in the specified file system to
// the zip archive. A gzip'ed result file at the top level gets decompressed
// and stored under its plain name; a plain result file next to it is then
// skipped, as it would otherwise result in duplicate entries. The archive being
// written is skipped too, in case the output directory is inside the result
// directory.
func (a *Archiver) addDirectory(
	zw *zip.Writer,
	rootfs fs.FS,
	digests EntryDigests,
	archive fs.FileInfo,
) error {
	_, err := fs.Stat(rootfs, GzipResultFilename)
	gzipped := err == nil
	return fs.WalkDir(rootfs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := fs.Stat(rootfs, path) // follows symbolic links
		if err != nil {
			return err
		}
		switch {
		case info.IsDir():
			a.log.Debug(fmt.Sprintf("   ⤳  not following symbolic link to directory %s", path))
			return nil
		case os.SameFile(info, archive):
			a.log.Debug(fmt.Sprintf("   ⤳  not archiving the archive %s itself", path))
			return nil
		case !info.Mode().IsRegular():
			a.log.Warn(fmt.Sprintf("   ⚠  skipping non-regular file %s", path))
			return nil
		case path == ResultFilename && gzipped:
			a.log.Warn(fmt.Sprintf("   ⚠  skipping %s in favor of %s", ResultFilename, GzipResultFilename))
			return nil
		}
		f, err := rootfs.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if path != GzipResultFilename {
			return a.addEntry(zw, path, info, f, digests)
		}
		a.log.Info(fmt.Sprintf("   🫗  decompressing %s", GzipResultFilename))
		zr, err := newGunzipReadCloser(f, GzipResultFilename)
		if err != nil {
			return err
		}
		defer zr.Close()
		return a.addEntry(zw, ResultFilename, info, zr, digests)
	})
}

// addEntry streams the contents of the passed reader into a new archive entry
// with the specified (slash-separated) name, taking the entry's modification
// time and mode from the passed file information.
func (a *Archiver) addEntry(
	zw *zip.Writer,
	name string,
	info fs.FileInfo,
	r io.Reader,
	digests EntryDigests,
) error {
	a.log.Info(fmt.Sprintf("   📦  packaging %s", name))
	if _, ok := digests[name]; ok {
		return fmt.Errorf("duplicate archive entry %q", name)
	}
	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modTime(info),
	}
	hdr.SetMode(info.Mode())
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("cannot add archive entry %q, reason: %w", name, err)
	}
	n, err := digests.Stream(name, r, w)
	if err != nil {
		return err
	}
	a.log.Debug(fmt.Sprintf("      🧮  digest(ed) %q (%s): %s",
		name, units.HumanSize(float64(n)), digests[name]))
	return nil
}

// openResultFile works like OpenResultFile, but additionally returns the file
// information of the on-disk result file.
func openResultFile(fsys fs.FS) (io.ReadCloser, fs.FileInfo, error) {
	rc, err := OpenResultFile(fsys)
	if err != nil {
		return nil, nil, err
	}
	info, err := fs.Stat(fsys, GzipResultFilename)
	if errors.Is(err, fs.ErrNotExist) {
		info, err = fs.Stat(fsys, ResultFilename)
	}
	if err != nil {
		rc.Close()
		return nil, nil, fmt.Errorf("cannot stat result file, reason: %w", err)
	}
	return rc, info, nil
}

// modTime returns the modification time of the passed file information, but
// at least the earliest time representable in zip archives.
func modTime(info fs.FileInfo) time.Time {
	mtime := info.ModTime()
	if mtime.Year() < 1980 {
		return time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return mtime
}

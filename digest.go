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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// EntryDigests determines the SHA256 digests of archive entry contents as we
// go along streaming the individual entries into a zip archive writer. The
// digests are always over the stored (uncompressed) contents, so a gzip'ed
// result file gets digested after decompression.
type EntryDigests map[string]string

// Stream copies a stream from the specified reader to the specified writer,
// determining the stream's content digest along the way and remembering the
// final digest under the specified entry name. Stream returns the number of
// bytes copied.
func (d EntryDigests) Stream(name string, r io.Reader, w io.Writer) (int64, error) {
	digester := sha256.New()
	n, err := io.Copy(io.MultiWriter(digester, w), r)
	if err != nil {
		return n, fmt.Errorf("cannot stream %q, reason: %w", name, err)
	}
	d[name] = hex.EncodeToString(digester.Sum(nil))
	return n, nil
}

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
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Sample sheet column indices.
const (
	SampleColumn  = 0
	AddressColumn = 2
)

// SampleSheetPatcher updates the address column of sample sheets from JSON
// metadata documents.
type SampleSheetPatcher struct {
	log    logrus.FieldLogger
	strict bool
}

// PatcherOption configures a SampleSheetPatcher.
type PatcherOption func(*SampleSheetPatcher)

// WithStrictCSV switches from naively splitting rows at commas to parsing and
// writing sample sheets according to RFC 4180, including quoting. Please note
// that in strict mode the output isn't guaranteed to be byte-identical for
// rows that are left unchanged, as fields get requoted as necessary.
func WithStrictCSV(strict bool) PatcherOption {
	return func(p *SampleSheetPatcher) {
		p.strict = strict
	}
}

// NewSampleSheetPatcher returns a new SampleSheetPatcher logging to the passed
// logger.
func NewSampleSheetPatcher(log logrus.FieldLogger, opts ...PatcherOption) *SampleSheetPatcher {
	p := &SampleSheetPatcher{log: log}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseAddresses reads the JSON metadata document at the specified path and
// returns the mapping of sample identifiers to their addresses, taken from
// “metadata.samples.*.address”. Metadata documents with a “.gz” suffix are
// decompressed on the fly. Malformed JSON, a missing “metadata.samples”
// mapping, as well as samples without a string address are errors.
func (p *SampleSheetPatcher) ParseAddresses(jsonPath string) (map[string]string, error) {
	f, err := os.Open(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open metadata, reason: %w", err)
	}
	var r io.ReadCloser = f
	if strings.HasSuffix(jsonPath, ".gz") {
		r, err = newGunzipReadCloser(f, filepath.Base(jsonPath))
		if err != nil {
			return nil, err
		}
	}
	defer r.Close()
	addresses, err := DecodeAddresses(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse addresses from %q, reason: %w", jsonPath, err)
	}
	p.log.Info(fmt.Sprintf("🏷  found addresses for %d samples in %q", len(addresses), jsonPath))
	return addresses, nil
}

// DecodeAddresses decodes a JSON metadata document from the specified reader
// and returns its sample addresses.
func DecodeAddresses(r io.Reader) (map[string]string, error) {
	var doc struct {
		Metadata *struct {
			Samples map[string]json.RawMessage `json:"samples"`
		} `json:"metadata"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("malformed metadata JSON, reason: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("malformed metadata JSON, reason: trailing data")
	}
	if doc.Metadata == nil || doc.Metadata.Samples == nil {
		return nil, ErrNoSamples
	}
	addresses := make(map[string]string, len(doc.Metadata.Samples))
	for sample, raw := range doc.Metadata.Samples {
		var details struct {
			Address *string `json:"address"`
		}
		if err := json.Unmarshal(raw, &details); err != nil {
			return nil, fmt.Errorf("malformed metadata for sample %q, reason: %w", sample, err)
		}
		if details.Address == nil {
			return nil, fmt.Errorf("sample %q lacks an address", sample)
		}
		addresses[sample] = *details.Address
	}
	return addresses, nil
}

// UpdateAddresses reads the sample sheet at “samplesheetPath”, replaces the
// address column of all rows belonging to samples found in “addresses”, and
// writes the result to “outputPath”. The header row as well as rows of other
// samples are passed through unchanged. If updating fails, any partially
// written output gets removed.
func (p *SampleSheetPatcher) UpdateAddresses(
	samplesheetPath string,
	addresses map[string]string,
	outputPath string,
) error {
	in, err := os.Open(samplesheetPath)
	if err != nil {
		return fmt.Errorf("cannot open sample sheet, reason: %w", err)
	}
	defer in.Close()
	if err := notSameFile(in, outputPath); err != nil {
		return err
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot create updated sample sheet, reason: %w", err)
	}
	p.log.Info(fmt.Sprintf("📝  updating sample sheet %q into %q", samplesheetPath, outputPath))
	matched, err := PatchSampleSheet(in, out, addresses, p.strict)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("cannot update sample sheet %q, reason: %w", samplesheetPath, err)
	}
	p.log.Info(fmt.Sprintf("✅  ...updated the addresses of %d rows", len(matched)))
	if unmatched := unmatchedSamples(addresses, matched); len(unmatched) > 0 {
		p.log.WithField("samples", unmatched).Warn(
			fmt.Sprintf("⚠  %d samples with addresses are missing from the sample sheet", len(unmatched)))
	}
	return nil
}

// PatchSampleSheet copies the sample sheet from the specified reader to the
// specified writer, replacing the address column of rows belonging to known
// samples. It returns the sample identifiers of the patched rows, in order.
//
// Unless strict, rows are naively split at commas and joined again, so rows
// not belonging to known samples end up byte-identical, including their line
// endings. A row of a known sample with fewer fields than required to hold the
// address is an ErrMalformedRow error.
func PatchSampleSheet(r io.Reader, w io.Writer, addresses map[string]string, strict bool) ([]string, error) {
	if strict {
		return patchStrictly(r, w, addresses)
	}
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot read header, reason: %w", err)
	}
	if _, err := bw.WriteString(header); err != nil {
		return nil, fmt.Errorf("cannot write header, reason: %w", err)
	}
	matched := []string{}
	for lineno := 2; err == nil; lineno++ {
		var line string
		line, err = br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("cannot read line %d, reason: %w", lineno, err)
		}
		if line == "" {
			break
		}
		content, eol := splitLineEnding(line)
		fields := strings.Split(content, ",")
		if address, ok := addresses[fields[SampleColumn]]; ok {
			if len(fields) <= AddressColumn {
				return nil, fmt.Errorf("line %d: %w, sample %q lacks address column",
					lineno, ErrMalformedRow, fields[SampleColumn])
			}
			fields[AddressColumn] = address
			line = strings.Join(fields, ",") + eol
			matched = append(matched, fields[SampleColumn])
		}
		if _, werr := bw.WriteString(line); werr != nil {
			return nil, fmt.Errorf("cannot write line %d, reason: %w", lineno, werr)
		}
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("cannot write sample sheet, reason: %w", err)
	}
	return matched, nil
}

// patchStrictly patches the sample sheet using a proper CSV reader and writer.
func patchStrictly(r io.Reader, w io.Writer, addresses map[string]string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cw := csv.NewWriter(w)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header, reason: %w", err)
	}
	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("cannot write header, reason: %w", err)
	}
	matched := []string{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed sample sheet, reason: %w", err)
		}
		if address, ok := addresses[record[SampleColumn]]; ok {
			if len(record) <= AddressColumn {
				lineno, _ := cr.FieldPos(SampleColumn)
				return nil, fmt.Errorf("line %d: %w, sample %q lacks address column",
					lineno, ErrMalformedRow, record[SampleColumn])
			}
			record[AddressColumn] = address
			matched = append(matched, record[SampleColumn])
		}
		if err := cw.Write(record); err != nil {
			return nil, fmt.Errorf("cannot write sample sheet, reason: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("cannot write sample sheet, reason: %w", err)
	}
	return matched, nil
}

// splitLineEnding splits a line into its contents and its line ending, if any.
func splitLineEnding(line string) (content string, eol string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

// unmatchedSamples returns the sorted identifiers of those samples with
// addresses that didn't show up in the sample sheet.
func unmatchedSamples(addresses map[string]string, matched []string) []string {
	seen := make(map[string]struct{}, len(matched))
	for _, sample := range matched {
		seen[sample] = struct{}{}
	}
	unmatched := slices.DeleteFunc(maps.Keys(addresses), func(sample string) bool {
		_, ok := seen[sample]
		return ok
	})
	slices.Sort(unmatched)
	return unmatched
}

// notSameFile returns an error if the output path refers to the already
// opened input file, as creating the output would then truncate the input.
func notSameFile(in *os.File, outputPath string) error {
	outInfo, err := os.Stat(outputPath)
	if err != nil {
		return nil
	}
	inInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat sample sheet, reason: %w", err)
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("refusing to overwrite input sample sheet %q", in.Name())
	}
	return nil
}

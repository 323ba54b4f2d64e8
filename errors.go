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

import "errors"

// Sentinel errors, to be checked for using errors.Is.
var (
	// ErrNoResultFile signals that neither the plain nor the gzip'ed form of
	// the designated JSON result file is present.
	ErrNoResultFile = errors.New("could not find IRIDA Next JSON output file")

	ErrExpectedDirectory = errors.New("expected directory but got file")
	ErrEmptyTag          = errors.New("empty archive tag")

	// ErrMalformedRow signals a sample sheet row for a known sample that
	// lacks the address column.
	ErrMalformedRow = errors.New("malformed sample sheet row")

	// ErrNoSamples signals metadata lacking the “metadata.samples” mapping.
	ErrNoSamples = errors.New("missing metadata.samples")
)

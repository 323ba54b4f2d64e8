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
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("digesting archive entries", func() {

	It("streams and digests", func() {
		digests := EntryDigests{}
		var buff bytes.Buffer
		Expect(digests.Stream("foo.txt", bytes.NewBufferString("foobar"), &buff)).To(BeEquivalentTo(6))
		Expect(buff.String()).To(Equal("foobar"))
		Expect(digests).To(HaveKeyWithValue("foo.txt",
			"c3ab8ff13720e8ad9047dd39466b3c8974e592c2fa383d4a3960714caef0c4f2"))
	})

	When("things go south", func() {

		It("reports read errors", func() {
			digests := EntryDigests{}
			Expect(digests.Stream("foo.txt", &badReader{}, &bytes.Buffer{})).Error().To(
				MatchError(ContainSubstring("badreader read error")))
			Expect(digests).To(BeEmpty())
		})

		It("reports write errors", func() {
			digests := EntryDigests{}
			Expect(digests.Stream("foo.txt", bytes.NewBufferString("foobar"), &badWriter{})).Error().To(
				MatchError(ContainSubstring(`cannot stream "foo.txt"`)))
			_ = Successful(digests.Stream("bar.txt", bytes.NewBufferString(""), &bytes.Buffer{}))
			Expect(digests).To(HaveLen(1))
		})

	})

})

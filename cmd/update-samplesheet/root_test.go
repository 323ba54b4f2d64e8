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

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("update-samplesheet command", func() {

	var (
		tmpDir string
		logs   strings.Builder
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		logs.Reset()
	})

	run := func(args ...string) error {
		GinkgoHelper()
		var rootCmd *cobra.Command
		Expect(func() {
			rootCmd = newRootCmd()
		}).NotTo(Panic())
		rootCmd.SilenceErrors = true
		rootCmd.SilenceUsage = true
		rootCmd.SetOut(GinkgoWriter)
		rootCmd.SetErr(&logs)
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	It("updates the sample sheet addresses", func() {
		output := filepath.Join(tmpDir, "samplesheet.updated.csv")
		Expect(run(
			"--json", "../../testdata/samplesheet/metadata.json",
			"--samplesheet", "../../testdata/samplesheet/samplesheet.csv",
			"--output", output,
		)).To(Succeed())
		Expect(os.ReadFile(output)).To(
			Equal(Successful(os.ReadFile("../../testdata/samplesheet/expected.csv"))))
		Expect(logs.String()).To(ContainSubstring("found addresses for 3 samples"))
	})

	It("updates strictly", func() {
		jsonPath := filepath.Join(tmpDir, "metadata.json")
		Expect(os.WriteFile(jsonPath,
			[]byte(`{"metadata":{"samples":{"S1":{"address":"1.2.3"}}}}`), 0o644)).To(Succeed())
		samplesheet := filepath.Join(tmpDir, "samplesheet.csv")
		Expect(os.WriteFile(samplesheet,
			[]byte("sample,name,address\nS1,\"Doe, Jane\",\n"), 0o644)).To(Succeed())
		output := filepath.Join(tmpDir, "out.csv")
		Expect(run(
			"--json", jsonPath,
			"--samplesheet", samplesheet,
			"--output", output,
			"--strict-csv",
		)).To(Succeed())
		Expect(os.ReadFile(output)).To(BeEquivalentTo("sample,name,address\nS1,\"Doe, Jane\",1.2.3\n"))
	})

	It("fails on malformed metadata without writing output", func() {
		jsonPath := filepath.Join(tmpDir, "metadata.json")
		Expect(os.WriteFile(jsonPath, []byte(`{"metadata":{}}`), 0o644)).To(Succeed())
		output := filepath.Join(tmpDir, "out.csv")
		Expect(run(
			"--json", jsonPath,
			"--samplesheet", "../../testdata/samplesheet/samplesheet.csv",
			"--output", output,
		)).To(MatchError(ContainSubstring("missing metadata.samples")))
		Expect(output).NotTo(BeAnExistingFile())
	})

	It("requires all flags", func() {
		Expect(run(
			"--json", "../../testdata/samplesheet/metadata.json",
			"--output", filepath.Join(tmpDir, "out.csv"),
		)).To(MatchError(ContainSubstring(`required flag(s) "samplesheet" not set`)))
	})

})

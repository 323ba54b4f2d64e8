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

package cli

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("command line plumbing", func() {

	newCmd := func(args ...string) *cobra.Command {
		cmd := &cobra.Command{Use: "test"}
		AddLoggingFlags(cmd)
		Expect(cmd.ParseFlags(args)).To(Succeed())
		return cmd
	}

	It("defaults to info level logging into the error output", func() {
		cmd := newCmd()
		var buff strings.Builder
		cmd.SetErr(&buff)
		log := Successful(NewLogger(cmd))
		Expect(log.GetLevel()).To(Equal(logrus.InfoLevel))
		log.Info("hellorld")
		Expect(buff.String()).To(ContainSubstring("msg=hellorld"))
	})

	It("loads the logging configuration and honors --debug", func() {
		cfgPath := filepath.Join(GinkgoT().TempDir(), "logging.yaml")
		Expect(os.WriteFile(cfgPath, []byte("level: error\nformat: json\n"), 0o644)).To(Succeed())

		log := Successful(NewLogger(newCmd("--log-config", cfgPath)))
		Expect(log.GetLevel()).To(Equal(logrus.ErrorLevel))
		Expect(log.Formatter).To(BeAssignableToTypeOf(&logrus.JSONFormatter{}))

		log = Successful(NewLogger(newCmd("--log-config", cfgPath, "--debug")))
		Expect(log.GetLevel()).To(Equal(logrus.DebugLevel))
	})

	It("reports missing logging configurations", func() {
		Expect(NewLogger(newCmd("--log-config", "/nowhere/logging.yaml"))).Error().To(
			MatchError(ContainSubstring("cannot read logging configuration")))
	})

	DescribeTable("deriving versions from build information",
		func(info *debug.BuildInfo, expected string) {
			Expect(version(info)).To(Equal(expected))
		},
		Entry("VCS commit", &debug.BuildInfo{
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
			},
		}, "commit 01234567"),
		Entry("modified VCS commit", &debug.BuildInfo{
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, "commit 01234567 (modified)"),
		Entry("module version", &debug.BuildInfo{
			Main: debug.Module{Version: "v1.2.3"},
		}, "v1.2.3"),
		Entry("nothing", &debug.BuildInfo{}, "(unknown)"),
	)

})

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

package logging

import (
	"strings"

	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("logging configuration", func() {

	Context("loading", func() {

		It("loads a complete configuration", func() {
			Expect(LoadConfig("testdata/debug-json.yaml")).To(Equal(Config{
				Level:  "debug",
				Format: JSONFormat,
			}))
		})

		It("keeps defaults for missing fields", func() {
			Expect(LoadConfig("testdata/partial.yaml")).To(Equal(Config{
				Level:  "warning",
				Format: TextFormat,
			}))
			Expect(LoadConfig("testdata/empty.yaml")).To(Equal(DefaultConfig()))
		})

		It("rejects unknown fields", func() {
			Expect(LoadConfig("testdata/unknown.yaml")).Error().To(
				MatchError(ContainSubstring("field handlers not found")))
		})

		It("reports malformed and missing files", func() {
			Expect(LoadConfig("testdata/malformed.yaml")).Error().To(
				MatchError(ContainSubstring("malformed logging configuration")))
			Expect(LoadConfig("testdata/non-existing.yaml")).Error().To(
				MatchError(ContainSubstring("cannot read logging configuration")))
		})

	})

	Context("creating loggers", func() {

		It("creates a JSON logger at the configured level", func() {
			var buff strings.Builder
			log := Successful(New(Config{Level: "warn", Format: JSONFormat}, &buff))
			Expect(log.GetLevel()).To(Equal(logrus.WarnLevel))
			log.Info("hidden")
			Expect(buff.String()).To(BeEmpty())
			log.Warn("shown")
			Expect(buff.String()).To(MatchJSON(`{"level":"warning","msg":"shown"}`))
		})

		It("defaults to info level text logging", func() {
			var buff strings.Builder
			log := Successful(New(Config{}, &buff))
			Expect(log.GetLevel()).To(Equal(logrus.InfoLevel))
			log.Info("hellorld")
			Expect(buff.String()).To(Equal("level=info msg=hellorld\n"))
		})

		It("rejects invalid levels and formats", func() {
			Expect(New(Config{Level: "loud"}, GinkgoWriter)).Error().To(
				MatchError(ContainSubstring("invalid logging level")))
			Expect(New(Config{Format: "xml"}, GinkgoWriter)).Error().To(
				MatchError(ContainSubstring(`unsupported logging format "xml"`)))
		})

	})

})

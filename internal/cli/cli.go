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

// Package cli contains the command line plumbing shared by the
// post-processing commands.
package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/thediveo/postproc/logging"
)

const (
	logConfigFlag = "log-config"
	debugFlag     = "debug"
)

// AddLoggingFlags adds the logging-related flags to the specified command.
func AddLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String(logConfigFlag, "",
		"YAML logging configuration file")
	cmd.Flags().Bool(debugFlag, false,
		"enable debug logging, overriding the logging configuration")
}

// NewLogger returns a new logger writing to the command's error output,
// configured according to the command's logging flags.
func NewLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	cfg := logging.DefaultConfig()
	if path, _ := cmd.Flags().GetString(logConfigFlag); path != "" {
		var err error
		cfg, err = logging.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	if debug, _ := cmd.Flags().GetBool(debugFlag); debug {
		cfg.Level = logrus.DebugLevel.String()
	}
	return logging.New(cfg, cmd.ErrOrStderr())
}

// Version returns the version of the running binary, based on the VCS
// information embedded at build time, or the module version otherwise.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(unknown)"
	}
	return version(info)
}

func version(info *debug.BuildInfo) string {
	if commit := buildInfo(info, "vcs.revision"); len(commit) >= 8 {
		modified := ""
		if buildInfo(info, "vcs.modified") == "true" {
			modified = " (modified)"
		}
		return fmt.Sprintf("commit %s%s", commit[:8], modified)
	}
	if modver := info.Main.Version; modver != "" {
		return modver
	}
	return "(unknown)"
}

func buildInfo(info *debug.BuildInfo, key string) string {
	idx := slices.IndexFunc(info.Settings,
		func(setting debug.BuildSetting) bool {
			return setting.Key == key
		})
	if idx < 0 {
		return ""
	}
	return info.Settings[idx].Value
}

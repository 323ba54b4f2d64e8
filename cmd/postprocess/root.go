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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thediveo/postproc"
	"github.com/thediveo/postproc/internal/cli"
)

const (
	gasnomenclatureFlag = "gasnomenclature"
	arboratorFlag       = "arborator"
	outputFlag          = "output"
)

// components lists the result directory flags in archiving order; the flag
// names double as the archive tag component names.
var components = []string{gasnomenclatureFlag, arboratorFlag}

func newRootCmd(now postproc.Clock) (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "postprocess --gasnomenclature DIR --arborator DIR --output DIR",
		Short:   "Post-process gasnomenclature and arborator results",
		Version: cli.Version(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := cli.NewLogger(cmd)
			if err != nil {
				return err
			}
			// CompressDirectory creates the output directory when missing.
			output, _ := cmd.Flags().GetString(outputFlag)
			archiver := postproc.NewArchiver(log)
			timestamp := now()
			for _, component := range components {
				input, _ := cmd.Flags().GetString(component)
				err := archiver.CompressDirectory(input, output, postproc.Tag(component, timestamp))
				if err != nil {
					return fmt.Errorf("cannot post-process %s results, reason: %w", component, err)
				}
			}
			return nil
		},
	}
	rootCmd.Flags().String(gasnomenclatureFlag, "",
		"mandatory: gasnomenclature result directory")
	rootCmd.Flags().String(arboratorFlag, "",
		"mandatory: arborator result directory")
	rootCmd.Flags().StringP(outputFlag, "o", "",
		"mandatory: output directory, created if missing")
	for _, flag := range []string{gasnomenclatureFlag, arboratorFlag, outputFlag} {
		_ = rootCmd.MarkFlagRequired(flag)
	}
	cli.AddLoggingFlags(rootCmd)
	return rootCmd
}

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
	"github.com/spf13/cobra"

	"github.com/thediveo/postproc"
	"github.com/thediveo/postproc/internal/cli"
)

const (
	jsonFlag        = "json"
	samplesheetFlag = "samplesheet"
	outputFlag      = "output"
	strictCSVFlag   = "strict-csv"
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "update-samplesheet --json FILE --samplesheet FILE --output FILE",
		Short:   "Update an arborator sample sheet with gasnomenclature addresses",
		Version: cli.Version(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := cli.NewLogger(cmd)
			if err != nil {
				return err
			}
			strict, _ := cmd.Flags().GetBool(strictCSVFlag)
			patcher := postproc.NewSampleSheetPatcher(log, postproc.WithStrictCSV(strict))

			jsonPath, _ := cmd.Flags().GetString(jsonFlag)
			addresses, err := patcher.ParseAddresses(jsonPath)
			if err != nil {
				return err
			}
			samplesheet, _ := cmd.Flags().GetString(samplesheetFlag)
			output, _ := cmd.Flags().GetString(outputFlag)
			return patcher.UpdateAddresses(samplesheet, addresses, output)
		},
	}
	rootCmd.Flags().String(jsonFlag, "",
		"mandatory: JSON metadata with sample addresses, optionally gzip'ed (.gz)")
	rootCmd.Flags().String(samplesheetFlag, "",
		"mandatory: CSV sample sheet to update")
	rootCmd.Flags().StringP(outputFlag, "o", "",
		"mandatory: updated CSV sample sheet to write")
	rootCmd.Flags().Bool(strictCSVFlag, false,
		"parse and write the sample sheet as RFC 4180 CSV instead of naively splitting at commas")
	for _, flag := range []string{jsonFlag, samplesheetFlag, outputFlag} {
		_ = rootCmd.MarkFlagRequired(flag)
	}
	cli.AddLoggingFlags(rootCmd)
	return rootCmd
}

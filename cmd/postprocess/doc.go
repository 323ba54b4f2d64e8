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

/*
postprocess archives the gasnomenclature and arborator result directories of a
pipeline run.

For each of both result directories, postprocess writes two zip archives into
the output directory, tagged with the component name and the local time of the
run, such as “gasnomenclature_2024-05-01_13-37-00”:
  - TAG.zip with the complete result directory,
  - TAG.iridanext.output.json.zip with only the IRIDA Next JSON result file.

A gzip'ed result file “iridanext.output.json.gz” is always stored decompressed
as “iridanext.output.json”.

# Usage

	postprocess --gasnomenclature DIR --arborator DIR --output DIR [flags]

# Flags

	    --arborator string         mandatory: arborator result directory
	    --debug                    enable debug logging, overriding the logging configuration
	    --gasnomenclature string   mandatory: gasnomenclature result directory
	-h, --help                     help for postprocess
	    --log-config string        YAML logging configuration file
	-o, --output string            mandatory: output directory, created if missing
	-v, --version                  version for postprocess
*/
package main

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
update-samplesheet updates the address column of an arborator sample sheet with
the addresses assigned by gasnomenclature.

The addresses are taken from the “metadata.samples.*.address” fields of a JSON
metadata document, which might be gzip'ed when its name ends in “.gz”. For each
sample sheet row whose first column names a sample from the metadata, the third
column gets replaced with the sample's address. All other rows, as well as the
header row, are left untouched.

By default, rows are naively split at commas, without any quoting support, so
fields containing commas will break the row structure. Use --strict-csv to
process the sample sheet as proper RFC 4180 CSV instead.

# Usage

	update-samplesheet --json FILE --samplesheet FILE --output FILE [flags]

# Flags

	    --debug                enable debug logging, overriding the logging configuration
	-h, --help                 help for update-samplesheet
	    --json string          mandatory: JSON metadata with sample addresses, optionally gzip'ed (.gz)
	    --log-config string    YAML logging configuration file
	-o, --output string        mandatory: updated CSV sample sheet to write
	    --samplesheet string   mandatory: CSV sample sheet to update
	    --strict-csv           parse and write the sample sheet as RFC 4180 CSV instead of naively splitting at commas
	-v, --version              version for update-samplesheet
*/
package main

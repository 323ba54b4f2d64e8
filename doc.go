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
Package postproc implements the post-processing steps of a gasnomenclature and
arborator pipeline run.

The [Archiver] bundles a result directory into two zip archives: one with the
complete directory tree, and another one with only the designated IRIDA Next
JSON result file. The result file might come either plain as
“iridanext.output.json”, or gzip'ed as “iridanext.output.json.gz”; inside any
archive it always ends up plain as “iridanext.output.json”.

The [SampleSheetPatcher] picks up the per-sample “address” values from a JSON
metadata document and patches them into the third column of a CSV sample
sheet, writing the result to a new file.

Please note that sample sheets are by default split naively at commas, without
any support for quoting. Fields containing commas thus break the row
structure. Use [WithStrictCSV] to switch to proper RFC 4180 handling instead.
*/
package postproc

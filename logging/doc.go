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
Package logging sets up the logrus loggers used by the post-processing
commands, optionally configured from a small YAML logging configuration file.

An example configuration:

	level: debug
	format: json
	timestamps: true

All fields are optional: the level defaults to “info”, the format to “text”,
and timestamps are off.
*/
package logging

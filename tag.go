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

package postproc

import "time"

// TagTimeLayout formats the timestamp part of archive tags.
const TagTimeLayout = "2006-01-02_15-04-05"

// Clock returns the current (wall clock) time. Commands get passed time.Now,
// while tests pass fixed times.
type Clock func() time.Time

// Tag returns the archive tag for the specified component, as in
// “gasnomenclature_2024-05-01_13-37-00”.
func Tag(component string, now time.Time) string {
	return component + "_" + now.Format(TagTimeLayout)
}

// Copyright 2020 Jim Smart
// Copyright 1999 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package robotsmatch decides whether a crawler may fetch a URL according
// to a robots.txt document.
//
// It implements the Robots Exclusion Protocol (REP) internet draft
//
//	https://tools.ietf.org/html/draft-koster-rep
//
// plus the Google-specific extensions described at
//
//	https://developers.google.com/search/reference/robots_txt
//
// A tolerant, line-oriented Parser streams typed directive events to any
// RobotsParseHandler. RobotsMatcher is itself such a handler: it accumulates
// per-agent Allow/Disallow matches while the document is parsed and resolves
// conflicts with a longest-match priority scheme. Most callers only need the
// package-level AllowedByRobots or OneAgentAllowedByRobots functions.
package robotsmatch

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

package robotsmatch

import "strings"

// keyAndValueFromLine splits a single raw robots.txt line into (key, value).
// Rules:
//
//   - Anything from the first '#' onward is a comment and is dropped.
//   - A ':' separates key from value, if present.
//   - Otherwise, the first run of whitespace is accepted as a separator
//     (webmasters sometimes omit the colon), but only if exactly two
//     non-whitespace runs remain — a value containing interior whitespace
//     is rejected rather than guessed at.
//   - key must be non-empty; value may be empty.
func keyAndValueFromLine(line string) (key, value string, ok bool) {
	if i := strings.IndexByte(line, '#'); i != -1 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	sep := strings.IndexByte(line, ':')
	if sep == -1 {
		const whitespace = " \t"
		sep = strings.IndexAny(line, whitespace)
		if sep != -1 {
			val := strings.TrimSpace(line[sep:])
			if len(val) == 0 {
				return "", "", false
			}
			if strings.IndexAny(val, whitespace) != -1 {
				// More than two non-whitespace runs: not an accepted
				// colon-less directive.
				return "", "", false
			}
		}
	}
	if sep == -1 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:sep])
	if key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(line[sep+1:])
	return key, value, true
}

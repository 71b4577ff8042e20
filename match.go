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

// NoMatchPriority is the priority recorded when a directive did not match.
// It is negative so that any real match (priority >= 0) always outranks it.
const NoMatchPriority = -1

// Match is the best pattern-match observed so far for one (scope, directive)
// slot: the length of the matched pattern (priority), and the 1-based
// source line that established it.
type Match struct {
	priority int
	line     int
}

// Set records a new match.
func (m *Match) Set(priority, line int) {
	m.priority = priority
	m.line = line
}

// Clear resets the match to "no match".
func (m *Match) Clear() {
	m.Set(NoMatchPriority, 0)
}

// Priority returns the recorded match priority.
func (m *Match) Priority() int {
	return m.priority
}

// Line returns the 1-based source line of the recorded match.
func (m *Match) Line() int {
	return m.line
}

func higherPriorityMatch(a, b *Match) *Match {
	if a.priority > b.priority {
		return a
	}
	return b
}

// MatchHierarchy holds the best match for the global ('*') agent scope and
// for the caller's specific agent scope, for one directive (Allow or
// Disallow).
type MatchHierarchy struct {
	Global   Match
	Specific Match
}

// Clear resets both scopes to "no match".
func (h *MatchHierarchy) Clear() {
	h.Global.Clear()
	h.Specific.Clear()
}

// MatchStrategy matches individual robots.txt lines against a path,
// returning a priority: negative for no match, otherwise the number of
// pattern characters matched.
type MatchStrategy interface {
	MatchAllow(path, pattern string) int
	MatchDisallow(path, pattern string) int
	Matches(path, pattern string) bool
}

// LongestMatchStrategy is the default, Google-compatible matching strategy:
// the maximum number of characters matched by a pattern is its priority.
// Conflicting Allow/Disallow directives in the same scope are resolved in
// favor of the longer (more specific) pattern.
type LongestMatchStrategy struct{}

var _ MatchStrategy = LongestMatchStrategy{}

// MatchAllow implements MatchStrategy.
func (s LongestMatchStrategy) MatchAllow(path, pattern string) int {
	if s.Matches(path, pattern) {
		return len(pattern)
	}
	return NoMatchPriority
}

// MatchDisallow implements MatchStrategy.
func (s LongestMatchStrategy) MatchDisallow(path, pattern string) int {
	if s.Matches(path, pattern) {
		return len(pattern)
	}
	return NoMatchPriority
}

// Matches reports whether path matches pattern. The pattern is anchored at
// the start of path; '*' matches any (possibly empty) run of characters,
// and a trailing '$' asserts end-of-path.
//
// The algorithm tracks the set of path offsets at which the pattern-prefix
// consumed so far could have finished matching. Worst case is quadratic in
// len(path)*len(pattern), but the bound is simple and predictable even for
// attacker-chosen patterns, which matters since both path and pattern are
// externally controlled by the webmaster.
func (s LongestMatchStrategy) Matches(path, pattern string) bool {
	pathLen := len(path)
	pos := make([]int, pathLen+1)
	pos[0] = 0
	numPos := 1

	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '$' && i+1 == len(pattern) {
			return pos[numPos-1] == pathLen
		}
		if pattern[i] == '*' {
			numPos = pathLen - pos[0] + 1
			for j := 1; j < numPos; j++ {
				pos[j] = pos[j-1] + 1
			}
			continue
		}
		// Includes '$' when not at the end of pattern.
		newNumPos := 0
		for j := 0; j < numPos; j++ {
			if pos[j] < pathLen && path[pos[j]] == pattern[i] {
				pos[newNumPos] = pos[j] + 1
				newNumPos++
			}
		}
		numPos = newNumPos
		if numPos == 0 {
			return false
		}
	}
	return true
}

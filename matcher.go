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

import (
	"strings"
	"unicode"
)

var _ RobotsParseHandler = (*RobotsMatcher)(nil)

// RobotsMatcher matches a robots.txt document against URLs for a set of
// user-agents. It implements RobotsParseHandler: feeding it to a Parser (or
// calling one of the AllowedByRobots methods, which do this for you) drives
// its internal state machine.
//
// The default matching strategy is longest-match, as opposed to the expired
// internet draft's first-match strategy: analysis shows that longest-match,
// while more restrictive for crawlers, is what webmasters assume when
// writing directives. For example, given
//
//	Allow: /
//	Disallow: /cgi-bin
//
// it's clear the webmaster wants everything crawled except /cgi-bin, even
// though the expired standard would allow crawling everything.
//
// A RobotsMatcher may be reused across queries, but a single instance is
// not safe for concurrent use; use one instance per goroutine (see
// BatchChecker for a concurrent-friendly wrapper).
type RobotsMatcher struct {
	allowMatch    MatchHierarchy
	disallowMatch MatchHierarchy

	seenGlobalAgent       bool
	seenSpecificAgent     bool
	everSeenSpecificAgent bool
	seenSeparator         bool

	// path is the URL path being matched. Valid only during the lifetime of
	// an AllowedByRobots call.
	path string

	// userAgents are the caller's agent tokens. Valid only during the
	// lifetime of an AllowedByRobots call.
	userAgents []string

	strategy MatchStrategy
}

// NewRobotsMatcher returns a RobotsMatcher using LongestMatchStrategy.
func NewRobotsMatcher() *RobotsMatcher {
	return &RobotsMatcher{strategy: LongestMatchStrategy{}}
}

// NewRobotsMatcherWithStrategy returns a RobotsMatcher using a caller-supplied
// MatchStrategy, for testing or alternate matching semantics.
func NewRobotsMatcherWithStrategy(strategy MatchStrategy) *RobotsMatcher {
	return &RobotsMatcher{strategy: strategy}
}

func (m *RobotsMatcher) seenAnyAgent() bool {
	return m.seenGlobalAgent || m.seenSpecificAgent
}

func (m *RobotsMatcher) initUserAgentsAndPath(userAgents []string, path string) {
	if path == "" || path[0] != '/' {
		panic("robotsmatch: path must begin with '/'")
	}
	m.path = path
	m.userAgents = userAgents
}

// AllowedByRobots returns whether any of userAgents is allowed, per robotsBody,
// to fetch url. The URL is not percent-encoded here: callers must supply it
// already escaped per RFC 3986.
func (m *RobotsMatcher) AllowedByRobots(robotsBody string, userAgents []string, url string) bool {
	path := PathParamsQuery(url)
	m.initUserAgentsAndPath(userAgents, path)
	ParseRobotsTxt(robotsBody, m)
	return !m.disallowed()
}

// OneAgentAllowedByRobots is AllowedByRobots for a single user-agent.
func (m *RobotsMatcher) OneAgentAllowedByRobots(robotsBody, userAgent, url string) bool {
	return m.AllowedByRobots(robotsBody, []string{userAgent}, url)
}

func (m *RobotsMatcher) disallowed() bool {
	if m.allowMatch.Specific.Priority() > 0 || m.disallowMatch.Specific.Priority() > 0 {
		return m.disallowMatch.Specific.Priority() > m.allowMatch.Specific.Priority()
	}
	if m.everSeenSpecificAgent {
		// A group matched our agent, but it imposed nothing (or only an
		// empty match) — the global group is not consulted in that case.
		return false
	}
	if m.disallowMatch.Global.Priority() > 0 || m.allowMatch.Global.Priority() > 0 {
		return m.disallowMatch.Global.Priority() > m.allowMatch.Global.Priority()
	}
	return false
}

// matchingLine reports the source line of the directive that decided the
// most recent query, for diagnostics.
func (m *RobotsMatcher) matchingLine() int {
	if m.everSeenSpecificAgent {
		return higherPriorityMatch(&m.disallowMatch.Specific, &m.allowMatch.Specific).Line()
	}
	return higherPriorityMatch(&m.disallowMatch.Global, &m.allowMatch.Global).Line()
}

// HandleRobotsStart implements RobotsParseHandler by resetting all state for
// a new document.
func (m *RobotsMatcher) HandleRobotsStart() {
	m.allowMatch.Clear()
	m.disallowMatch.Clear()

	m.seenGlobalAgent = false
	m.seenSpecificAgent = false
	m.everSeenSpecificAgent = false
	m.seenSeparator = false
}

// HandleRobotsEnd implements RobotsParseHandler. RobotsMatcher needs no
// end-of-document action; the verdict is read after Parse returns.
func (m *RobotsMatcher) HandleRobotsEnd() {}

// ExtractUserAgentToken returns the prefix of userAgent composed of
// [A-Za-z_-] characters only, which is all that robots.txt User-agent
// matching considers.
func ExtractUserAgentToken(userAgent string) string {
	i := 0
	for ; i < len(userAgent); i++ {
		c := userAgent[i]
		if !(asciiIsAlpha(c) || c == '-' || c == '_') {
			break
		}
	}
	return userAgent[:i]
}

func asciiIsAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// IsValidUserAgentToObey reports whether userAgent is non-empty and
// consists entirely of characters in [A-Za-z_-].
func IsValidUserAgentToObey(userAgent string) bool {
	return len(userAgent) > 0 && ExtractUserAgentToken(userAgent) == userAgent
}

// HandleUserAgent implements RobotsParseHandler.
func (m *RobotsMatcher) HandleUserAgent(lineNum int, userAgent string) {
	if m.seenSeparator {
		// A prior block's directives have already been emitted: this
		// User-agent line starts a new block.
		m.seenSpecificAgent = false
		m.seenGlobalAgent = false
		m.seenSeparator = false
	}

	// Google-specific optimization: a '*' followed by whitespace (or
	// nothing else) is still a global rule, even with trailing characters.
	if len(userAgent) >= 1 && userAgent[0] == '*' &&
		(len(userAgent) == 1 || isSpaceByte(userAgent[1])) {
		m.seenGlobalAgent = true
		return
	}

	token := ExtractUserAgentToken(userAgent)
	for _, agent := range m.userAgents {
		if strings.EqualFold(token, agent) {
			m.everSeenSpecificAgent = true
			m.seenSpecificAgent = true
			break
		}
	}
}

func isSpaceByte(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// HandleAllow implements RobotsParseHandler.
func (m *RobotsMatcher) HandleAllow(lineNum int, value string) {
	if !m.seenAnyAgent() {
		return
	}
	m.seenSeparator = true
	priority := m.strategy.MatchAllow(m.path, value)
	if priority >= 0 {
		m.recordMatch(&m.allowMatch, priority, lineNum)
		return
	}
	// Google-specific optimization: '/index.htm' and '/index.html' are
	// normalized to '/', as if the webmaster had anchored the directory.
	slashPos := strings.LastIndexByte(value, '/')
	if slashPos != -1 && strings.HasPrefix(value[slashPos:], "/index.htm") {
		m.HandleAllow(lineNum, value[:slashPos+1]+"$")
	}
}

// HandleDisallow implements RobotsParseHandler.
func (m *RobotsMatcher) HandleDisallow(lineNum int, value string) {
	if !m.seenAnyAgent() {
		return
	}
	m.seenSeparator = true
	priority := m.strategy.MatchDisallow(m.path, value)
	if priority >= 0 {
		m.recordMatch(&m.disallowMatch, priority, lineNum)
	}
}

func (m *RobotsMatcher) recordMatch(hierarchy *MatchHierarchy, priority, lineNum int) {
	if m.seenSpecificAgent {
		if hierarchy.Specific.Priority() < priority {
			hierarchy.Specific.Set(priority, lineNum)
		}
		return
	}
	if !m.seenGlobalAgent {
		panic("robotsmatch: Allow/Disallow seen with no agent block open")
	}
	if hierarchy.Global.Priority() < priority {
		hierarchy.Global.Set(priority, lineNum)
	}
}

// HandleSitemap implements RobotsParseHandler. Sitemap URLs are not
// validated by the matcher; use the Sitemaps function to collect them.
func (m *RobotsMatcher) HandleSitemap(lineNum int, value string) {
	m.seenSeparator = true
}

// HandleUnknownAction implements RobotsParseHandler.
func (m *RobotsMatcher) HandleUnknownAction(lineNum int, action, value string) {
	m.seenSeparator = true
}

// AllowedByRobots reports whether any of userAgents is allowed, per
// robotsBody, to fetch url. It is a convenience wrapper that allocates a new
// RobotsMatcher for a single query.
func AllowedByRobots(robotsBody string, userAgents []string, url string) bool {
	return NewRobotsMatcher().AllowedByRobots(robotsBody, userAgents, url)
}

// OneAgentAllowedByRobots is AllowedByRobots for a single user-agent.
func OneAgentAllowedByRobots(robotsBody, userAgent, url string) bool {
	return NewRobotsMatcher().OneAgentAllowedByRobots(robotsBody, userAgent, url)
}

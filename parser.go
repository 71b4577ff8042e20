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
	"io"
	"strings"
)

// maxLineLength is the maximum retained length of one logical line. Certain
// browsers cap URLs at 2083 bytes; robots.txt lines are assumed to never
// usefully exceed many times that, so bytes beyond this bound are counted
// (the line number still advances once) but dropped from the parsed value.
const maxLineLength = 2083 * 8

// utf8BOM is the UTF-8 byte-order mark, accepted (including partial
// prefixes) at the very start of a document only.
var utf8BOM = [3]byte{0xEF, 0xBB, 0xBF}

// Parser drives a single pass over a robots.txt document, classifying each
// line and invoking the corresponding method on handler.
type Parser struct {
	body    string
	handler RobotsParseHandler
}

// NewParser returns a Parser that will emit events from body to handler.
// body is not copied, so it must remain valid for the lifetime of the
// returned Parser.
func NewParser(body string, handler RobotsParseHandler) *Parser {
	return &Parser{body: body, handler: handler}
}

// needsEscaping reports whether a key's value should run through
// EscapePattern before being handed to the handler. Only Allow/Disallow
// pattern values are canonicalized; User-agent and Sitemap values pass
// through untouched.
func needsEscaping(key *ParsedKey) bool {
	switch key.Type() {
	case KeyAllow, KeyDisallow:
		return true
	default:
		return false
	}
}

func emitKeyValue(lineNum int, key *ParsedKey, value string, handler RobotsParseHandler) {
	switch key.Type() {
	case KeyUserAgent:
		handler.HandleUserAgent(lineNum, value)
	case KeyAllow:
		handler.HandleAllow(lineNum, value)
	case KeyDisallow:
		handler.HandleDisallow(lineNum, value)
	case KeySitemap:
		handler.HandleSitemap(lineNum, value)
	case KeyUnknown:
		handler.HandleUnknownAction(lineNum, key.UnknownText(), value)
	}
}

func (p *Parser) parseAndEmitLine(lineNum int, line string) {
	stringKey, value, ok := keyAndValueFromLine(line)
	if !ok {
		return
	}

	key := &ParsedKey{}
	key.Parse(stringKey)
	if needsEscaping(key) {
		value = EscapePattern(value)
	}
	emitKeyValue(lineNum, key, value, p.handler)
}

// Parse iterates the document byte by byte, skipping a leading UTF-8 BOM,
// splitting on LF/CR/CRLF line endings, enforcing the per-line byte budget,
// and emitting one HandleXxx callback per recognized directive, bracketed
// by HandleRobotsStart/HandleRobotsEnd.
func (p *Parser) Parse() {
	p.handler.HandleRobotsStart()

	r := strings.NewReader(p.body)

	// Skip BOM if present - including partial BOMs.
	for i := 0; i < len(utf8BOM); i++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if b != utf8BOM[i] {
			_ = r.UnreadByte()
			break
		}
	}

	lineNum := 0
	lastWasCR := false
	var lineBuf []byte

	for {
		b, err := r.ReadByte()
		if err != nil {
			break
		}
		if b != '\n' && b != '\r' {
			if len(lineBuf) < maxLineLength {
				lineBuf = append(lineBuf, b)
			}
			continue
		}
		// A CR immediately followed by LF terminates one line, not two.
		isCRLFContinuation := len(lineBuf) == 0 && lastWasCR && b == '\n'
		if !isCRLFContinuation {
			lineNum++
			p.parseAndEmitLine(lineNum, string(lineBuf))
		}
		lineBuf = lineBuf[:0]
		lastWasCR = b == '\r'
	}
	lineNum++
	p.parseAndEmitLine(lineNum, string(lineBuf))

	p.handler.HandleRobotsEnd()
}

// ParseRobotsTxt parses body and emits parse callbacks to handler. It
// accepts typical typos found in robots.txt (such as "disalow") and skips,
// without error, anything that doesn't look like a directive.
func ParseRobotsTxt(body string, handler RobotsParseHandler) {
	NewParser(body, handler).Parse()
}

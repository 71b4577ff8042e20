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

// AllowFrequentTypos enables recognition of common misspellings of
// directive keys (e.g. "dissallow", "useragent"). Enabled by default, as
// real-world robots.txt files rely on it.
var AllowFrequentTypos = true

// KeyType classifies a directive key.
type KeyType int

const (
	// KeyUnknown is the zero value, so additions to this enumeration never
	// change the meaning of an unset KeyType.
	KeyUnknown KeyType = iota
	KeyUserAgent
	KeySitemap
	KeyAllow
	KeyDisallow
)

// ParsedKey parses a directive's key text (tolerating common typos) into a
// KeyType. Unknown keys retain their original text.
type ParsedKey struct {
	typ     KeyType
	keyText string
}

// Parse classifies key. It does not copy the string.
func (k *ParsedKey) Parse(key string) {
	k.keyText = ""
	switch {
	case keyIsUserAgent(key):
		k.typ = KeyUserAgent
	case keyIsAllow(key):
		k.typ = KeyAllow
	case keyIsDisallow(key):
		k.typ = KeyDisallow
	case keyIsSitemap(key):
		k.typ = KeySitemap
	default:
		k.typ = KeyUnknown
		k.keyText = key
	}
}

// Type returns the classified key type.
func (k *ParsedKey) Type() KeyType {
	return k.typ
}

// UnknownText returns the original key text for an unknown key. It panics
// if called on any other key type — callers should check Type() first.
func (k *ParsedKey) UnknownText() string {
	if k.typ != KeyUnknown || k.keyText == "" {
		panic("robotsmatch: UnknownText called on a recognized key")
	}
	return k.keyText
}

func keyIsUserAgent(key string) bool {
	return startsWithFold(key, "user-agent") ||
		(AllowFrequentTypos && (startsWithFold(key, "useragent") || startsWithFold(key, "user agent")))
}

func keyIsAllow(key string) bool {
	return startsWithFold(key, "allow")
}

func keyIsDisallow(key string) bool {
	return startsWithFold(key, "disallow") ||
		(AllowFrequentTypos && (startsWithFold(key, "dissallow") ||
			startsWithFold(key, "dissalow") ||
			startsWithFold(key, "disalow") ||
			startsWithFold(key, "diasllow") ||
			startsWithFold(key, "disallaw")))
}

func keyIsSitemap(key string) bool {
	return startsWithFold(key, "sitemap") || startsWithFold(key, "site-map")
}

func startsWithFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), prefix)
}

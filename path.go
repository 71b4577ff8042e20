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

// PathParamsQuery extracts the path (with params) and query part from a URL.
// It removes any scheme, authority and fragment, and the result always
// starts with "/". It returns "/" if the URL has no path or isn't valid.
//
// The function operates as a textual scan and does not require (or use) a
// URL parsing library: robots.txt matching must tolerate URLs that are not
// valid per RFC 3986, which a strict parser would reject outright.
func PathParamsQuery(uri string) string {
	// Initial two slashes are ignored.
	searchStart := 0
	if len(uri) >= 2 && uri[0] == '/' && uri[1] == '/' {
		searchStart = 2
	}

	earlyPath := indexAnyFrom(uri, "/?;", searchStart)
	protocolEnd := indexFrom(uri, "://", searchStart)
	if earlyPath != -1 && earlyPath < protocolEnd {
		// If path, param or query starts before ://, :// doesn't indicate protocol.
		protocolEnd = -1
	}
	if protocolEnd == -1 {
		protocolEnd = searchStart
	} else {
		protocolEnd += 3
	}

	pathStart := indexAnyFrom(uri, "/?;", protocolEnd)
	if pathStart == -1 {
		return "/"
	}

	hashPos := indexByteFrom(uri, '#', searchStart)
	if hashPos != -1 && hashPos < pathStart {
		return "/"
	}
	pathEnd := hashPos
	if hashPos == -1 {
		pathEnd = len(uri)
	}
	if uri[pathStart] != '/' {
		return "/" + uri[pathStart:pathEnd]
	}
	return uri[pathStart:pathEnd]
}

func indexAnyFrom(s, chars string, from int) int {
	i := strings.IndexAny(s[from:], chars)
	if i == -1 {
		return -1
	}
	return i + from
}

func indexFrom(s, sub string, from int) int {
	i := strings.Index(s[from:], sub)
	if i == -1 {
		return -1
	}
	return i + from
}

func indexByteFrom(s string, b byte, from int) int {
	i := strings.IndexByte(s[from:], b)
	if i == -1 {
		return -1
	}
	return i + from
}

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

const hexDigits = "0123456789ABCDEF"

// EscapePattern canonicalizes an Allow/Disallow pattern value. For example:
//
//	/SanjoséSellers ==> /Sanjos%C3%A9Sellers
//	%aa             ==> %AA
//
// Bytes with the high bit set are percent-escaped with uppercase hex digits.
// An already-escaped sequence ("%" followed by two hex digits) is
// re-emitted with its hex digits uppercased; any other "%" passes through
// untouched. If a first scan finds nothing to change, the input is returned
// verbatim.
func EscapePattern(src string) string {
	needCapitalise := false
	numToEscape := 0

	byteAt := func(i int) byte {
		if i < len(src) {
			return src[i]
		}
		return 0
	}

	for i := 0; i < len(src); i++ {
		switch {
		case src[i] == '%' && isHexDigit(byteAt(i+1)) && isHexDigit(byteAt(i+2)):
			if isLowerHex(byteAt(i+1)) || isLowerHex(byteAt(i+2)) {
				needCapitalise = true
			}
		case src[i] >= 0x80:
			numToEscape++
		}
	}
	if numToEscape == 0 && !needCapitalise {
		return src
	}

	var dst strings.Builder
	dst.Grow(len(src) + numToEscape*2)
	for i := 0; i < len(src); i++ {
		switch {
		case src[i] == '%' && isHexDigit(byteAt(i+1)) && isHexDigit(byteAt(i+2)):
			dst.WriteByte('%')
			i++
			dst.WriteByte(toUpperHex(src[i]))
			i++
			dst.WriteByte(toUpperHex(src[i]))
		case src[i] >= 0x80:
			dst.WriteByte('%')
			dst.WriteByte(hexDigits[(src[i]>>4)&0xf])
			dst.WriteByte(hexDigits[src[i]&0xf])
		default:
			dst.WriteByte(src[i])
		}
	}
	return dst.String()
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isLowerHex(c byte) bool {
	return 'a' <= c && c <= 'f'
}

func toUpperHex(c byte) byte {
	return c &^ 0x20
}

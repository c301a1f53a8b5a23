/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package codepoints parses the whitespace-separated code point list files
// accepted by the --blacklist/--whitelist CLI flags.
package codepoints

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseList reads whitespace-separated integers (decimal, 0x-hex, or
// 0-octal, per strconv.ParseInt base 0) from r and returns them sorted
// ascending. A leading UTF-8 or UTF-16 byte-order mark is tolerated and
// stripped, mirroring how list files exported by text editors are sometimes
// BOM-prefixed.
func ParseList(r io.Reader) ([]uint16, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var out []uint16
	scanner := bufio.NewScanner(decoded)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseInt(tok, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("codepoints: invalid code point %q: %w", tok, err)
		}
		out = append(out, uint16(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("codepoints: reading list: %w", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Contains reports whether the sorted list contains code, by binary search.
func Contains(list []uint16, code uint16) bool {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= code })
	return i < len(list) && list[i] == code
}

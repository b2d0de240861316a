// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validate - field checks for asset metadata
//
// all checks are pure and return a simple boolean, the caller
// decides which fault to report
package validate

import (
	"unicode/utf8"
)

// limits, lengths are in characters not bytes
const (
	MinimumTitleLength       = 1
	MaximumTitleLength       = 64
	MinimumDescriptionLength = 1
	MaximumDescriptionLength = 128
	MinimumTagLength         = 1
	MaximumTagLength         = 32
	MinimumTagCount          = 1
	MaximumTagCount          = 10
	MaximumSize              = 1000000000 // exclusive
)

// Tag - check a single tag
func Tag(tag string) bool {
	return inRange(tag, MinimumTagLength, MaximumTagLength)
}

// Tags - check the tag count and every tag
func Tags(tags []string) bool {
	if len(tags) < MinimumTagCount || len(tags) > MaximumTagCount {
		return false
	}
	for _, tag := range tags {
		if !Tag(tag) {
			return false
		}
	}
	return true
}

// Title - check the asset title
func Title(title string) bool {
	return inRange(title, MinimumTitleLength, MaximumTitleLength)
}

// Description - check the asset description
func Description(description string) bool {
	return inRange(description, MinimumDescriptionLength, MaximumDescriptionLength)
}

// Size - must be non-zero and below the maximum
func Size(size uint64) bool {
	return 0 < size && size < MaximumSize
}

func inRange(s string, minimum int, maximum int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minimum && n <= maximum
}

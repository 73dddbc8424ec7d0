// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Do not use it where a malformed value must be told apart from a missing one.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts str to an int, returning def when str is empty or not a
// base-10 integer. Surrounding whitespace is ignored.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

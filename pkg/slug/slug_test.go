// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Folio", "folio"},
		{"Café Menu · v2", "cafe-menu-v2"},
		{"  --Hello,   World!--  ", "hello-world"},
		{"Tiếng Việt", "tieng-viet"},
		{"日本語", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.From(tt.in), "input %q", tt.in)
	}
}

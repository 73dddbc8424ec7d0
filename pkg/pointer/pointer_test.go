// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/pkg/pointer"
)

func TestPointer(t *testing.T) {
	title := pointer.To("Folio")
	assert.Equal(t, "Folio", *title)

	assert.Equal(t, "Folio", pointer.Val(title))
	assert.Equal(t, "", pointer.Val[string](nil))

	assert.Equal(t, []string{}, pointer.Fallback(nil, []string{}))
	assert.Equal(t, []string{"a"}, pointer.Fallback(pointer.To([]string{"a"}), []string{}))
}

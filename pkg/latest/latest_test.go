// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package latest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalamanch/directory/pkg/latest"
)

/*
TestSlot_LastWriteWins verifies that a superseded result is discarded even when
it finishes after the newer one.
*/
func TestSlot_LastWriteWins(t *testing.T) {
	var slot latest.Slot[string]

	_, ok := slot.Load()
	assert.False(t, ok)

	first := slot.Begin()
	second := slot.Begin()

	assert.True(t, slot.Commit(second, "second"))
	assert.False(t, slot.Commit(first, "first"))

	value, ok := slot.Load()
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

/*
TestSlot_Reset drops the value and invalidates outstanding tickets.
*/
func TestSlot_Reset(t *testing.T) {
	var slot latest.Slot[int]

	ticket := slot.Begin()
	slot.Reset()

	assert.False(t, slot.Commit(ticket, 42))

	_, ok := slot.Load()
	assert.False(t, ok)
}

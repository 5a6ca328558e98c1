// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package textfold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalamanch/directory/pkg/textfold"
)

/*
TestFold checks case and accent folding.
*/
func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii", "Jaipur", "jaipur"},
		{"mixed_case", "DJ Max", "dj max"},
		{"accent", "Café Sangeet", "cafe sangeet"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textfold.Fold(tt.input))
		})
	}
}

/*
TestContains covers substring matching semantics.
*/
func TestContains(t *testing.T) {
	assert.True(t, textfold.Contains("Mixing/Mastering", "master"))
	assert.True(t, textfold.Contains("Anything", ""))
	assert.True(t, textfold.Contains("Résumé Studio", "resume"))
	assert.False(t, textfold.Contains("Folk", "bollywood"))
}

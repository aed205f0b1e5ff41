package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmetRequirements(t *testing.T) {
	requirements := []string{"mencionar a marca", "usar a hashtag oficial", "marcar o perfil"}

	tests := []struct {
		name      string
		checklist map[string]bool
		expected  []string
	}{
		{
			name: "all confirmed",
			checklist: map[string]bool{
				"mencionar a marca":      true,
				"usar a hashtag oficial": true,
				"marcar o perfil":        true,
			},
			expected: nil,
		},
		{
			name: "one unconfirmed",
			checklist: map[string]bool{
				"mencionar a marca":      true,
				"usar a hashtag oficial": false,
				"marcar o perfil":        true,
			},
			expected: []string{"usar a hashtag oficial"},
		},
		{
			name:      "missing keys count as unmet, in requirement order",
			checklist: map[string]bool{"marcar o perfil": true},
			expected:  []string{"mencionar a marca", "usar a hashtag oficial"},
		},
		{
			name:      "empty checklist",
			checklist: map[string]bool{},
			expected:  []string{"mencionar a marca", "usar a hashtag oficial", "marcar o perfil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnmetRequirements(requirements, tt.checklist))
			assert.Equal(t, len(tt.expected) == 0, ChecklistSatisfied(requirements, tt.checklist))
		})
	}
}

func TestChecklistWellFormed(t *testing.T) {
	requirements := []string{"mencionar a marca", "usar a hashtag oficial"}

	tests := []struct {
		name      string
		checklist map[string]bool
		expected  bool
	}{
		{
			name:      "exact key set",
			checklist: map[string]bool{"mencionar a marca": true, "usar a hashtag oficial": false},
			expected:  true,
		},
		{
			name:      "missing key",
			checklist: map[string]bool{"mencionar a marca": true},
			expected:  false,
		},
		{
			name: "extra key",
			checklist: map[string]bool{
				"mencionar a marca":      true,
				"usar a hashtag oficial": true,
				"requisito inventado":    true,
			},
			expected: false,
		},
		{
			name:      "renamed key",
			checklist: map[string]bool{"mencionar a marca": true, "hashtag": true},
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChecklistWellFormed(requirements, tt.checklist))
		})
	}
}

func TestChecklistKeys(t *testing.T) {
	checklist := map[string]bool{"b": true, "a": false, "c": true}
	assert.Equal(t, []string{"a", "b", "c"}, ChecklistKeys(checklist))
}

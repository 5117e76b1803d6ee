package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/trim/internal/core/domain"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name      string
		debugOnly bool
		enableIOS bool
		expected  domain.BuildMode
	}{
		{
			name:      "defaults produce a full build",
			debugOnly: false,
			enableIOS: false,
			expected:  domain.BuildMode{DebugOnly: false, IOSEnabled: true},
		},
		{
			name:      "ios flag is redundant for a full build",
			debugOnly: false,
			enableIOS: true,
			expected:  domain.BuildMode{DebugOnly: false, IOSEnabled: true},
		},
		{
			name:      "debug only drops ios",
			debugOnly: true,
			enableIOS: false,
			expected:  domain.BuildMode{DebugOnly: true, IOSEnabled: false},
		},
		{
			name:      "debug only keeps ios on explicit opt-in",
			debugOnly: true,
			enableIOS: true,
			expected:  domain.BuildMode{DebugOnly: true, IOSEnabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ResolveMode(tt.debugOnly, tt.enableIOS))
		})
	}
}

func TestResolveMode_Invariant(t *testing.T) {
	// IOSEnabled == enableIOS || !debugOnly must hold for every input pair.
	for _, debugOnly := range []bool{false, true} {
		for _, enableIOS := range []bool{false, true} {
			mode := domain.ResolveMode(debugOnly, enableIOS)
			assert.Equal(t, enableIOS || !debugOnly, mode.IOSEnabled,
				"debugOnly=%v enableIOS=%v", debugOnly, enableIOS)
		}
	}
}

func TestBuildMode_String(t *testing.T) {
	tests := []struct {
		mode     domain.BuildMode
		expected string
	}{
		{domain.BuildMode{DebugOnly: false, IOSEnabled: true}, "full"},
		{domain.BuildMode{DebugOnly: true, IOSEnabled: false}, "debug-only"},
		{domain.BuildMode{DebugOnly: true, IOSEnabled: true}, "debug-only+ios"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.String())
		})
	}
}

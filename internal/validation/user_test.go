package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid email",
			email: "bob@dylan.com",
		},
		{
			name:  "valid email with plus",
			email: "bob+files@dylan.com",
		},
		{
			name:    "empty email",
			email:   "",
			wantErr: true,
			errMsg:  "cannot be empty",
		},
		{
			name:    "missing at sign",
			email:   "bobdylan.com",
			wantErr: true,
			errMsg:  "not a valid address",
		},
		{
			name:    "display name form",
			email:   "Bob <bob@dylan.com>",
			wantErr: true,
			errMsg:  "not a valid address",
		},
		{
			name:    "too long",
			email:   strings.Repeat("a", 250) + "@x.io",
			wantErr: true,
			errMsg:  "must not exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("toto1234!"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("p", MaxPasswordLen+1)))
	assert.NoError(t, ValidatePassword(strings.Repeat("p", MaxPasswordLen)))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "bob@dylan.com", NormalizeEmail("  Bob@Dylan.COM "))
}

func TestIsThumbnailSize(t *testing.T) {
	for _, size := range []string{"500", "250", "100"} {
		assert.True(t, IsThumbnailSize(size), size)
	}
	for _, size := range []string{"", "0", "50", "../etc/passwd", "500 "} {
		assert.False(t, IsThumbnailSize(size), size)
	}
}

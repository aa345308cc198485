package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid username - lowercase",
			username: "alice",
			wantErr:  false,
		},
		{
			name:     "valid username - with underscore and digits",
			username: "alice_42",
			wantErr:  false,
		},
		{
			name:     "valid username - max length",
			username: strings.Repeat("a", MaxUsernameLen),
			wantErr:  false,
		},
		{
			name:     "invalid - empty username",
			username: "",
			wantErr:  true,
			errMsg:   "username cannot be empty",
		},
		{
			name:     "invalid - too short",
			username: "ab",
			wantErr:  true,
			errMsg:   "at least 3 characters",
		},
		{
			name:     "invalid - too long",
			username: strings.Repeat("a", MaxUsernameLen+1),
			wantErr:  true,
			errMsg:   "must not exceed 32 characters",
		},
		{
			name:     "invalid - special characters",
			username: "alice!",
			wantErr:  true,
			errMsg:   "can only contain",
		},
		{
			name:     "invalid - cyrillic letters",
			username: "алиса",
			wantErr:  true,
		},
		{
			name:     "invalid - spaces",
			username: "alice smith",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "correct-horse",
			wantErr:  false,
		},
		{
			name:     "valid password - exactly min length",
			password: strings.Repeat("x", MinPasswordLen),
			wantErr:  false,
		},
		{
			name:     "invalid - empty",
			password: "",
			wantErr:  true,
		},
		{
			name:     "invalid - too short",
			password: "short",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{
			name:    "valid title",
			title:   "Meeting notes",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			title:   "",
			wantErr: true,
		},
		{
			name:    "invalid - whitespace only",
			title:   "   \t",
			wantErr: true,
		},
		{
			name:    "invalid - too long",
			title:   strings.Repeat("a", MaxTitleLen+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEventDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{
			name:    "valid date",
			date:    "2025-03-14",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			date:    "",
			wantErr: true,
		},
		{
			name:    "invalid - wrong format",
			date:    "14.03.2025",
			wantErr: true,
		},
		{
			name:    "invalid - nonexistent day",
			date:    "2025-02-30",
			wantErr: true,
		},
		{
			name:    "invalid - datetime instead of date",
			date:    "2025-03-14T10:00:00Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventDate(tt.date)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEventTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "valid time",
			value:   "09:30",
			wantErr: false,
		},
		{
			name:    "empty time means all-day event",
			value:   "",
			wantErr: false,
		},
		{
			name:    "invalid - out of range",
			value:   "25:00",
			wantErr: true,
		},
		{
			name:    "invalid - with seconds",
			value:   "09:30:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid range",
			startDate: "2025-03-01",
			endDate:   "2025-03-07",
			wantErr:   false,
		},
		{
			name:      "single day range",
			startDate: "2025-03-01",
			endDate:   "2025-03-01",
			wantErr:   false,
		},
		{
			name:      "invalid - start after end",
			startDate: "2025-03-07",
			endDate:   "2025-03-01",
			wantErr:   true,
			errMsg:    "must not be after",
		},
		{
			name:      "invalid - bad start date",
			startDate: "not-a-date",
			endDate:   "2025-03-01",
			wantErr:   true,
			errMsg:    "invalid start_date",
		},
		{
			name:      "invalid - bad end date",
			startDate: "2025-03-01",
			endDate:   "03/07/2025",
			wantErr:   true,
			errMsg:    "invalid end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateRange(tt.startDate, tt.endDate)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

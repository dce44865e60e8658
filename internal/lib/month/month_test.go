package month

import (
	"testing"
	"time"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "regular month",
			year:      2025,
			month:     10,
			wantStart: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december rolls into next year",
			year:      2025,
			month:     12,
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february in leap year",
			year:      2024,
			month:     2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "month zero is invalid",
			year:    2025,
			month:   0,
			wantErr: true,
		},
		{
			name:    "month thirteen is invalid",
			year:    2025,
			month:   13,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := Range(tt.year, tt.month)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Range() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("Range() start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("Range() end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestRange_LastDayInsideInterval(t *testing.T) {
	start, end, err := Range(2025, 10)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	lastDay := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)
	if lastDay.Before(start) || !lastDay.Before(end) {
		t.Errorf("last day of month must fall inside [start, end)")
	}
}

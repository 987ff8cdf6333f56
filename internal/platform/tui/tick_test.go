package tui

import (
	"testing"
	"time"
)

func TestRunLength(t *testing.T) {
	tests := []struct {
		ticks, rate int
		want        time.Duration
	}{
		{0, 60, 0},
		{5700, 60, 95 * time.Second},
		{30, 30, time.Second},
		{60, 0, time.Second},
	}
	for _, tc := range tests {
		if got := RunLength(tc.ticks, tc.rate); got != tc.want {
			t.Errorf("RunLength(%d, %d) = %v, expected %v", tc.ticks, tc.rate, got, tc.want)
		}
	}
}

func TestFormatRunLength(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 600*time.Millisecond, "1:02"},
		{10 * time.Minute, "10:00"},
	}
	for _, tc := range tests {
		if got := FormatRunLength(tc.d); got != tc.want {
			t.Errorf("FormatRunLength(%v) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}

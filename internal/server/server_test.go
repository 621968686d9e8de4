package server

import (
	"testing"
	"time"
)

func TestPassTimeout(t *testing.T) {
	tests := []struct {
		provider time.Duration
		want     time.Duration
	}{
		{time.Second, 7 * time.Second},
		{60 * time.Second, 125 * time.Second},
	}

	for _, tt := range tests {
		got := passTimeout(tt.provider)
		if got != tt.want {
			t.Errorf("passTimeout(%s): got %s, want %s", tt.provider, got, tt.want)
		}
		// a probe and a completion may each run the full provider timeout
		if got <= 2*tt.provider {
			t.Errorf("passTimeout(%s) = %s does not cover two provider calls", tt.provider, got)
		}
	}
}

package settings

import (
	"testing"
	"time"
)

func TestBeatIntervalMs_Duration(t *testing.T) {
	if DefaultBeatIntervalMs.Duration() != 2*time.Second {
		t.Fatalf("unexpected default interval: %v", DefaultBeatIntervalMs.Duration())
	}
	if BeatIntervalMs(250).Duration() != 250*time.Millisecond {
		t.Fatal("unexpected conversion")
	}
	if BeatIntervalMs(250).Int() != 250 {
		t.Fatal("unexpected Int()")
	}
}

func TestDialTimeoutMs_Duration(t *testing.T) {
	if DefaultDialTimeoutMs.Duration() != 5*time.Second {
		t.Fatalf("unexpected default timeout: %v", DefaultDialTimeoutMs.Duration())
	}
	if DialTimeoutMs(1500).Duration() != 1500*time.Millisecond {
		t.Fatal("unexpected conversion")
	}
}

func TestNewDefaultSettings(t *testing.T) {
	h, _ := NewHost("127.0.0.1")
	s := NewDefaultSettings(h, 9999)
	if s.Port != 9999 {
		t.Errorf("unexpected port: %d", s.Port)
	}
	if s.BeatIntervalMs != DefaultBeatIntervalMs {
		t.Errorf("unexpected interval: %v", s.BeatIntervalMs)
	}
	if s.DialTimeoutMs != DefaultDialTimeoutMs {
		t.Errorf("unexpected dial timeout: %v", s.DialTimeoutMs)
	}
}

package settings

import "time"

type BeatIntervalMs int

func (b BeatIntervalMs) Int() int {
	return int(b)
}

func (b BeatIntervalMs) Duration() time.Duration {
	return time.Duration(b) * time.Millisecond
}

type DialTimeoutMs int

func (d DialTimeoutMs) Int() int {
	return int(d)
}

func (d DialTimeoutMs) Duration() time.Duration {
	return time.Duration(d) * time.Millisecond
}

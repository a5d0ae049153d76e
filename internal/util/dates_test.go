package util

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	// 东八区的 3 月 11 日凌晨 2 点，UTC 仍是 3 月 10 日
	cst := time.FixedZone("CST", 8*3600)
	local := time.Date(2026, 3, 11, 2, 0, 0, 0, cst)

	if got := DateKey(local); got != "2026-03-10" {
		t.Errorf("DateKey = %q, want 2026-03-10", got)
	}
}

func TestDateKeyFormat(t *testing.T) {
	ts := time.Date(2026, 1, 5, 23, 59, 59, 0, time.UTC)
	if got := DateKey(ts); got != "2026-01-05" {
		t.Errorf("DateKey = %q, want zero-padded 2026-01-05", got)
	}
}

func TestStartOfDayUTC(t *testing.T) {
	ts := time.Date(2026, 3, 10, 15, 30, 45, 123, time.UTC)
	got := StartOfDayUTC(ts)

	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDayUTC = %v, want %v", got, want)
	}
}

func TestStartOfDayUTCWalksBackAcrossMonths(t *testing.T) {
	day := StartOfDayUTC(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	prev := day.AddDate(0, 0, -1)

	if DateKey(prev) != "2026-02-28" {
		t.Errorf("previous day = %q, want 2026-02-28", DateKey(prev))
	}
}

func TestUnixMillis(t *testing.T) {
	ts := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if got := UnixMillis(ts); got != ts.UnixMilli() {
		t.Errorf("UnixMillis = %d, want %d", got, ts.UnixMilli())
	}
}

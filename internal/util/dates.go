package util

import "time"

// 日期键统一按 UTC 计算，避免时区/夏令时边界的歧义。
const DateKeyLayout = "2006-01-02"

// DateKey 返回时间戳对应的 UTC 日历日期键
func DateKey(t time.Time) string {
	return t.UTC().Format(DateKeyLayout)
}

// StartOfDayUTC 返回 t 所在 UTC 日的零点
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// UnixMillis 毫秒时间戳
func UnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}

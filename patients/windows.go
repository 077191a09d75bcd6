package patients

import "time"

// Windows holds the relative-date cutoffs the roster views are built on.
// They are derived from the request time on every call, never cached.
type Windows struct {
	Past60  time.Time
	Past180 time.Time
	Past365 time.Time
}

func WindowsAt(now time.Time) Windows {
	return Windows{
		Past60:  now.AddDate(0, 0, -60),
		Past180: now.AddDate(0, 0, -180),
		Past365: now.AddDate(0, 0, -365),
	}
}

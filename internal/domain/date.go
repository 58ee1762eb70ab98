package domain

import "time"

// Date is a calendar day in "2006-01-02" form. Price bars and posts from
// different providers are joined on Date, so both sides must derive it in the
// same reference location (the exchange's trading calendar).
type Date string

const dateLayout = "2006-01-02"

// DateOf reduces a timestamp to its calendar day in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	return Date(t.In(loc).Format(dateLayout))
}

// Time returns the midnight instant of the date in loc.
func (d Date) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, string(d), loc)
}

func (d Date) String() string { return string(d) }

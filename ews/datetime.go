package ews

import (
	"fmt"
	"time"
)

// DateTime is an xs:dateTime lexical value. It is carried verbatim; only
// ToEpoch interprets it.
type DateTime string

// Date is an xs:date lexical value such as "1982-04-01".
type Date string

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// IsSet reports whether d holds a value.
func (d DateTime) IsSet() bool {
	return d != ""
}

// String returns d unchanged.
func (d DateTime) String() string {
	return string(d)
}

// Time parses d. Values without a zone designator are taken as UTC.
func (d DateTime) Time() (time.Time, error) {
	if d == "" {
		return time.Time{}, ErrInvalidDateTime
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, string(d)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse %q: %w", string(d), ErrInvalidDateTime)
}

// ToEpoch returns d as seconds since the Unix epoch.
func (d DateTime) ToEpoch() (int64, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// DateTimeFromEpoch renders epoch seconds in UTC with a Z designator.
func DateTimeFromEpoch(epoch int64) DateTime {
	return DateTime(time.Unix(epoch, 0).UTC().Format("2006-01-02T15:04:05Z"))
}

// DateTimeFromTime renders t in UTC with a Z designator.
func DateTimeFromTime(t time.Time) DateTime {
	return DateTimeFromEpoch(t.Unix())
}

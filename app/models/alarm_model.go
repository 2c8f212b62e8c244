package models

import (
	"time"
)

// Weekday abbreviations used in Alarm.RepeatDays, indexed by
// time.Weekday (Sunday = 0).
var WeekdayAbbrevs = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Alarm is a user-defined time-of-day notification rule. The time is
// a plain "HH:mm" string, not a timestamp; deciding whether an alarm
// should fire right now is the consuming poller's job, not this
// backend's.
type Alarm struct {
	ID         int      `json:"id" db:"id"`
	Name       string   `json:"name" db:"name"`
	Time       string   `json:"time" db:"time"`
	IsEnabled  bool     `json:"isEnabled" db:"is_enabled"`
	RepeatDays []string `json:"repeatDays" db:"repeat_days"`
	Message    string   `json:"message" db:"message"`
	Sound      string   `json:"sound" db:"sound"`
}

// FiresOn reports whether the alarm repeats on the given weekday.
// An empty or nil RepeatDays means the alarm fires every day it is
// checked, never "fires never". Consumers evaluating alarms must keep
// that reading.
func (a *Alarm) FiresOn(day time.Weekday) bool {
	if len(a.RepeatDays) == 0 {
		return true
	}
	abbrev := WeekdayAbbrevs[day]
	for _, d := range a.RepeatDays {
		if d == abbrev {
			return true
		}
	}
	return false
}

type CreateAlarmRequest struct {
	Name       string   `json:"name" validate:"required"`
	Time       string   `json:"time" validate:"required,datetime=15:04"`
	IsEnabled  *bool    `json:"isEnabled"`
	RepeatDays []string `json:"repeatDays"`
	Message    string   `json:"message"`
	Sound      string   `json:"sound"`
}

// UpdateAlarmRequest is the sparse alarm update; time keeps the HH:mm
// form when present.
type UpdateAlarmRequest struct {
	Name       *string   `json:"name"`
	Time       *string   `json:"time" validate:"omitempty,datetime=15:04"`
	IsEnabled  *bool     `json:"isEnabled"`
	RepeatDays *[]string `json:"repeatDays"`
	Message    *string   `json:"message"`
	Sound      *string   `json:"sound"`
}

package models

import (
	"testing"
	"time"
)

// An alarm without repeat days fires every day it is checked. Pollers
// must not read an empty list as "never".
func TestAlarmFiresOnEveryDayWhenUnset(t *testing.T) {
	for _, alarm := range []Alarm{
		{Name: "nil repeat", RepeatDays: nil},
		{Name: "empty repeat", RepeatDays: []string{}},
	} {
		for day := time.Sunday; day <= time.Saturday; day++ {
			if !alarm.FiresOn(day) {
				t.Errorf("%s: expected to fire on %s", alarm.Name, day)
			}
		}
	}
}

func TestAlarmFiresOnListedDaysOnly(t *testing.T) {
	alarm := Alarm{RepeatDays: []string{"Mon", "Wed", "Fri"}}

	fires := map[time.Weekday]bool{
		time.Monday:    true,
		time.Wednesday: true,
		time.Friday:    true,
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		if got := alarm.FiresOn(day); got != fires[day] {
			t.Errorf("FiresOn(%s) = %v, want %v", day, got, fires[day])
		}
	}
}

package common

import (
	"time"

	messages "github.com/codetiger/messages-sub000"
)

// ISODate is a calendar date (YYYY-MM-DD).
type ISODate string

func (v ISODate) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ISODate) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Date("2006-01-02", "date")}
}

// ISODateTime is a date and time with offset (RFC 3339 profile).
type ISODateTime string

func (v ISODateTime) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ISODateTime) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Date(time.RFC3339, "date-time")}
}

// ISOTime is a time of day (hh:mm:ss).
type ISOTime string

func (v ISOTime) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ISOTime) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Date("15:04:05", "time")}
}

// ISOYearMonth is a year and month (YYYY-MM).
type ISOYearMonth string

func (v ISOYearMonth) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ISOYearMonth) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Date("2006-01", "year-month")}
}

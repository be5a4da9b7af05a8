package appointment

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidStatus   = errors.New("invalid appointment status")
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	return Title{value: s}, nil
}

func (t Title) Value() string {
	return t.value
}

package model

import "time"

type CalendarEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Date uses the YYYY-MM-DD layout
	Date  string `json:"date"`
	Time  string `json:"time,omitempty"`
	Notes string `json:"notes,omitempty"`
}

const CalendarDateLayout = "2006-01-02"

func (e CalendarEvent) Day() (time.Time, error) {
	return time.Parse(CalendarDateLayout, e.Date)
}

type Goal struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

type Profile struct {
	DisplayName string `json:"displayName"`
	Title       string `json:"title"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Bio         string `json:"bio"`
	// Avatar is a data URL (data:image/png;base64,...)
	Avatar string `json:"avatar,omitempty"`
}

func (p Profile) Initials() string {
	initials := make([]rune, 0, 2)
	takeNext := true
	for _, r := range p.DisplayName {
		if r == ' ' || r == '-' {
			takeNext = true
			continue
		}
		if takeNext {
			initials = append(initials, r)
			takeNext = false
		}
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "?"
	}
	return string(initials)
}

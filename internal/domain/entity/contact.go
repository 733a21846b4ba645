package entity

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time of day, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to midnight UTC of the same calendar day.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}

	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(DateLayout)
}

// MarshalJSON encodes the zero date as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts null, "" or YYYY-MM-DD.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s: %w", s, DateLayout, err)
	}
	*d = parsed

	return nil
}

// Contact is an address book entry.
type Contact struct {
	ID          int64  `json:"id,omitempty"` // Storage generated; zero until first persisted.
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"` // Unique natural key.
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   Date   `json:"birthDate"`
}

// Equal reports whether c and other identify the same contact.
func (c *Contact) Equal(other *Contact) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.Email == other.Email
}

func (c *Contact) String() string {
	return fmt.Sprintf("Contact{id=%d, firstName=%q, lastName=%q, email=%q, phoneNumber=%q, birthDate=%s}",
		c.ID, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.BirthDate)
}

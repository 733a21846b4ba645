package entity

import "fmt"

// Restaurant is a reviewable venue, identified externally by its phone number.
type Restaurant struct {
	ID          int64  `json:"id,omitempty"` // Storage generated; zero until first persisted.
	Name        string `json:"name"`
	PhoneNumber string `json:"phonenumber"` // Unique natural key.
	Postcode    string `json:"postcode"`
}

// Equal reports whether r and other carry the same name.
func (r *Restaurant) Equal(other *Restaurant) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.Name == other.Name
}

func (r *Restaurant) String() string {
	return fmt.Sprintf("Restaurant{id=%d, name=%q, phonenumber=%q, postcode=%q}", r.ID, r.Name, r.PhoneNumber, r.Postcode)
}

package entity

import "fmt"

// Review is one user's opinion of one restaurant. A user reviews a given
// restaurant at most once.
type Review struct {
	ID         int64       `json:"id,omitempty"` // Storage generated; zero until first persisted.
	Review     string      `json:"review"`
	Rating     int         `json:"rating"`
	User       *User       `json:"user"`
	Restaurant *Restaurant `json:"restaurant"`
}

// UserID returns the id of the referenced user, or zero when unset.
func (r *Review) UserID() int64 {
	if r.User == nil {
		return 0
	}

	return r.User.ID
}

// RestaurantID returns the id of the referenced restaurant, or zero when unset.
func (r *Review) RestaurantID() int64 {
	if r.Restaurant == nil {
		return 0
	}

	return r.Restaurant.ID
}

// Equal reports whether r and other share the (user, restaurant) natural key.
func (r *Review) Equal(other *Review) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.UserID() == other.UserID() && r.RestaurantID() == other.RestaurantID()
}

func (r *Review) String() string {
	return fmt.Sprintf("Review{id=%d, rating=%d, userId=%d, restaurantId=%d, review=%q}",
		r.ID, r.Rating, r.UserID(), r.RestaurantID(), r.Review)
}

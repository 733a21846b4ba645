package model

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// A user reviews a restaurant at most once, enforced by uq_reviews_user_restaurant.
// Both references cascade, so deleting a user or a restaurant removes its reviews.
type ReviewModel struct {
	ID           int64            `gorm:"primaryKey;autoIncrement"`
	Review       string           `gorm:"type:varchar(300)"`
	Rating       int              `gorm:"not null;check:chk_reviews_rating,rating >= 0 AND rating <= 5"`
	UserID       int64            `gorm:"column:user_id;not null;uniqueIndex:uq_reviews_user_restaurant,priority:1"`
	RestaurantID int64            `gorm:"column:restaurant_id;not null;uniqueIndex:uq_reviews_user_restaurant,priority:2;index"`
	User         *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Restaurant   *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&ContactModel{},
		&UserModel{},
		&RestaurantModel{},
		&ReviewModel{},
	}
}

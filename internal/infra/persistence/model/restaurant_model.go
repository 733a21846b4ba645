package model

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);not null"`
	PhoneNumber string `gorm:"column:phonenumber;type:varchar(11);not null;uniqueIndex:uq_restaurants_phonenumber"`
	Postcode    string `gorm:"type:varchar(6);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

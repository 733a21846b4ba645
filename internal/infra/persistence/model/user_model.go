package model

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);not null;index"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PhoneNumber string `gorm:"column:phonenumber;type:varchar(11);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// Package model holds the GORM-specific structs that map onto database tables.
package model

import "time"

// ContactModel is the GORM-specific struct for the 'contacts' table.
type ContactModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	FirstName   string    `gorm:"column:first_name;type:varchar(25);not null"`
	LastName    string    `gorm:"column:last_name;type:varchar(25);not null;index"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_contacts_email"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(20);not null"`
	BirthDate   time.Time `gorm:"column:birth_date;type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

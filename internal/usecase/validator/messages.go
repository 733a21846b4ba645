package validator

const (
	msgPersonName     = "Please use a name without numbers or specials"
	msgEmail          = "The email address must be in the format of name@domain.com"
	msgRestaurantName = "a non-empty alphabetical string less than 50 characters in length"
	msgReviewText     = "a non-empty string less than 300 characters in length"
	msgBirthDate      = "Birthdates can not be in the future. Please choose one from the past"
	msgUSPhone        = "Please use a phone number in the format (212) 555-1212"
	msgUKPhone        = `must match "^0[0-9]{10}$"`
	msgPostcode       = `must match "^[A-Z0-9]{6}$"`
	msgRating         = "must be between 0 and 5"
	msgNotNull        = "may not be null"
	msgNotEmpty       = "may not be empty"
)

func sizeBetween(low, high string) string {
	return "size must be between " + low + " and " + high
}

package constvars

const (
	RegexNumeric = `^\d+$`
	// RegexPhoneNumberDigits matches a phone number made of 10-15 digits only.
	RegexPhoneNumberDigits = `^[0-9]{10,15}$`
	// RegexCaseInsensitiveOption is the mongo $regex option for case-insensitive matching.
	RegexCaseInsensitiveOption = "i"
)

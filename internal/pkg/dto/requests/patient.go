package requests

type Patient struct {
	Name        string `json:"name" validate:"required"`
	Age         int    `json:"age" validate:"gte=0"`
	Gender      string `json:"gender" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_digits"`
}

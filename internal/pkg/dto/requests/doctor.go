package requests

type Doctor struct {
	Name              string `json:"name" validate:"required"`
	Specialization    string `json:"specialization" validate:"required"`
	YearsOfExperience *int   `json:"yearsOfExperience" validate:"required,gte=0"`
	Email             string `json:"email" validate:"required,email"`
	PhoneNumber       string `json:"phoneNumber" validate:"required"`
}

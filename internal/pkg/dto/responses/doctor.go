package responses

type Doctor struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Specialization    string `json:"specialization"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
}

package models

// Roles carried in token claims and returned by login.
const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)

// Admin is a back-office account. The password field accepts plaintext on
// input and holds the bcrypt hash once persisted; handlers blank it before
// writing responses.
type Admin struct {
	ID       int64  `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password,omitempty" bson:"password"`
}

type Doctor struct {
	ID          int64  `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	Password    string `json:"password,omitempty" bson:"password"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	Specialty   string `json:"specialty" bson:"specialty"`
}

type Patient struct {
	ID       int64  `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password,omitempty" bson:"password"`
	Phone    string `json:"phone" bson:"phone"`
}

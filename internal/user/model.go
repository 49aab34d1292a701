package user

// User представляет структуру данных пользователя. Поле Password хранит
// bcrypt-хеш, наружу его отдают только схемы ответов в handler-слое.
type User struct {
	ID          string `json:"id" bson:"_id"`
	FirstName   string `json:"first_name" bson:"first_name"`
	LastName    string `json:"last_name" bson:"last_name"`
	Email       string `json:"email" bson:"email"`
	Password    string `json:"-" bson:"password"`
	PhoneNumber string `json:"phone_number" bson:"phone_number"`
}

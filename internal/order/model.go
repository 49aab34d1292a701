package order

// ApprovalDateLayout — формат approval_date в документе заказа (dd/mm/yyyy).
const ApprovalDateLayout = "02/01/2006"

// Order — сущность заказа. Status хранится именем, а не уровнем: так заказ
// лежит в базе. OrderedProducts после создания заказа не меняется.
type Order struct {
	ID              string         `json:"id" bson:"_id"`
	Status          string         `json:"status" bson:"status"`
	Email           string         `json:"email" bson:"email"`
	PhoneNumber     string         `json:"phone_number" bson:"phone_number"`
	OrderedProducts map[string]int `json:"ordered_products" bson:"ordered_products"`
	ApprovalDate    string         `json:"approval_date" bson:"approval_date"`
}

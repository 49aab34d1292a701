package product

// Product представляет товар каталога.
type Product struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Weight      float64 `json:"weight" bson:"weight"`
	Category    string  `json:"category" bson:"category"`
}

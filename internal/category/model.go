package category

// Category — справочная запись категории товара.
type Category struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// DefaultCategories сидируются в коллекцию при старте сервиса.
var DefaultCategories = []string{"electronics", "clothes", "books", "food", "other"}

package models

// Category classifies a menu item
type Category string

const (
	CategoryAppetizer  Category = "APPETIZER"
	CategoryMainCourse Category = "MAIN_COURSE"
	CategoryDessert    Category = "DESSERT"
	CategoryBeverage   Category = "BEVERAGE"
	CategorySide       Category = "SIDE"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryAppetizer,
	CategoryMainCourse,
	CategoryDessert,
	CategoryBeverage,
	CategorySide,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Status is the availability of a menu item
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusUnavailable Status = "UNAVAILABLE"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusUnavailable
}

type MenuItem struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Name         string     `json:"name" gorm:"not null"`
	Price        float64    `json:"price" gorm:"not null"`
	Category     Category   `json:"category" gorm:"not null"`
	Status       Status     `json:"status" gorm:"not null;default:'AVAILABLE'"`
	Deleted      bool       `json:"-" gorm:"not null;default:false"`
}

// MenuItemResponse is the transport shape for a menu item. The owning
// restaurant's id and name are resolved by the service layer.
type MenuItemResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	Category       Category `json:"category"`
	Status         Status   `json:"status"`
	RestaurantID   uint     `json:"restaurantId"`
	RestaurantName string   `json:"restaurantName"`
}

func (m *MenuItem) ToResponse() MenuItemResponse {
	return MenuItemResponse{
		ID:             m.ID,
		Name:           m.Name,
		Price:          m.Price,
		Category:       m.Category,
		Status:         m.Status,
		RestaurantID:   m.RestaurantID,
		RestaurantName: m.Restaurant.Name,
	}
}

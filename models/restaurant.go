package models

// Restaurant is the owning side of the menu. Name is unique across the
// whole table; IsOpen gates menu-item creation only.
type Restaurant struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Location string `json:"location"`
	IsOpen   bool   `json:"is_open" gorm:"not null;default:true"`
}

// RestaurantResponse is the transport shape for a restaurant.
type RestaurantResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	IsOpen   bool   `json:"isOpen"`
}

func (r *Restaurant) ToResponse() RestaurantResponse {
	return RestaurantResponse{
		ID:       r.ID,
		Name:     r.Name,
		Location: r.Location,
		IsOpen:   r.IsOpen,
	}
}

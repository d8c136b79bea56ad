package models

// Restaurant is one tenant of the platform. Its ID is the URL slug and never
// changes once created; all tenant data lives under paths derived from it.
type Restaurant struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Whatsapp     string   `json:"whatsapp"`
	Email        string   `json:"email"`
	OpeningHours string   `json:"openingHours"`
	IsOpen       bool     `json:"isOpen"`
	Cuisine      []string `json:"cuisine"`
	Rating       float64  `json:"rating,omitempty"`
	Description  string   `json:"description,omitempty"`
	Logo         string   `json:"logo,omitempty"`
	CoverImage   string   `json:"coverImage,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// RestaurantSettings is the singleton settings document of one tenant.
// It lives at a fixed document id and is only ever merge-patched after
// first provisioning.
type RestaurantSettings struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Whatsapp     string   `json:"whatsapp"`
	OpeningHours string   `json:"openingHours"`
	IsOpen       bool     `json:"isOpen"`
	Cuisine      []string `json:"cuisine"`
	Rating       float64  `json:"rating,omitempty"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"` // references a Category id, not enforced
	IsVeg       bool    `json:"isVeg"`
	IsAvailable bool    `json:"isAvailable"`
	Image       string  `json:"image,omitempty"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

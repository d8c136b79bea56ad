package models

// Built-in catalog written the first time a tenant comes up with no data of
// its own. Category entries reference the seeded category ids below.
var DefaultCategories = []Category{
	{Name: "Starters", Order: 1},
	{Name: "Main Course", Order: 2},
	{Name: "Beverages", Order: 3},
	{Name: "Desserts", Order: 4},
}

var DefaultMenuItems = []MenuItem{
	{Name: "Paneer Tikka", Description: "Grilled cottage cheese with aromatic spices", Price: 250, Category: "1", IsVeg: true, IsAvailable: true},
	{Name: "Chicken Wings", Description: "Crispy fried wings with hot sauce", Price: 300, Category: "1", IsVeg: false, IsAvailable: true},
	{Name: "Butter Chicken", Description: "Tender chicken in rich tomato gravy", Price: 350, Category: "2", IsVeg: false, IsAvailable: true},
	{Name: "Dal Makhani", Description: "Creamy black lentils slow-cooked overnight", Price: 200, Category: "2", IsVeg: true, IsAvailable: true},
	{Name: "Fresh Lime Soda", Description: "Refreshing lime with soda", Price: 80, Category: "3", IsVeg: true, IsAvailable: true},
	{Name: "Gulab Jamun", Description: "Soft milk dumplings in sugar syrup", Price: 120, Category: "4", IsVeg: true, IsAvailable: true},
}

var DefaultSettings = RestaurantSettings{
	Name:         "Demo Restaurant",
	Address:      "123 Food Street, Gourmet City",
	Phone:        "+91 9876543210",
	Whatsapp:     "+91 9876543210",
	OpeningHours: "11:00 AM - 11:00 PM",
	IsOpen:       true,
	Cuisine:      []string{"Indian", "Chinese", "Continental"},
	Rating:       4.5,
}

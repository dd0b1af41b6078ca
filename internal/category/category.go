// Package category names the product categories that carry dedicated rule tables.
package category

const (
	Electronics  = "Electronics"
	FoodBeverage = "Food & Beverage"
	Clothing     = "Clothing"
	HealthBeauty = "Health & Beauty"
)

// Known lists the categories with dedicated tables, in display order.
var Known = []string{Electronics, FoodBeverage, Clothing, HealthBeauty}

// IsKnown reports whether name matches a category exactly.
func IsKnown(name string) bool {
	for _, k := range Known {
		if k == name {
			return true
		}
	}
	return false
}

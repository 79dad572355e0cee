package entity

import "fmt"

// Category is one of the ten fixed classification labels attached to every article.
type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategoryHealth        Category = "Health"
	CategorySports        Category = "Sports"
	CategoryBusiness      Category = "Business"
	CategoryEntertainment Category = "Entertainment"
	CategoryScience       Category = "Science"
	CategoryWorld         Category = "World"
	CategoryPolitics      Category = "Politics"
	CategoryTravel        Category = "Travel"
	CategoryLifestyle     Category = "Lifestyle"
)

// CategoryInfo pairs a category with the icon name clients render next to it.
type CategoryInfo struct {
	Name Category
	Icon string
}

// categoryTable is ordered; Categories returns entries in this order.
var categoryTable = []CategoryInfo{
	{Name: CategoryTechnology, Icon: "computer"},
	{Name: CategoryHealth, Icon: "health_and_safety"},
	{Name: CategorySports, Icon: "sports_soccer"},
	{Name: CategoryBusiness, Icon: "business"},
	{Name: CategoryEntertainment, Icon: "movie"},
	{Name: CategoryScience, Icon: "science"},
	{Name: CategoryWorld, Icon: "public"},
	{Name: CategoryPolitics, Icon: "gavel"},
	{Name: CategoryTravel, Icon: "flight"},
	{Name: CategoryLifestyle, Icon: "style"},
}

// Categories returns a copy of the fixed category table.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// CategoryNames returns the category values in table order.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryTable))
	for _, c := range categoryTable {
		names = append(names, string(c.Name))
	}
	return names
}

// Valid reports whether c is a member of the fixed set. Matching is exact.
func (c Category) Valid() bool {
	for _, info := range categoryTable {
		if info.Name == c {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts s into a Category.
// Returns a ValidationError if s is not one of the fixed values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("`%s` is not a valid category", s),
		}
	}
	return c, nil
}

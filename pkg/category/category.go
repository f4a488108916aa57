package category

import "strings"

type Category struct {
	ID   int
	Name string
}

const maxNameLength = 100

// Form is the typed input for creating or updating a category.
type Form struct {
	Name string
}

func (f Form) Validate() map[string]string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return map[string]string{"name": "Name is required"}
	}
	if len(name) > maxNameLength {
		return map[string]string{"name": "Name must be at most 100 characters"}
	}
	return nil
}

func (f Form) Category() Category {
	return Category{Name: strings.TrimSpace(f.Name)}
}

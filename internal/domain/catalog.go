package domain

// Catalog is a deduplicated registry of ingredient names that remembers the
// order in which each name was first seen. It is derived from a recipe
// collection and is never the source of truth.
type Catalog struct {
	names []string
	seen  map[string]struct{}
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{seen: make(map[string]struct{})}
}

// BuildCatalog folds the ingredients of every recipe into a new catalog,
// in recipe order.
func BuildCatalog(recipes []Recipe) *Catalog {
	c := NewCatalog()
	for _, r := range recipes {
		c.RegisterAll(r.Ingredients...)
	}
	return c
}

// Register adds an ingredient if it is not already present. Matching is
// exact and case-sensitive.
func (c *Catalog) Register(ingredient string) {
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	if _, ok := c.seen[ingredient]; ok {
		return
	}
	c.seen[ingredient] = struct{}{}
	c.names = append(c.names, ingredient)
}

// RegisterAll registers each ingredient in order.
func (c *Catalog) RegisterAll(ingredients ...string) {
	for _, ing := range ingredients {
		c.Register(ing)
	}
}

// Contains reports whether the ingredient has been registered.
func (c *Catalog) Contains(ingredient string) bool {
	_, ok := c.seen[ingredient]
	return ok
}

// Enumerate returns a copy of the catalog in first-seen order.
func (c *Catalog) Enumerate() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of distinct ingredients.
func (c *Catalog) Len() int {
	return len(c.names)
}

// At returns the ingredient shown at a 1-based menu position.
func (c *Catalog) At(position int) (string, bool) {
	if position < 1 || position > len(c.names) {
		return "", false
	}
	return c.names[position-1], true
}

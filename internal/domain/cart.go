package domain

// ItemSummary is the slice of a product that survives onto a cart line.
type ItemSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Cart holds the visitor's prospective order. Lines keep insertion
// order, which is also display order; line ids are unique. Open is the
// transient drawer flag and is never persisted.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Open  bool       `json:"-"`
}

// AddItem appends a new line with quantity 1, or bumps the quantity of
// an existing line with the same id. Every add opens the drawer so the
// visitor gets a visible confirmation.
func (c *Cart) AddItem(item ItemSummary) {
	c.Open = true
	for i := range c.Lines {
		if c.Lines[i].ID == item.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	})
}

// RemoveItem drops the line with the given id. Absent ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line; a line is never stored with quantity below 1.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. The drawer flag is left as-is.
func (c *Cart) Clear() {
	c.Lines = nil
}

// SetOpen toggles the drawer flag without touching line data.
func (c *Cart) SetOpen(open bool) {
	c.Open = open
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

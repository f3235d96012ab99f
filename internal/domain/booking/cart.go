package booking

// Cart is the booking flow's selection model: whole-service quantities with
// per-option quantities, no base/option toggle. The booking and estimate
// flows intentionally model selection differently and are kept separate.
type CartLine struct {
	ServiceID string
	Quantity  int
	Options   map[int]int // option index -> quantity
}

type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) find(serviceID string) int {
	for i := range c.lines {
		if c.lines[i].ServiceID == serviceID {
			return i
		}
	}
	return -1
}

// Add increments the service quantity, creating the line at quantity 1.
func (c *Cart) Add(serviceID string) {
	if idx := c.find(serviceID); idx >= 0 {
		c.lines[idx].Quantity++
		return
	}
	c.lines = append(c.lines, CartLine{ServiceID: serviceID, Quantity: 1, Options: map[int]int{}})
}

// Remove decrements the service quantity, dropping the line at zero.
func (c *Cart) Remove(serviceID string) {
	idx := c.find(serviceID)
	if idx == -1 {
		return
	}
	if c.lines[idx].Quantity > 1 {
		c.lines[idx].Quantity--
		return
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}

// SetOption sets an option quantity on an existing line; negative clamps to 0.
func (c *Cart) SetOption(serviceID string, optionIndex, quantity int) {
	idx := c.find(serviceID)
	if idx == -1 {
		return
	}
	if quantity < 0 {
		quantity = 0
	}
	if c.lines[idx].Options == nil {
		c.lines[idx].Options = map[int]int{}
	}
	c.lines[idx].Options[optionIndex] = quantity
}

func (c *Cart) Quantity(serviceID string) int {
	idx := c.find(serviceID)
	if idx == -1 {
		return 0
	}
	return c.lines[idx].Quantity
}

package booking

// Selection is the estimate flow's in-progress service selection. The base
// service and its options toggle independently, with one invariant enforced
// here rather than scattered through handlers: picking any option on a
// service that is not yet in the selection pulls the base service in with it.
type OptionPick struct {
	OptionIndex int
	Quantity    int
}

type SelectedService struct {
	ServiceID    string
	BaseSelected bool
	Options      []OptionPick
}

type Selection struct {
	items []SelectedService
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Items() []SelectedService {
	out := make([]SelectedService, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Selection) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Selection) find(serviceID string) int {
	for i := range s.items {
		if s.items[i].ServiceID == serviceID {
			return i
		}
	}
	return -1
}

// ToggleBase adds the service with its base selected, or removes the whole
// entry (options included) when already present.
func (s *Selection) ToggleBase(serviceID string) {
	idx := s.find(serviceID)
	if idx == -1 {
		s.items = append(s.items, SelectedService{ServiceID: serviceID, BaseSelected: true})
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
}

// ToggleOption adds or removes one option. Adding an option always leaves the
// base selected.
func (s *Selection) ToggleOption(serviceID string, optionIndex int) {
	idx := s.find(serviceID)
	if idx == -1 {
		s.items = append(s.items, SelectedService{
			ServiceID:    serviceID,
			BaseSelected: true,
			Options:      []OptionPick{{OptionIndex: optionIndex, Quantity: 1}},
		})
		return
	}

	item := &s.items[idx]
	for i, opt := range item.Options {
		if opt.OptionIndex == optionIndex {
			item.Options = append(item.Options[:i], item.Options[i+1:]...)
			return
		}
	}
	item.BaseSelected = true
	item.Options = append(item.Options, OptionPick{OptionIndex: optionIndex, Quantity: 1})
}

// SetOptionQuantity updates an option's quantity; zero or negative removes it.
func (s *Selection) SetOptionQuantity(serviceID string, optionIndex, quantity int) {
	if quantity <= 0 {
		idx := s.find(serviceID)
		if idx == -1 {
			return
		}
		item := &s.items[idx]
		for i, opt := range item.Options {
			if opt.OptionIndex == optionIndex {
				item.Options = append(item.Options[:i], item.Options[i+1:]...)
				return
			}
		}
		return
	}

	idx := s.find(serviceID)
	if idx == -1 {
		return
	}
	item := &s.items[idx]
	for i := range item.Options {
		if item.Options[i].OptionIndex == optionIndex {
			item.Options[i].Quantity = quantity
			return
		}
	}
}

func (s *Selection) IsBaseSelected(serviceID string) bool {
	idx := s.find(serviceID)
	return idx != -1 && s.items[idx].BaseSelected
}

func (s *Selection) OptionQuantity(serviceID string, optionIndex int) int {
	idx := s.find(serviceID)
	if idx == -1 {
		return 0
	}
	for _, opt := range s.items[idx].Options {
		if opt.OptionIndex == optionIndex {
			return opt.Quantity
		}
	}
	return 0
}

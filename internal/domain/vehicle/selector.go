package vehicle

// Selector is the small fixed enumeration the booking form exposes. Each
// value maps to a concrete (category, label, size) filter over the fleet.
type Selector string

const (
	SelectorScooter Selector = "scooter"
	SelectorNavi    Selector = "navi"
	SelectorEbikeL  Selector = "ebike-l"
	SelectorEbikeS  Selector = "ebike-s"
)

// Filter narrows the fleet to the units a selector refers to.
type Filter struct {
	Category string
	Label    string
	Size     string
}

var selectorFilters = map[Selector]Filter{
	SelectorScooter: {Category: "MOTOS", Label: "Scooter", Size: "150cc"},
	SelectorNavi:    {Category: "MOTOS", Label: "Honda Navi", Size: "100cc"},
	SelectorEbikeL:  {Category: "EBIKES", Label: "Ebike Grande", Size: `26"`},
	SelectorEbikeS:  {Category: "EBIKES", Label: "Ebike Pequeña", Size: `20"`},
}

// ResolveFilter maps a selector to its fleet filter. Unrecognized selectors
// resolve to the zero filter and match nothing.
func (s Selector) ResolveFilter() (Filter, bool) {
	f, ok := selectorFilters[s]
	return f, ok
}

// Selectors returns the known selector values in a stable order.
func Selectors() []Selector {
	return []Selector{SelectorScooter, SelectorNavi, SelectorEbikeL, SelectorEbikeS}
}

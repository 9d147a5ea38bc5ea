package element

// Copy-on-write list operations. Every mutation returns a new slice so
// that callers holding the previous snapshot never observe a
// half-applied change.

// Append returns a new list with el appended.
func Append(list []Element, el Element) []Element {
	out := make([]Element, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, el)
	return out
}

// Remove returns a new list without the element carrying id. Unknown
// ids leave the contents unchanged.
func Remove(list []Element, id string) []Element {
	out := make([]Element, 0, len(list))
	for _, el := range list {
		if el.ID != id {
			out = append(out, el)
		}
	}
	return out
}

// Replace returns a new list where the element with el.ID is swapped
// for el. Unknown ids leave the contents unchanged.
func Replace(list []Element, el Element) []Element {
	out := make([]Element, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == el.ID {
			out[i] = el
		}
	}
	return out
}

// Find returns the element carrying id.
func Find(list []Element, id string) (Element, bool) {
	for _, el := range list {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

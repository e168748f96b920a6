package paginate

// Flatten concatenates the children of every root, keeping root order then array order.
func Flatten[P, C any](roots []P, children func(P) []C) []C {
	var out []C
	for _, root := range roots {
		out = append(out, children(root)...)
	}
	return out
}

// Slice returns the items of page. A page past the end is empty.
func Slice[T any](items []T, page Page) []T {
	skip := page.Skip()
	if skip >= int64(len(items)) {
		return []T{}
	}
	end := skip + int64(page.Limit)
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return append([]T(nil), items[skip:end]...)
}

// Filter keeps the items matching keep. A nil keep matches everything.
func Filter[T any](items []T, keep func(T) bool) []T {
	if keep == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// InMemory is the in-process strategy. Children returns the items of one
// root, already carrying any parent fields the listing exposes.
type InMemory[P, C any] struct {
	MatchRoot  func(P) bool
	Children   func(P) []C
	MatchChild func(C) bool
}

// Paginate runs the in-process strategy over roots loaded in _id order.
func (m InMemory[P, C]) Paginate(roots []P, page Page) Result[C] {
	flat := Filter(Flatten(Filter(roots, m.MatchRoot), m.Children), m.MatchChild)
	return NewResult(Slice(flat, page), page, int64(len(flat)))
}

package xmldoc

// List is a statically typed view over a Collection whose members are all
// of type T. Appends still go through the collection's category check.
type List[T Node] struct {
	c *Collection
}

// ListOf wraps c. Members of c that are not a T read as the zero T.
func ListOf[T Node](c *Collection) *List[T] {
	return &List[T]{c: c}
}

// NewList returns a list over a new collection of category cat.
func NewList[T Node](cat Category) *List[T] {
	return ListOf[T](NewCollection(cat))
}

func (l *List[T]) Append(v T) error { return l.c.Append(v) }
func (l *List[T]) Len() int         { return l.c.Len() }

// Collection returns the underlying collection.
func (l *List[T]) Collection() *Collection { return l.c }

// At returns the i-th member.
func (l *List[T]) At(i int) T {
	v, _ := l.c.At(i).(T)
	return v
}

// All returns every member that is a T, in order.
func (l *List[T]) All() []T {
	out := make([]T, 0, l.c.Len())
	for _, n := range l.c.members {
		if v, ok := n.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

package types

// OptionalType wraps a value that may be absent. Bubbles marks an
// error-propagating optional (the `?` suffix form used with the `pass`
// protocol at call boundaries).
type OptionalType struct {
	Inner   Type
	Bubbles bool
}

func (o *OptionalType) Kind() Kind { return KindOptional }

func (o *OptionalType) String() string {
	prefix := "?"
	if o.Bubbles {
		prefix = "!"
	}
	return prefix + o.Inner.String()
}

func (o *OptionalType) Equals(other Type) bool {
	p, ok := other.(*OptionalType)
	return ok && o.Bubbles == p.Bubbles && o.Inner.Equals(p.Inner)
}

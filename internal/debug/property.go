package debug

// PropertyAttr is a bit set describing a property descriptor.
type PropertyAttr uint32

const (
	// PropAttrExpandable marks a property with children (struct, slice, map).
	PropAttrExpandable PropertyAttr = 1 << iota
	// PropAttrReadOnly marks a property whose value cannot be changed.
	PropAttrReadOnly
	// PropAttrError marks a property whose value could not be evaluated.
	PropAttrError
)

// PropAttrNone marks a plain value property.
const PropAttrNone PropertyAttr = 0

// PropertyInfo describes one inspectable property of a stopped frame:
// a local, an argument, or a watch result.
type PropertyInfo struct {
	// Name is the short display name of the property.
	Name string

	// FullName is the evaluatable full expression for the property.
	FullName string

	// Type is the declared type of the property.
	Type string

	// Value is the rendered value at snapshot time.
	Value string

	// Attr describes the property (expandable, read-only, error).
	Attr PropertyAttr

	// ChildRef is a reference usable to enumerate child properties,
	// zero when the property has none.
	ChildRef int
}

// Expandable returns true if the property has child properties.
func (p PropertyInfo) Expandable() bool {
	return p.Attr&PropAttrExpandable != 0
}

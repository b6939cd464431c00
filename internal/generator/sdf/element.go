package sdf

import "strings"

// ============================================================
// Element Tree
// ============================================================

// Attr is a single element attribute. Attributes keep insertion order.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of a simulation description document. Each element
// owns its children; nodes are never shared between parents.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement создает элемент без родителя.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// SubElement создает дочерний элемент и добавляет его в конец.
func (e *Element) SubElement(tag string) *Element {
	child := NewElement(tag)
	e.Children = append(e.Children, child)
	return child
}

// Append adds an already built fragment as the last child.
func (e *Element) Append(child *Element) {
	if child == nil {
		return
	}
	e.Children = append(e.Children, child)
}

// Set assigns an attribute, replacing an existing one with the same name.
func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetText sets the text content and returns the element for chaining.
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ============================================================
// Lookup
// ============================================================

// Find returns the first element matching a slash separated path of tags
// relative to e, e.g. "link/visual/geometry/box/size".
func (e *Element) Find(path string) *Element {
	cur := e
	for _, tag := range strings.Split(strings.Trim(path, "/"), "/") {
		var next *Element
		for _, child := range cur.Children {
			if child.Tag == tag {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// FindText is Find followed by reading Text; missing paths yield "".
func (e *Element) FindText(path string) string {
	if found := e.Find(path); found != nil {
		return found.Text
	}
	return ""
}

// FindAll returns the direct children with the given tag.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	for _, child := range e.Children {
		if child.Tag == tag {
			out = append(out, child)
		}
	}
	return out
}

// FindNamed returns the direct child with the given tag and name attribute.
func (e *Element) FindNamed(tag, name string) *Element {
	for _, child := range e.Children {
		if child.Tag != tag {
			continue
		}
		if v, ok := child.Get("name"); ok && v == name {
			return child
		}
	}
	return nil
}

// Walk visits e and all descendants depth first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

package domain

import (
	"errors"
	"fmt"
)

// IndexPath is the content-path sentinel for repeating mappings: instead of
// resolving a data path, it renders index+1 for numbered-list ordinals.
const IndexPath = "__INDEX__"

// ValueRef is either a dot-separated gjson path into block (or item) data,
// or an explicit literal. Literals are a sentinel, not a path form: they are
// injected as-is without resolution.
type ValueRef struct {
	Path    string
	Literal *string
}

// PathRef builds a ValueRef resolved against data at render time. A path
// that resolves to nothing silently skips the update it drives.
func PathRef(path string) ValueRef {
	return ValueRef{Path: path}
}

// LiteralRef builds a fixed-value ValueRef.
func LiteralRef(value string) ValueRef {
	return ValueRef{Literal: &value}
}

func (v ValueRef) IsLiteral() bool {
	return v.Literal != nil
}

// AttributeMapping binds one element attribute to a value source.
type AttributeMapping struct {
	Attribute string
	Value     ValueRef
}

// ItemMapping is the per-item template of a repeating mapping.
type ItemMapping struct {
	Attributes []AttributeMapping
	Content    *ValueRef
}

// ElementMapping is one declarative rule binding a template selector to
// block data. Single mappings (Repeat=false) use Attributes/Content against
// the block payload; repeating mappings (Repeat=true) project the array at
// ArrayPath onto the pre-existing template instances of Selector, applying
// Item per element.
type ElementMapping struct {
	Selector   string
	Repeat     bool
	Attributes []AttributeMapping
	Content    *ValueRef
	ArrayPath  string
	Item       *ItemMapping
}

func (m ElementMapping) Validate() error {
	if m.Selector == "" {
		return errors.New("invalid mapping: selector is required")
	}
	if m.Repeat {
		if m.ArrayPath == "" {
			return fmt.Errorf("invalid mapping %q: repeat requires arrayPath", m.Selector)
		}
		if m.Item == nil {
			return fmt.Errorf("invalid mapping %q: repeat requires an item mapping", m.Selector)
		}
		return nil
	}
	if len(m.Attributes) == 0 && m.Content == nil {
		return fmt.Errorf("invalid mapping %q: at least one attribute or content update is required", m.Selector)
	}
	return nil
}

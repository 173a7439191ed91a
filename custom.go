package gedcom

// UserDefinedTag holds an application-defined tag and its subtree
// verbatim. Custom tags begin with an underscore and have meaning only
// to the system that wrote them, so the parser preserves them at any
// depth without interpretation. The tree is write-once: a node stops
// growing as soon as a line at or below its level appears.
type UserDefinedTag struct {
	Tag      string            `json:"tag"`
	Value    string            `json:"value,omitempty"`
	Children []*UserDefinedTag `json:"children,omitempty"`
}

// newUserDefinedTag captures the subtree of the custom tag the
// tokenizer is positioned on. The level is the tag's own nesting
// level: children sit above it, and a line at or below it closes the
// node.
func newUserDefinedTag(t *Tokenizer, level uint8, tag string) (*UserDefinedTag, error) {
	node := &UserDefinedTag{Tag: tag}
	if err := node.parse(t, level); err != nil {
		return nil, err
	}
	return node, nil
}

func (u *UserDefinedTag) parse(t *Tokenizer, level uint8) error {
	// step past the tag itself
	if err := t.Next(); err != nil {
		return err
	}

	hasChild := false
	for {
		if t.Current.Kind == TokenLevel {
			if t.Current.Level <= level {
				break
			}
			hasChild = true
		}

		switch t.Current.Kind {
		case TokenTag, TokenCustomTag:
			if hasChild {
				child, err := newUserDefinedTag(t, level+1, t.Current.Text)
				if err != nil {
					return err
				}
				u.Children = append(u.Children, child)
			}
		case TokenLineValue:
			u.Value = t.Current.Text
			if err := t.Next(); err != nil {
				return err
			}
		case TokenLevel:
			if err := t.Next(); err != nil {
				return err
			}
		case TokenEOF:
			return nil
		default:
			return invalidToken(t.Line, t.Current.String())
		}
	}
	return nil
}

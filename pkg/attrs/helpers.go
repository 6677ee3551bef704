package attrs

// attr creates an Attr with the given name and value.
func attr(name string, value any) Attr {
	return Attr{Name: name, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class adds one or more classes.
func Class(classes ...string) Attr { return attr("class", classes) }

// Rel adds one or more link relations.
func Rel(rel ...string) Attr { return attr("rel", rel) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaLabelledBy adds ids to the aria-labelledby list.
func AriaLabelledBy(ids ...string) Attr { return attr("aria-labelledby", ids) }

// AriaDescribedBy adds ids to the aria-describedby list.
func AriaDescribedBy(ids ...string) Attr { return attr("aria-describedby", ids) }

// AriaHidden sets aria-hidden to "true" or "false".
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", Scalar(boolString(hidden))) }

// AriaExpanded sets aria-expanded to "true" or "false".
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", Scalar(boolString(expanded))) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Boolean attributes

// Disabled marks the element disabled.
func Disabled() Attr { return attr("disabled", nil) }

// Hidden marks the element hidden.
func Hidden() Attr { return attr("hidden", nil) }

// Required marks a form control as required.
func Required() Attr { return attr("required", nil) }

// Toggle adds the boolean attribute name when on is true and removes it
// otherwise.
func Toggle(name string, on bool) Attr {
	if on {
		return attr(name, nil)
	}
	return attr(name, false)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

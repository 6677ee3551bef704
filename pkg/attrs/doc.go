// Package attrs accumulates HTML attributes per element alias and renders
// them as escaped attribute strings.
//
// Template code often builds up the attributes of one tag from several
// places: a base component sets an id, a wrapper adds classes, a feature
// flag adds data-* attributes. A Store collects those writes under a
// caller-chosen alias ("wrapper", "inner") and flattens them at the end.
//
// # Basic Usage
//
//	s := attrs.New()
//	s.Add("wrapper", "id", "main").
//	    Add("wrapper", "class", []string{"card", "card--wide"}).
//	    Add("wrapper", "role", "region").
//	    Add("wrapper", "aria-label", "Latest news")
//	s.Add("inner", "class", "card__body").
//	    Add("inner", "data-custom", "42")
//
//	s.Render("wrapper")
//	// id="main" class="card card--wide" role="region" aria-label="Latest news"
//	s.Render("inner")
//	// class="card__body" data-custom="42"
//
// # Merge Rules
//
// Add merges; Set replaces. How a merge behaves depends on the name:
//
//   - id keeps only the most recent value.
//   - class, rel, aria-labelledby and aria-describedby collect values into
//     a list without duplicates, in first-seen order.
//   - Every other attribute keeps the most recent value.
//
// Calling Add or Set with no value (or nil, "", an empty slice) produces a
// boolean attribute rendered as a bare name, e.g. disabled. Passing false
// removes the attribute.
//
// # Names and Escaping
//
// Attribute names are reduced to the characters [A-Za-z0-9:._-]; a name
// with nothing left is ignored. Values are escaped for & " ' < and >.
// No method returns an error or panics on caller input: unusable input is
// dropped and logged at Debug level.
//
// # Isolation
//
// There is no package-level Store. Create one per render or request with
// New; a Store is not safe for concurrent use.
package attrs

// Package errors provides structured, coded errors for vango-attrs.
//
// The attribute engine itself never returns errors for caller input: bad
// names are sanitised, empty values become boolean attributes, and unknown
// elements read as empty. Errors from this package surface in two places:
//   - Invariant failures inside the engine (a value kind that cannot exist),
//     raised as a panic carrying an *AttrsError.
//   - The vango-attrs CLI, which reports malformed operation arguments.
//
// # Error Codes
//
// Each error has a code (e.g., "A001") that maps to a category, a short
// message and a longer explanation:
//
//	err := errors.New("A101").
//	    WithDetail(`expected "alias:name=value", got "wrapper"`).
//	    WithSuggestion("Separate the element alias and attribute name with a colon")
//
//	fmt.Print(err.Format(false))
//	// Output:
//	// ERROR A101: Malformed attribute operation
//	//
//	//   expected "alias:name=value", got "wrapper"
//	//
//	//   Hint: Separate the element alias and attribute name with a colon
package errors

package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Invariant Errors (A001-A099)
	// ============================================

	"A001": {
		Category: CategoryInvariant,
		Message:  "Unknown attribute value kind",
		Detail:   "An attribute map holds a value that is neither boolean, scalar nor list. Values must be built with attrs.Bool, attrs.Scalar or attrs.List.",
	},

	// ============================================
	// CLI Errors (A100-A199)
	// ============================================

	"A101": {
		Category: CategoryCLI,
		Message:  "Malformed attribute operation",
	},
	"A102": {
		Category: CategoryCLI,
		Message:  "Element not found",
		Detail:   "No attributes were recorded for the requested element alias.",
	},
	"A103": {
		Category: CategoryCLI,
		Message:  "Invalid command line",
	},
}

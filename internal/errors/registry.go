package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryRuntime,
		Message:  "Functions are not valid as child nodes",
		Detail:   "A function value was found where content was expected. It was replaced by a placeholder comment. Did you mean to call it instead?",
	},
	"E102": {
		Category: CategoryRuntime,
		Message:  "Mutation observers did not settle",
		Detail:   "Observer callbacks kept producing new mutations. A reactive property is probably being rewritten with a value that never compares equal.",
	},
	"E103": {
		Category: CategoryRuntime,
		Message:  "Mount target not found",
		Detail:   "The element selected as mount target does not exist in the host page.",
	},

	// ============================================
	// Manifest (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryManifest,
		Message:  "Invalid manifest",
		Detail:   "The manifest could not be decoded as YAML.",
	},
	"E121": {
		Category: CategoryManifest,
		Message:  "Unknown node form",
		Detail:   "A mapping node must contain exactly one of element, store or component.",
	},
	"E122": {
		Category: CategoryManifest,
		Message:  "Unknown store",
		Detail:   "The node refers to a store that is not declared under stores.",
	},
	"E123": {
		Category: CategoryManifest,
		Message:  "Unknown component",
		Detail:   "The node refers to a component that was not registered with the loader.",
	},

	// ============================================
	// Config (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration could not be loaded or decoded.",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "Log level must be one of debug, info, warn or error.",
	},

	// ============================================
	// CLI (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Invalid store assignment",
		Detail:   "Store assignments must have the form name=value.",
	},
	"E161": {
		Category: CategoryCLI,
		Message:  "Publish failed",
		Detail:   "The rendered page could not be written to its destination.",
	},
	"E162": {
		Category: CategoryCLI,
		Message:  "Unknown template",
		Detail:   "The requested project template does not exist.",
	},
	"E163": {
		Category: CategoryCLI,
		Message:  "File already exists",
		Detail:   "Project scaffolding does not overwrite existing files.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

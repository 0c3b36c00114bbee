package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config errors (F100-F199)

	"F100": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No facet.json was found in the working directory or any parent.",
		DocURL:   "https://facet-ui.dev/docs/errors/F100",
	},
	"F101": {
		Category: CategoryConfig,
		Message:  "Config file is not valid JSON",
		Detail:   "facet.json could not be parsed. Check for trailing commas or unquoted keys.",
		DocURL:   "https://facet-ui.dev/docs/errors/F101",
	},
	"F102": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The preview port must be between 1 and 65535.",
		DocURL:   "https://facet-ui.dev/docs/errors/F102",
	},
	"F103": {
		Category: CategoryConfig,
		Message:  "Invalid theme scheme",
		Detail:   `The default theme scheme must be "light", "dark" or "auto".`,
		DocURL:   "https://facet-ui.dev/docs/errors/F103",
	},
	"F104": {
		Category: CategoryConfig,
		Message:  "Invalid publish target",
		Detail:   `The publish target must be "disk" or "s3", with the matching fields filled in.`,
		DocURL:   "https://facet-ui.dev/docs/errors/F104",
	},

	// Theme errors (F200-F299)

	"F200": {
		Category: CategoryTheme,
		Message:  "Palette file could not be read",
		DocURL:   "https://facet-ui.dev/docs/errors/F200",
	},
	"F201": {
		Category: CategoryTheme,
		Message:  "Palette file is not valid YAML",
		Detail:   "The palettes file could not be parsed. Each entry needs a name and a map of CSS variables.",
		DocURL:   "https://facet-ui.dev/docs/errors/F201",
	},
	"F202": {
		Category: CategoryTheme,
		Message:  "Unknown palette",
		Detail:   "The requested palette name is not declared in the palettes file.",
		DocURL:   "https://facet-ui.dev/docs/errors/F202",
	},

	// Gallery errors (F300-F399)

	"F300": {
		Category: CategoryGallery,
		Message:  "Unknown component",
		Detail:   "The requested component name is not part of the gallery.",
		DocURL:   "https://facet-ui.dev/docs/errors/F300",
	},
	"F301": {
		Category: CategoryGallery,
		Message:  "Render failed",
		DocURL:   "https://facet-ui.dev/docs/errors/F301",
	},

	// Publish errors (F400-F499)

	"F400": {
		Category: CategoryPublish,
		Message:  "Publish target unavailable",
		Detail:   "The publish store could not be opened. Check the directory or bucket settings.",
		DocURL:   "https://facet-ui.dev/docs/errors/F400",
	},
	"F401": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		DocURL:   "https://facet-ui.dev/docs/errors/F401",
	},

	// CLI errors (F500-F599)

	"F500": {
		Category: CategoryCLI,
		Message:  "Unknown command",
		Detail:   "Run 'facet --help' to see the available commands.",
		DocURL:   "https://facet-ui.dev/docs/errors/F500",
	},
	"F501": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
		DocURL:   "https://facet-ui.dev/docs/errors/F501",
	},
}

// Register adds a custom error template. Existing codes are not
// overwritten.
func Register(code string, template ErrorTemplate) bool {
	if _, exists := registry[code]; exists {
		return false
	}
	registry[code] = template
	return true
}

// Lookup returns the template registered under the code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

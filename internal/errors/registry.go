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
	// ============================================
	// Config Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "No lumen.json found",
		Detail:   "The current directory does not contain a lumen.json configuration file.",
		DocURL:   "https://lumenui.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid lumen.json",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   "https://lumenui.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field is out of its allowed range.",
		DocURL:   "https://lumenui.dev/docs/errors/E103",
	},

	// ============================================
	// Server Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryServer,
		Message:  "WebSocket upgrade failed",
		Detail:   "The HTTP request could not be upgraded to a WebSocket connection.",
		DocURL:   "https://lumenui.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryServer,
		Message:  "Session limit reached",
		Detail:   "The server refused a new session because the session cache is full.",
		DocURL:   "https://lumenui.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategoryServer,
		Message:  "Server startup failed",
		Detail:   "The HTTP server could not bind its address.",
		DocURL:   "https://lumenui.dev/docs/errors/E203",
	},

	// ============================================
	// Runtime Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryRuntime,
		Message:  "Mount failed",
		Detail:   "The initial view could not be mounted on the surface.",
		DocURL:   "https://lumenui.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryRuntime,
		Message:  "Frame failed",
		Detail:   "A frame aborted because the surface rejected a mutation.",
		DocURL:   "https://lumenui.dev/docs/errors/E302",
	},

	// ============================================
	// Protocol Errors (E400-E499)
	// ============================================

	"E401": {
		Category: CategoryProtocol,
		Message:  "Malformed frame",
		Detail:   "A received frame did not decode against the wire format.",
		DocURL:   "https://lumenui.dev/docs/errors/E401",
	},
}

// Codes returns all registered error codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

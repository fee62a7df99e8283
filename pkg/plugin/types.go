package plugin

// FlagHelp represents help information for a single plugin flag.
type FlagHelp struct {
	Name        string `json:"name"`        // Flag name (e.g., "output-dir")
	Shorthand   string `json:"shorthand"`   // Short flag
	Type        string `json:"type"`        // Type (e.g., "string", "int", "bool")
	Default     string `json:"default"`     // Default value as string
	Description string `json:"description"` // Help text
	Required    bool   `json:"required"`    // Is this flag required?
}

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Type            string `json:"type"` // always "output"
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
	PluginProtocol  string `json:"plugin_protocol"` // "json-stdio" or "go-plugin"
}

// ThemeData is the theme sent to external exporters.
type ThemeData struct {
	Source      string            `json:"source"`
	Variant     string            `json:"variant"`
	SpecVersion string            `json:"spec_version"`
	Platform    string            `json:"platform"`
	Contrast    float64           `json:"contrast"`
	Light       *SchemeData       `json:"light,omitempty"`
	Dark        *SchemeData       `json:"dark,omitempty"`
	Palettes    []PaletteData     `json:"palettes"`
	Args        map[string]string `json:"args,omitempty"`
	DryRun      bool              `json:"dry_run"`
}

// SchemeData holds every role of one brightness.
type SchemeData struct {
	Dark     bool        `json:"dark"`
	Colors   []ColorData `json:"colors"`
	Terminal []ColorData `json:"terminal,omitempty"`
}

// Get returns the role called name.
func (s *SchemeData) Get(name string) (ColorData, bool) {
	for _, c := range s.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return ColorData{}, false
}

// ColorData is one resolved role.
type ColorData struct {
	Name   string  `json:"name"`
	Hex    string  `json:"hex"`
	Argb   uint32  `json:"argb"`
	Hue    float64 `json:"hue"`
	Chroma float64 `json:"chroma"`
	Tone   float64 `json:"tone"`
}

// PaletteData lists the standard tones of one palette.
type PaletteData struct {
	Name     string     `json:"name"`
	Hue      float64    `json:"hue"`
	Chroma   float64    `json:"chroma"`
	KeyColor string     `json:"key_color"`
	Tones    []ToneData `json:"tones"`
}

// ToneData is one palette entry.
type ToneData struct {
	Tone int    `json:"tone"`
	Hex  string `json:"hex"`
}

package tabs

// TabsConfig is the top-level structure of a tabs config file: a plain
// sequence of entries.
type TabsConfig []*TabProps

// TabProps is one entry as written in YAML. Pointers distinguish a missing
// key from an empty value.
type TabProps struct {
	Title    *string `yaml:"title,omitempty"`
	Category *string `yaml:"category,omitempty"`
}

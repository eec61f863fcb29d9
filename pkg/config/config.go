package config

// Settings is the fully resolved ilweld configuration.
type Settings struct {
	Tool     ToolSettings     `koanf:"tool" toml:"tool"`
	Packages PackagesSettings `koanf:"packages" toml:"packages"`
	Order    OrderSettings    `koanf:"order" toml:"order"`
	Merge    MergeSettings    `koanf:"merge" toml:"merge"`
}

// ToolSettings selects and locates the external merge tool.
type ToolSettings struct {
	// Name is the tool flavor, "ilmerge" or "ilrepack".
	Name string `koanf:"name" toml:"name"`
	// Path points directly at the executable; empty means probe.
	Path string `koanf:"path" toml:"path"`
	// Names are the executable names tried while probing, in order.
	Names []string `koanf:"names" toml:"names"`
}

// PackagesSettings configures the project/library split.
type PackagesSettings struct {
	Root string `koanf:"root" toml:"root"`
}

// OrderSettings configures the directive file and the order record.
type OrderSettings struct {
	File   string `koanf:"file" toml:"file"`
	Record bool   `koanf:"record" toml:"record"`
}

// MergeSettings carries the defaults for the tool's own switches.
// Flags override these per run.
type MergeSettings struct {
	Out                string   `koanf:"out" toml:"out"`
	Target             string   `koanf:"target" toml:"target"`
	KeyFile            string   `koanf:"keyfile" toml:"keyfile"`
	DelaySign          bool     `koanf:"delay_sign" toml:"delay_sign"`
	Internalize        bool     `koanf:"internalize" toml:"internalize"`
	InternalizeExclude string   `koanf:"internalize_exclude" toml:"internalize_exclude"`
	Union              bool     `koanf:"union" toml:"union"`
	CopyAttributes     bool     `koanf:"copy_attributes" toml:"copy_attributes"`
	AllowDup           bool     `koanf:"allow_dup" toml:"allow_dup"`
	DebugInfo          bool     `koanf:"debug_info" toml:"debug_info"`
	XMLDocs            bool     `koanf:"xmldocs" toml:"xmldocs"`
	Closed             bool     `koanf:"closed" toml:"closed"`
	Wildcards          bool     `koanf:"wildcards" toml:"wildcards"`
	Platform           string   `koanf:"platform" toml:"platform"`
	LogFile            string   `koanf:"log_file" toml:"log_file"`
	Version            string   `koanf:"version" toml:"version"`
	SearchDirs         []string `koanf:"search_dirs" toml:"search_dirs"`
	ExtraArgs          []string `koanf:"extra_args" toml:"extra_args"`
}

package cfg

type Cfg struct {
	// Input configuration
	InputPath string
	Encoding  string
	RulesFile string

	// Output configuration
	OutputPath string
	Format     string
	GoPackage  string
	SQLitePath string

	// Application metadata
	Debug   bool
	Version string
}

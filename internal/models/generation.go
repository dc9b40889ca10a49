package models

// OutputMode selects what a generated file contains
type OutputMode int

const (
	// OutputCompanion emits only the document types next to the untouched source
	OutputCompanion OutputMode = iota
	// OutputFull re-emits the stripped source file followed by the document types
	OutputFull
)

// String returns the name of the mode
func (m OutputMode) String() string {
	if m == OutputFull {
		return "full"
	}
	return "companion"
}

// GeneratedFile represents one generated Go file
type GeneratedFile struct {
	SourcePath string     // annotated source file
	FilePath   string     // where the generated file is written
	Mode       OutputMode // what the file contains
	Interfaces []string   // documented interfaces, in source order
	Content    []byte     // formatted Go source
}

// GenerationSummary holds statistics about one generator run
type GenerationSummary struct {
	FilesScanned      int
	InterfacesFound   int
	MethodsDocumented int
	GeneratedFiles    []string
}

package config

// Application constants
const (
	AppName = "ycsb-converter"

	// EnvPrefix namespaces every environment variable, e.g. YCSB_LOGGING_LEVEL
	EnvPrefix = "YCSB"

	DefaultLogFile = "logs/converter.log"

	// Evaluation sheet geometry
	DefaultSourceSheet     = "evaluation"
	DefaultTargetSheet     = "throughput"
	DefaultTargetIndex     = 1 // second sheet
	DefaultHeaderRow       = 1
	DefaultMetadataColumns = 16
	DefaultFirstDataRow    = 5
	DefaultBlockStride     = 6
	DefaultTrialRows       = 3
	DefaultRowLimit        = 720
)

var configFileLocations = []string{
	"converter.yaml",
	"configs/converter.yaml",
}

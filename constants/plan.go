package constants

// Filename conventions for the phase pair / integrated output files.
const (
	MetadataSuffix   = "_metadata.json"
	ElementsSuffix   = "_elements.json"
	IntegratedSuffix = "_integrated.json"
	SummaryFilename  = "merge_summary.json"
	ReportFilename   = "merge_report.xlsx"
)

// MetadataVersion tags every integrated record.
const MetadataVersion = "integrated_v1.0"

// Structural element types the training hints care about.
const (
	ElementEntrance = "entrance"
	ElementStair    = "stair"
	ElementBalcony  = "balcony"
	ElementUnknown  = "unknown"
)

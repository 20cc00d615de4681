package entity

// RunSummary is written once per invocation alongside the integrated records.
type RunSummary struct {
	RunID            string   `json:"run_id"`
	MergeTimestamp   string   `json:"merge_timestamp"`
	InputDirectory   string   `json:"input_directory"`
	OutputDirectory  string   `json:"output_directory"`
	TotalPairs       int      `json:"total_pairs"`
	SuccessfulMerges int      `json:"successful_merges"`
	MergedFiles      []string `json:"merged_files"`
}

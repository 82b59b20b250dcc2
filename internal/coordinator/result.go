package coordinator

import "github.com/dbsmedya/gosynth/internal/generator"

// AnalysisResult is the fixed-shape aggregate of all generator summaries.
// A field stays zero when no generator reports the metric behind it.
type AnalysisResult struct {
	DataSize     int `json:"data_size"`
	DictSize     int `json:"dict_size"`
	ListSize     int `json:"list_size"`
	UniqueValues int `json:"unique_values"`
	GroupedItems int `json:"grouped_items"`
	MaxGroupSize int `json:"max_group_size"`
}

// Project maps a merged summary onto an AnalysisResult. Unknown metrics are
// ignored and absent ones read as zero.
func Project(merged generator.Summary) AnalysisResult {
	return AnalysisResult{
		DataSize:     merged[generator.MetricTotalChars],
		DictSize:     merged[generator.MetricDictSize],
		ListSize:     merged[generator.MetricTupleCount],
		UniqueValues: merged[generator.MetricUniqueCount],
		GroupedItems: merged[generator.MetricGroupedItems],
		MaxGroupSize: merged[generator.MetricMaxGroupSize],
	}
}

// NamedSummary is one generator's contribution to an analysis run.
type NamedSummary struct {
	Name    string
	Kind    generator.Kind
	Summary generator.Summary
}

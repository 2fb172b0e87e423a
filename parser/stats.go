package parser

// DocumentStats holds size counters for a document.
type DocumentStats struct {
	PathCount      int `json:"path_count"`
	OperationCount int `json:"operation_count"`
	SchemaCount    int `json:"schema_count"`
	// SchemaKinds counts component schemas by shape, keyed by kind name.
	SchemaKinds map[string]int `json:"schema_kinds,omitempty"`
}

// GetDocumentStats counts the paths, operations and component schemas of doc.
func GetDocumentStats(doc *Document) DocumentStats {
	var stats DocumentStats
	if doc == nil {
		return stats
	}
	stats.PathCount = len(doc.Paths.Items)
	for _, item := range doc.Paths.Items {
		stats.OperationCount += len(item.Operations())
	}
	if doc.Components != nil {
		stats.SchemaCount = len(doc.Components.Schemas)
		for _, schema := range doc.Components.Schemas {
			if stats.SchemaKinds == nil {
				stats.SchemaKinds = make(map[string]int)
			}
			stats.SchemaKinds[schema.Kind().String()]++
		}
	}
	return stats
}

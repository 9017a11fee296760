package model

// Clause represents one contiguous span of document text treated as a single
// unit of analysis
type Clause struct {
	ID         int        `json:"id"`          // 1-based, assigned in segmentation order
	Text       string     `json:"text"`        // Trimmed clause text
	Type       ClauseType `json:"type"`        // Semantic classification
	StartIndex int        `json:"start_index"` // Character offset into the source document
	EndIndex   int        `json:"end_index"`   // Exclusive end offset
	Confidence float64    `json:"confidence"`  // Heuristic certainty in [0,1]
}

// ClauseType categorizes the semantic role of a clause
type ClauseType string

const (
	ClauseTypeDefinition      ClauseType = "definition"
	ClauseTypeObligation      ClauseType = "obligation"
	ClauseTypeProhibition     ClauseType = "prohibition"
	ClauseTypeCondition       ClauseType = "condition"
	ClauseTypeTermination     ClauseType = "termination"
	ClauseTypeLiability       ClauseType = "liability"
	ClauseTypePayment         ClauseType = "payment"
	ClauseTypeConfidentiality ClauseType = "confidentiality"
	ClauseTypeGeneral         ClauseType = "general"

	// ClauseTypeUnknown is produced only on the segmenter's degraded path,
	// never by classification
	ClauseTypeUnknown ClauseType = "unknown"
)

package ai

// Classification is one tagged judgement from the narrative model. Type must
// come from the closed vocabularies in the domain package.
type Classification struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// QueryResponse is the structured season analysis the model must return.
type QueryResponse struct {
	Playstyle  Classification   `json:"playstyle"`
	Strengths  []Classification `json:"strengths"`
	Weaknesses []Classification `json:"weaknesses"`
	Advice     []Classification `json:"advice"`
}

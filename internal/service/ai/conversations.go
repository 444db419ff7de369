package ai

// Conversation is a named per-call-type identity. The client is
// stateless between calls, but each call type runs under its own
// identity so the provider side gets call-type-specific system
// instructions and model selection.
type Conversation struct {
	ID     string
	Model  string
	System string
}

// conversations fixes the three call types. The model is chosen at
// client construction; the identities themselves are closed.
func conversations(defaultModel string) map[string]Conversation {
	return map[string]Conversation{
		convDocumentAnalysis: {
			ID:    convDocumentAnalysis,
			Model: defaultModel,
			System: "You analyze event planning documents. Extract concrete facts " +
				"relevant to the requested brief section. When asked for structured " +
				"output, respond with a single JSON object mapping field names to " +
				"string values and nothing else.",
		},
		convSectionGeneration: {
			ID:    convSectionGeneration,
			Model: defaultModel,
			System: "You draft content for event input briefs. Respond with a single " +
				"JSON object mapping field names to string values and nothing else.",
		},
		convFieldSuggestions: {
			ID:    convFieldSuggestions,
			Model: defaultModel,
			System: "You suggest candidate values for a single event brief field. " +
				"Respond with a JSON array of short strings and nothing else.",
		},
	}
}

const (
	convDocumentAnalysis  = "document-analysis"
	convSectionGeneration = "section-generation"
	convFieldSuggestions  = "field-suggestions"
)

package ollamamodels

// Wire structs for the Ollama /api/generate endpoint
type OllamaRequest struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options Options `json:"options"`
}

type Options struct {
	Temperature   float64  `json:"temperature,omitempty"`
	TopP          float64  `json:"top_p,omitempty"`
	TopK          int      `json:"top_k,omitempty"`
	NumPredict    int      `json:"num_predict,omitempty"` // MaxTokens equivalent
	RepeatPenalty float64  `json:"repeat_penalty,omitempty"`
	Stop          []string `json:"stop,omitempty"`
}

type OllamaResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// GetGenerationConfig returns sampling options for job description generation.
// Temperature stays high enough that repeated calls with the same prompt
// produce distinct variations.
func GetGenerationConfig() Options {
	return Options{
		Temperature:   0.8,
		TopP:          0.9,
		TopK:          40,
		NumPredict:    2000, // enough for a full description with both lists
		RepeatPenalty: 1.1,
	}
}

package llm

// Config holds the parameters for the suggestion-generation model.
type Config struct {
	Endpoint    string
	Model       string
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns a Config with sensible defaults for a local Ollama
// instance.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   30000,
		MaxRetries:  1,
		Temperature: 0.4,
		MaxTokens:   2048,
	}
}

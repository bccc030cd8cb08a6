package config

type Config struct {
	DatabaseURL  string
	AnthropicKey string
	OpenAIKey    string
	Environment  string
}

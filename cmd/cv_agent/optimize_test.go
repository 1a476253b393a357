package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-optimizer/internal/config"
	"github.com/jonathan/cv-optimizer/internal/prompts"
)

const cvText = "Jean Dupont\nDéveloppeur Go, 5 ans d'expérience chez TechCorp.\nPostgreSQL, Kubernetes, gRPC."

func TestOptimizeCommand_InputErrors(t *testing.T) {
	t.Setenv(config.EnvAnthropicAPIKey, "")
	t.Setenv(config.EnvProvider, "")
	cv := writeFile(t, "cv.txt", cvText)
	offer := writeFile(t, "offer.txt", "Développeur backend Go")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing cv", []string{"optimize", "--niche", "tech_dev"}, "--cv is required"},
		{"missing niche", []string{"optimize", "--cv", cv}, "--niche is required"},
		{"unknown niche", []string{"optimize", "--cv", cv, "--niche", "astronaute"}, "'Niche' failed niche"},
		{"unknown provider", []string{"optimize", "--cv", cv, "--niche", "tech_dev", "--provider", "openai"}, "'Provider' failed oneof"},
		{"cv not found", []string{"optimize", "--cv", "/nonexistent/cv.pdf", "--niche", "tech_dev"}, "cv file not found"},
		{"offer and url", []string{"optimize", "--cv", cv, "--niche", "tech_dev", "--offer", offer, "--offer-url", "https://example.com"}, "none of the others can be"},
		{"no api key", []string{"optimize", "--cv", cv, "--niche", "tech_dev", "--offer", offer}, "ANTHROPIC_API_KEY is not set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRewriteCommand_NoAPIKey(t *testing.T) {
	t.Setenv(config.EnvGeminiAPIKey, "")
	cv := writeFile(t, "cv.md", cvText)

	_, err := execute(t, "", "rewrite", "--cv", cv, "--niche", "data_ai", "--provider", "gemini", "--suggestions")
	assert.ErrorContains(t, err, "GEMINI_API_KEY is not set")
}

func TestResolveConfig_FileUnderFlags(t *testing.T) {
	t.Setenv(config.EnvProvider, "gemini")
	path := writeFile(t, "config.json", `{"niche":"data_ai","timeout_seconds":30,"use_browser":true}`)

	resetFlags(rootCmd)
	configPath = path
	t.Cleanup(func() { configPath = "" })

	cfg, err := resolveConfig(config.Config{Niche: "tech_dev"})
	require.NoError(t, err)
	assert.Equal(t, "tech_dev", cfg.Niche)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestNichesCommand(t *testing.T) {
	out, err := execute(t, "", "niches")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "tech_dev")

	out, err = execute(t, "", "niches", "--json")
	require.NoError(t, err)
	var niches []prompts.Niche
	require.NoError(t, json.Unmarshal([]byte(out), &niches))
	assert.Equal(t, prompts.Niches(), niches)
}

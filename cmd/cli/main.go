package main

import (
	"context"
	"fmt"
	"os"

	"gemini-gateway/pkg/gemini"
)

// Demonstration CLI: reads the API key from the environment, issues two
// example prompts, and prints prompt/response pairs. Errors are reported as
// one-line diagnostics; the process never crashes with a raw stack trace.
func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: Gemini API key not found in environment variable 'GEMINI_API_KEY'. Please set the environment variable and try again.")
		os.Exit(1)
	}

	client, err := gemini.NewClient(apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	prompt := "Write a short poem about a cat."
	fmt.Printf("Prompt: %s\n", prompt)
	if text, err := client.GenerateText(ctx, prompt, nil, nil); err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Printf("Response: %s\n", text)
	}

	// Example with a generation configuration
	genCfg := &gemini.GenerationConfig{
		Temperature:     0.9,
		TopP:            1,
		TopK:            1,
		MaxOutputTokens: 200,
	}
	prompt = "Summarize the plot of Hamlet in 5 sentences."
	fmt.Println("\nExample with Generation Configuration:")
	fmt.Printf("Prompt: %s\n", prompt)
	if text, err := client.GenerateText(ctx, prompt, genCfg, nil); err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Printf("Response: %s\n", text)
	}
}

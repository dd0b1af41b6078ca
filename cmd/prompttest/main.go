package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"transparency-ai/internal/bootstrap"
	"transparency-ai/internal/generation"
	"transparency-ai/internal/llm"
	"transparency-ai/internal/questions"
	"transparency-ai/internal/shared/config"
	"transparency-ai/internal/shared/telemetry"
	"transparency-ai/internal/transparency"
)

func main() {
	cfg := config.Load()

	mode := flag.String("mode", "questions", "What to exercise: questions, score, or generate")
	category := flag.String("category", "", "Product category")
	product := flag.String("product", "", "Product name")
	description := flag.String("description", "", "Product description (questions mode)")
	prompt := flag.String("prompt", "", "Prompt text (generate mode)")
	answersPath := flag.String("answers", "", "Path to a JSON answers array (score mode)")
	outPath := flag.String("out", "", "Path to write JSON output (optional)")
	provider := flag.String("provider", cfg.AIProvider, "AI provider: gemini or openai")
	model := flag.String("model", cfg.AIModel, "AI model")
	verbose := flag.Bool("v", false, "Log model calls to stderr")
	flag.Parse()

	telemetry.SetOutput(os.Stderr)
	if *verbose {
		telemetry.Configure("debug", true)
	} else {
		telemetry.Configure("warn", false)
	}

	cfg.AIProvider = strings.ToLower(strings.TrimSpace(*provider))
	cfg.AIModel = strings.TrimSpace(*model)

	ctx := context.Background()
	client, err := bootstrap.BuildClient(ctx, cfg)
	if err != nil {
		exitErr(err.Error())
	}
	ai := llm.NewOrchestrator(client, llm.WithTimeout(cfg.AITimeout))

	var out any
	switch strings.TrimSpace(*mode) {
	case "questions":
		out, err = questions.NewService(ai).Generate(ctx, questions.Request{
			Category:    *category,
			Description: *description,
			ProductName: *product,
		})
	case "score":
		answers, readErr := readAnswers(*answersPath)
		if readErr != nil {
			exitErr(readErr.Error())
		}
		out, err = transparency.NewService(transparency.Recommender{AI: ai}).Calculate(ctx, transparency.Request{
			ProductName: *product,
			Category:    *category,
			Answers:     answers,
		})
	case "generate":
		out, err = generation.NewService(ai).Generate(ctx, generation.GenerateRequest{Prompt: *prompt})
	default:
		exitErr(fmt.Sprintf("unsupported mode: %s", *mode))
	}
	if err != nil {
		exitErr(fmt.Sprintf("%s: %v", *mode, err))
	}

	pretty, err := prettyJSON(out)
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
}

func readAnswers(path string) ([]transparency.Answer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("answers path is required in score mode")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var answers []transparency.Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

func prettyJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

package ai

import (
	"context"
	"time"
)

// DiplomaMeta is what the analyzer knows about the work besides the file.
type DiplomaMeta struct {
	Topic          string
	StudentName    string
	SupervisorName string
}

type FormatCheck struct {
	Score    int                    `json:"score"`
	Issues   []string               `json:"issues"`
	Metadata map[string]interface{} `json:"metadata"`
}

type Review struct {
	Text        string `json:"text"`
	Grade       string `json:"grade"`
	GeneratedAt string `json:"generatedAt"`
}

type Question struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type Result struct {
	FormatCheck FormatCheck            `json:"formatCheck"`
	Review      Review                 `json:"review"`
	Questions   []Question             `json:"questions"`
	Metadata    map[string]interface{} `json:"metadata"`
	Provider    string                 `json:"provider"`
}

// Analyzer checks an uploaded diploma file. Implementations may call out to
// an external model provider.
type Analyzer interface {
	AnalyzeDiploma(ctx context.Context, filePath string, meta DiplomaMeta) (*Result, error)
}

// DemoAnalyzer returns a canned result without touching the file. It stands
// in until a real provider is configured.
type DemoAnalyzer struct{}

func NewDemoAnalyzer() *DemoAnalyzer {
	return &DemoAnalyzer{}
}

func (da *DemoAnalyzer) AnalyzeDiploma(_ context.Context, _ string, _ DiplomaMeta) (*Result, error) {
	return &Result{
		FormatCheck: FormatCheck{
			Score:    85,
			Issues:   []string{"ИИ-анализ в разработке"},
			Metadata: map[string]interface{}{"demo": true},
		},
		Review: Review{
			Text:        "Демо-режим. Установите библиотеки для полного анализа.",
			Grade:       "хорошо",
			GeneratedAt: time.Now().Format(time.RFC3339),
		},
		Questions: []Question{
			{Text: "В чем актуальность темы?", Type: "theory"},
			{Text: "Какие методы использованы?", Type: "methodology"},
			{Text: "Какие практические результаты?", Type: "practical"},
		},
		Metadata: map[string]interface{}{"status": "demo"},
		Provider: "demo",
	}, nil
}

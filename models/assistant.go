// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatRequest is the body of POST /api/gemini.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse carries the generated text. IsDemo marks canned responses
// returned when the generative-language API is not configured or failed.
type ChatResponse struct {
	Response string `json:"response"`
	IsDemo   bool   `json:"isDemo"`
	Error    string `json:"error,omitempty"`
}

// CalorieEstimateRequest is the body of POST /api/gemini/calories.
type CalorieEstimateRequest struct {
	Food    string `json:"food"`
	Portion string `json:"portion,omitempty"`
}

// CalorieEstimate is an AI estimate for a food item. It is advisory only and
// is never stored in the diary by the server.
type CalorieEstimate struct {
	Calories int    `json:"calories"`
	IsDemo   bool   `json:"isDemo"`
	Error    string `json:"error,omitempty"`
}

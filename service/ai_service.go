package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"cgpa-agent/domain"
)

type AIService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService() *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	enabled := apiKey != ""

	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateProjectionCommentary genera el resumen textual de una proyección:
// CGPA final, mínimo y máximo entre escenarios.
func (s *AIService) GenerateProjectionCommentary(
	initial domain.AcademicState,
	trajectories []domain.ScenarioTrajectory,
) string {
	finals := []string{}
	minFinal, maxFinal := -1.0, -1.0
	for _, t := range trajectories {
		if len(t.Points) == 0 {
			continue
		}
		final := t.Points[len(t.Points)-1].CGPA
		finals = append(finals, fmt.Sprintf("- %s: final CGPA %.2f", t.Scenario, final))
		if minFinal < 0 || final < minFinal {
			minFinal = final
		}
		if final > maxFinal {
			maxFinal = final
		}
	}
	if len(finals) == 0 {
		return ""
	}

	fallback := fmt.Sprintf(
		"Starting from a CGPA of %.2f over %.0f credit hours, your scenarios land between %.2f and %.2f. Every projection is a weighted average: heavier future terms move the needle more.",
		initial.CGPA, initial.CreditHours, minFinal, maxFinal)

	if !s.enabled {
		return fallback
	}

	prompt := fmt.Sprintf(`A student is projecting possible CGPA outcomes.

CURRENT STANDING:
- Completed credit hours: %.0f
- Current CGPA: %.2f

PROJECTED SCENARIOS:
%s

INSTRUCTIONS:
1. Explain in plain terms how the scenarios compare and which range of outcomes is realistic.
2. Remind the student that cumulative averages move slowly once many credit hours are completed.
3. Be encouraging but realistic.

Write 2-3 sentences that are easy to understand.`,
		initial.CreditHours, initial.CGPA, strings.Join(finals, "\n"))

	commentary, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling AI service for projection commentary: %v", err)
		return fallback
	}
	return commentary
}

// GenerateSimulationCommentary genera una explicación inteligente para los
// resultados del multiverso de trayectorias.
func (s *AIService) GenerateSimulationCommentary(
	input domain.SimulationInput,
	stats *domain.SummaryStats,
	outcomes []domain.FinalOutcome,
) string {
	if stats == nil || len(outcomes) == 0 {
		return ""
	}

	best := outcomes[0]
	worst := outcomes[0]
	for _, o := range outcomes {
		if o.FinalCGPA > best.FinalCGPA {
			best = o
		}
		if o.FinalCGPA < worst.FinalCGPA {
			worst = o
		}
	}

	if !s.enabled {
		return s.generateFallbackCommentary(input, stats, best, worst)
	}

	prompt := fmt.Sprintf(`A student simulated %d possible CGPA trajectories from semester %d with a current CGPA of %.2f.

SIMULATION SUMMARY:
- Mean final CGPA: %.2f (95%% CI %.2f - %.2f)
- Median: %.2f, std: %.2f
- Best outcome: %.2f via the "%s" path
- Worst outcome: %.2f via the "%s" path

INSTRUCTIONS:
1. Describe the spread of outcomes and what it says about how much is still in the student's control.
2. Contrast the best and worst paths by name.
3. Mention the Dean's List line at %.1f if any outcome crosses it.
4. Be motivational but realistic, and remind the student that CGPA is not everything: projects and internships matter too.

Write 3-4 sentences that are easy to understand.`,
		stats.Count, input.CurrentSemester, input.CurrentCGPA,
		stats.Mean, stats.CILower, stats.CIUpper,
		stats.Median, stats.Std,
		best.FinalCGPA, best.Path,
		worst.FinalCGPA, worst.Path,
		DeansListLine)

	commentary, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling AI service for simulation commentary: %v", err)
		return s.generateFallbackCommentary(input, stats, best, worst)
	}
	return commentary
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are an experienced academic advisor. You explain CGPA projections in clear, encouraging language, you are specific with numbers, and you always remind students that grades are only one part of their profile.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

func (s *AIService) generateFallbackCommentary(
	input domain.SimulationInput,
	stats *domain.SummaryStats,
	best, worst domain.FinalOutcome,
) string {
	deansNote := ""
	if best.FinalCGPA >= DeansListLine {
		deansNote = fmt.Sprintf(" Your best outcomes cross the Dean's List line at %.1f.", DeansListLine)
	}
	return fmt.Sprintf(
		"Across %d simulated trajectories from semester %d, your final CGPA averages %.2f (ranging %.2f to %.2f). The \"%s\" path leads to your best outcome of %.2f, while \"%s\" bottoms out at %.2f.%s Remember: practical skills, projects and internships can tip the scales in your favor.",
		stats.Count, input.CurrentSemester, stats.Mean, stats.Min, stats.Max,
		best.Path, best.FinalCGPA, worst.Path, worst.FinalCGPA, deansNote)
}

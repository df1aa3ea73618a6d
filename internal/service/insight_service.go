package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"thozhahub/internal/config"
	"thozhahub/internal/model"
)

// InsightService generates the narrative learning-profile analysis via the
// Gemini API. Generate never fails: any API error, timeout, or malformed
// response degrades to the deterministic fallback.
type InsightService struct {
	config *config.AIConfig
	client *http.Client
}

// NewInsightService creates a new insight service.
func NewInsightService(cfg *config.AIConfig) *InsightService {
	return &InsightService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate produces insights for a completed questionnaire. A single API
// attempt is made; the fallback covers everything else.
func (s *InsightService) Generate(ctx context.Context, answered []model.AnsweredQuestion, questionText map[string]string, scores map[model.Category]int, traits map[model.Trait]int, category model.Category, topTraits []model.Trait) *model.Insight {
	if !s.config.IsEnabled() {
		return s.Fallback(category, topTraits)
	}

	prompt := s.buildInsightPrompt(answered, questionText, scores, traits, category)
	response, err := s.callGemini(ctx, prompt)
	if err != nil {
		log.Printf("[AI] insight generation failed, using fallback: %v", err)
		return s.Fallback(category, topTraits)
	}

	raw := extractJSON(response)
	var insight model.Insight
	if err := json.Unmarshal([]byte(raw), &insight); err != nil {
		log.Printf("[AI] insight response unparsable, using fallback: %v", err)
		return s.Fallback(category, topTraits)
	}
	if !insight.Complete() {
		log.Printf("[AI] insight response incomplete, using fallback")
		return s.Fallback(category, topTraits)
	}
	return &insight
}

// Fallback builds a deterministic insight from the classification alone. It
// always satisfies Insight.Complete.
func (s *InsightService) Fallback(category model.Category, topTraits []model.Trait) *model.Insight {
	traitNames := make([]string, len(topTraits))
	for i, t := range topTraits {
		traitNames[i] = strings.ReplaceAll(string(t), "_", " ")
	}
	traitList := strings.Join(traitNames, ", ")
	if traitList == "" {
		traitList = "well-rounded"
	}

	return &model.Insight{
		PersonalityProfile: fmt.Sprintf("You have been identified as a %s learner with strong %s traits. This means you approach learning with a unique combination of analytical thinking, creative problem-solving, and practical application.", category, traitList),
		LearningPath:       "Balanced Learning Approach",
		Strengths:          []string{"Adaptable learning style", "Strong problem-solving skills", "Good technical foundation"},
		GrowthAreas:        []string{"Time management", "Consistent practice"},
		StudyStrategies:    []string{"Set clear daily goals", "Build projects regularly", "Review concepts periodically", "Collaborate with peers"},
		ProjectSuggestions: []string{"Full-stack web application", "API development project", "Open source contribution"},
		CareerPath:         "Your profile suggests strong potential in software engineering roles with opportunities for growth in technical leadership.",
		MotivationalTips:   []string{"Focus on consistent progress", "Celebrate small wins", "Stay curious and keep exploring"},
	}
}

func (s *InsightService) buildInsightPrompt(answered []model.AnsweredQuestion, questionText map[string]string, scores map[model.Category]int, traits map[model.Trait]int, category model.Category) string {
	var pairs strings.Builder
	for i, a := range answered {
		if i > 0 {
			pairs.WriteString("\n\n")
		}
		text := questionText[a.QuestionID]
		if text == "" {
			text = "Unknown"
		}
		fmt.Fprintf(&pairs, "Q: %s\nA: %s", text, a.Answer)
	}

	traitsJSON, _ := json.MarshalIndent(traits, "", "  ")

	return fmt.Sprintf(`You are an expert educational psychologist analyzing a student's learning profile based on their questionnaire responses.

QUESTIONNAIRE RESPONSES:
%s

CALCULATED METRICS:
Category Scores: Explorer=%d, Achiever=%d, Strategist=%d, Practitioner=%d
Personality Traits: %s
Primary Category: %s

Based on this comprehensive profile, provide a detailed analysis in the following JSON format:
{
  "personalityProfile": "A 3-4 sentence description of their core learning personality, cognitive style, and approach to problem-solving",
  "learningPath": "Recommend the optimal learning path (e.g., 'Project-Based Learning with Theory', 'Deep Specialization', 'Broad Exploration', etc.) with 2-3 sentences explaining why this suits them",
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "growthAreas": ["area 1", "area 2"],
  "studyStrategies": ["strategy 1", "strategy 2", "strategy 3", "strategy 4"],
  "projectSuggestions": ["project type 1", "project type 2", "project type 3"],
  "careerPath": "2-3 sentences about potential career directions that align with their profile",
  "motivationalTips": ["tip 1", "tip 2", "tip 3"]
}

Return ONLY valid JSON. Be specific, insightful, and actionable.`,
		pairs.String(),
		scores[model.CategoryExplorer], scores[model.CategoryAchiever],
		scores[model.CategoryStrategist], scores[model.CategoryPractitioner],
		traitsJSON, category)
}

// callGemini makes a request to the Gemini API
func (s *InsightService) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// extractJSON trims a model response down to the outermost JSON object.
// Models occasionally wrap JSON in prose or code fences despite instructions.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return s
	}
	return s[start : end+1]
}

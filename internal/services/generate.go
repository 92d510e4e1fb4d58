package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Question is one generated multiple-choice question. Correct is the
// index into Options, not the answer text.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

type GenerateService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewGenerateService(apiKey, apiURL, model string) *GenerateService {
	return &GenerateService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *GenerateService) IsAvailable() bool {
	return s.apiKey != ""
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const promptTemplate = `
Buatkan %d soal pilihan ganda tentang topik '%s' dengan tingkat kesulitan '%s'.

Format output:
[
  {
    "question": "...",
    "options": ["...","...","...","..."],
    "correct": 0
  }
]

Catatan penting:
- Jawaban benar harus akurat secara logika.
- Field "correct" adalah angka index (0-3) dari array 'options', bukan string.
- Opsi harus acak urutan dan terdiri dari 4 pilihan.
- Hindari soal berulang dan gunakan variasi gaya bahasa.

Seed unik: %d
Variasi ke-%d
`

// GenerateQuestions asks the model for count questions about the topic
// at the given difficulty. Every failure mode (transport, non-200,
// malformed JSON) is logged and collapses to an empty list; callers
// never see an error.
func (s *GenerateService) GenerateQuestions(topic, level string, count int) []Question {
	if !s.IsAvailable() {
		log.Println("generate: no API key configured, returning no questions")
		return []Question{}
	}

	prompt := fmt.Sprintf(promptTemplate, count, topic, level,
		time.Now().Unix(), 1000+rand.Intn(9000))

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		log.Printf("generate: marshal request: %v", err)
		return []Question{}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.apiURL, s.model, s.apiKey)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		log.Printf("generate: build request: %v", err)
		return []Question{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("generate: API request failed: %v", err)
		return []Question{}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("generate: read response: %v", err)
		return []Question{}
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("generate: API returned status %d: %s", resp.StatusCode, string(body))
		return []Question{}
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		log.Printf("generate: parse API response: %v", err)
		return []Question{}
	}
	if genResp.Error != nil {
		log.Printf("generate: API error: %s", genResp.Error.Message)
		return []Question{}
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		log.Println("generate: empty response from API")
		return []Question{}
	}

	text := cleanJSONContent(genResp.Candidates[0].Content.Parts[0].Text)

	var questions []Question
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		log.Printf("generate: model returned invalid JSON: %v", err)
		return []Question{}
	}

	return validQuestions(questions)
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\[.*?\\])\\s*```")

// cleanJSONContent pulls the JSON array out of a markdown code fence if
// the model wrapped its answer in one.
func cleanJSONContent(text string) string {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

// validQuestions keeps only questions with exactly 4 options and an
// in-range correct index.
func validQuestions(questions []Question) []Question {
	valid := make([]Question, 0, len(questions))
	for _, q := range questions {
		if len(q.Options) != 4 {
			continue
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			continue
		}
		valid = append(valid, q)
	}
	return valid
}

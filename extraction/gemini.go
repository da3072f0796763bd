package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/config"
	"app/models"
)

const extractionPrompt = `You are reading a handwritten milk delivery bill.
Extract the data as JSON with this exact shape and nothing else:
{"date":"DD-MM-YYYY","shift":"Morning|Evening","delPerson":"","items":[{"shopName":"","address":"","packetPrice":0,"sale":0,"samp":0,"rep":0,"cashAmount":0,"balanceAmount":0,"delPerson":""}]}
Use 0 for unreadable numbers and "" for unreadable text. Do not invent rows.`

// ExtractBill sends a bill image to Gemini and returns the sanitized
// structured extraction.
func ExtractBill(ctx context.Context, imageData []byte, imageFormat string) (models.BillExtraction, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		return models.BillExtraction{}, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	resp, err := model.GenerateContent(ctx,
		genai.Text(extractionPrompt),
		genai.ImageData(imageFormat, imageData),
	)
	if err != nil {
		return models.BillExtraction{}, fmt.Errorf("failed to generate extraction: %w", err)
	}

	text := responseText(resp)
	var raw models.RawBillExtraction
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &raw); err != nil {
		return models.BillExtraction{}, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	return SanitizeBill(raw), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}

// stripCodeFences removes a markdown ```json fence the model sometimes wraps
// its output in despite the prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

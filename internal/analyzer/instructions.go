package analyzer

import (
	"fmt"
	"strconv"
	"strings"
)

const systemInstructions = `You are a brand compliance expert. Analyze brand guidelines and marketing materials for inconsistencies in fonts, colors, layout, logos, tone of voice, and other brand elements. Provide detailed feedback with specific examples.`

const userInstructions = `Brand Guidelines:
%s

Marketing Material:
%s

Analyze the marketing material for compliance with the brand guidelines.
Focus on: fonts, colors, layout, logo usage, imagery style, and tone of voice.
Provide a compliance score (0-100) and list specific issues with recommendations.
Format your response as JSON with the following structure:
{
  "score": number,
  "summary": string,
  "issues": [
    {
      "severity": %s,
      "category": string,
      "description": string,
      "recommendation": string
    }
  ]
}`

// ComposeUserPrompt embeds both text bodies in the analysis instruction.
// The severity alternatives in the response schema come from Severities,
// so prompt and validation cannot drift apart.
func ComposeUserPrompt(guidelineText, materialText string) string {
	return fmt.Sprintf(userInstructions, guidelineText, materialText, severityAlternatives())
}

func severityAlternatives() string {
	quoted := make([]string, len(Severities()))
	for i, s := range Severities() {
		quoted[i] = strconv.Quote(string(s))
	}
	return strings.Join(quoted, " | ")
}

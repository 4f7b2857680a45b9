package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewCoach creates the personal finance coach. The caller passes the
// household's current figures rendered as markdown so the coach grounds its
// advice in them.
func NewCoach(context string) *Expert {
	return &Expert{
		Name: "Coach",
		Description: `A personal finance coach. Knows the household's net worth,
		goals, debts and health score, and turns them into concrete next steps.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a pragmatic personal finance coach. The user tracks their
			wealth locally; their current figures are below in markdown.

			Ground every piece of advice in these figures. Prefer concrete,
			numbered next steps over generalities. Answer in the language the
			user writes in, and keep answers short enough to read in a
			terminal. Never invent figures that are not in the data.

			` + context}}},
		},
	}
}

// NewResearcher creates the market researcher, which grounds answers about
// rates, products and institutions through Google Search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `A researcher aware of current interest rates, savings
		products and institutions. Ask it whenever an answer needs recent or
		external information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You research interest rates, savings products, pension rules and
			financial institutions. Use Google Search to ground your answers
			and cite what you found.
			`}}},
		},
	}
}

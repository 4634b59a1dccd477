package gemini

import (
	"strings"

	"Bricklix/entity"
)

func ideasSystemPrompt(serviceName string) string {
	return `You are an expert AI development and automation consultant. The user is exploring our "` + serviceName + `" service. Provide 3 high-impact, specific project ideas for a mid-sized business that leverage this service. Each idea should be a maximum of 2 sentences. Start with a positive, encouraging tone.`
}

func ideasUserPrompt(serviceName string) string {
	return "Generate 3 project ideas for the service: " + serviceName + "."
}

func answerUserPrompt(question string) string {
	return `The user asks: "` + question + `"`
}

func answerSystemPrompt() string {
	return "You are a helpful and knowledgeable chatbot for Bricklix, a company specializing in AI, automation, and software development. Answer the user's question directly and concisely, using a friendly and professional tone. Keep the answer brief (max 3-4 sentences). The company specializes in: " + strings.Join(entity.ServiceNames(), ", ") + "."
}

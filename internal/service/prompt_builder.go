package service

import (
	"fmt"
	"strconv"
	"strings"

	"pathwise_backend/internal/llm"
)

// TranslateSeparator joins translation segments into one batch prompt.
// The generator is instructed to echo it back between translated segments.
const TranslateSeparator = "---SEPARATOR---"

const roadmapSystemInstruction = `You are an AI agent who provides good personalized learning paths based on user input. You have to provide subtopics to learn with a small description of the subtopic telling what exactly to learn and how much time each subtopic will take. Give more time to subtopics that require more understanding. One more important thing, make sure to keep every key lowercase
Example output:
{
  "week 1": {
    "topic":"Introduction to Python",
    "subtopics":[
      {
        "subtopic":"Getting Started with Python",
        "time":"10 minute",
        "description":"Learn Hello world in python"
      },
      {
        "subtopic":"Data types in Python",
        "time":"1 hour",
        "description":"Learn about int, string, boolean, array, dict and casting data types"
      },
      {
        "subtopic":"Conditionals in Python",
        "time":"30 minutes",
        "description":"Learn about comparison operators, if elif else statements"
      },
      {
        "subtopic":"Loops",
        "time":"30 minutes",
        "description":"Learn about for loop, while loop, continue and break"
      },
      {
        "subtopic":"OOPs in Python",
        "time":"4 hours",
        "description":"Learn about classes, objects, inheritance, polymorphism and OOPs concepts"
      }
    ]
  }
}
Make sure to keep every key lowercase like subtopics, topic, time, etc.`

const tutorSystemInstruction = "You are an AI tutor. Maintain a modest and calm language suitable for learning. You need to provide content to user to learn in given time."

const structuredSystemInstruction = `You are an AI tutor creating structured, interactive learning content.
Create comprehensive, chapter-based learning materials that include:
- Clear learning objectives for each section
- Step-by-step explanations with examples
- Practical exercises and applications
- Key takeaways and summaries
- Progressive difficulty levels

Format your response with clear markdown headers (# ## ###) to create distinct chapters.
Make the content engaging, practical, and suitable for the given time duration.
Include real-world examples and hands-on activities where possible.`

// PromptBuilder maps generation requests to model-ready prompts plus their
// output contract. It is a pure mapping; it never calls the generator.
type PromptBuilder struct{}

func (PromptBuilder) Roadmap(topic, timeframe, knowledgeLevel string) llm.Request {
	return llm.Request{
		System: roadmapSystemInstruction,
		Prompt: fmt.Sprintf(
			"Suggest a roadmap for learning %s in %s. My Knowledge level is %s. I can spend total of 16 hours every week.",
			topic, timeframe, knowledgeLevel,
		),
		JSONOutput: true,
	}
}

func (PromptBuilder) Quiz(course, topic, subtopic, description string) llm.Request {
	return llm.Request{
		System: tutorSystemInstruction,
		Prompt: fmt.Sprintf(
			"I am learning %s, currently on %s. Create a quiz about %s. It should cover: %s.",
			course, topic, subtopic, description,
		),
	}
}

func (PromptBuilder) Resource(course, knowledgeLevel, description, duration string) llm.Request {
	return llm.Request{
		System: tutorSystemInstruction,
		Prompt: fmt.Sprintf(
			"I am learning %s. My knowledge level in this topic is %s. i want to %s. I want to learn it in %s. Teach me.",
			course, knowledgeLevel, description, duration,
		),
	}
}

func (PromptBuilder) StructuredResource(course, knowledgeLevel, description, duration string) llm.Request {
	minutes := normalizeDurationMinutes(duration)

	prompt := fmt.Sprintf(`Create a comprehensive, structured learning path for "%s" in the context of %s.

Student Details:
- Knowledge Level: %s
- Available Time: %s (approximately %d minutes)
- Learning Goal: %s

Please structure your response as follows:

# Introduction to [Topic]
- Learning objectives
- Why this topic is important
- What students will achieve

# Core Concepts and Theory
- Fundamental principles
- Key terminology and definitions
- Theoretical foundations with examples

# Practical Applications and Examples
- Real-world use cases
- Step-by-step examples
- Hands-on exercises students can try

# Advanced Concepts (if time allows)
- More complex aspects
- Integration with other topics
- Best practices and common pitfalls

# Summary and Next Steps
- Key takeaways
- Review questions
- Recommended next learning topics
- Additional resources for deeper study

Make each section substantial with detailed explanations, examples, and practical activities.
Ensure the content is appropriate for a %s level learner and can be completed in approximately %s.
Use markdown formatting for better readability.`,
		description, course, knowledgeLevel, duration, minutes, description, knowledgeLevel, duration)

	return llm.Request{
		System: structuredSystemInstruction,
		Prompt: prompt,
	}
}

func (PromptBuilder) Translate(segments []string, target string) llm.Request {
	return llm.Request{
		Prompt: fmt.Sprintf(
			"Translate each of the following segments to %s. The segments are separated by the token %s. Return only the translated segments, rejoined by the exact same token, with no extra commentary.\n\n%s",
			target, TranslateSeparator, strings.Join(segments, TranslateSeparator),
		),
	}
}

func (PromptBuilder) TranslateSingle(segment, target string) llm.Request {
	return llm.Request{
		Prompt: fmt.Sprintf("translate to %s: %s", target, segment),
	}
}

// normalizeDurationMinutes parses a human duration like "2 hours" or
// "45 min" into minutes, purely to enrich the prompt text. Anything it
// cannot parse falls back to 30 minutes; failures are never surfaced.
func normalizeDurationMinutes(duration string) int {
	lower := strings.ToLower(duration)
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 30
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 30
	}

	switch {
	case strings.Contains(lower, "hour"):
		return int(value * 60)
	case strings.Contains(lower, "min"):
		return int(value)
	default:
		return 30
	}
}

// Package ai turns free-text messages into structured quick-add tasks using
// a single chat-completion call with a strict JSON schema response.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *Client) SetModel(model string) {
	c.model = model
}

// QuickAdd is the parsed form of a free-text task request.
type QuickAdd struct {
	Task        string  `json:"task"`
	Time        string  `json:"time"` // HH:MM, 24-hour
	Priority    string  `json:"priority"`
	HasReminder bool    `json:"has_reminder"`
	AlarmSound  string  `json:"alarm_sound"` // empty when the user named no sound
	Confidence  float64 `json:"confidence"`
	RawResponse string  `json:"-"`
}

const systemPromptTemplate = `You turn a short free-text request into one schedule task for today.

Current time: %s

Rules:
1. "time" is the 24-hour clock time HH:MM the task should happen. Resolve
   relative phrases ("in two hours", "after lunch", "tonight") against the
   current time. If no time is given, pick the next sensible full hour.
2. "task" is a short imperative description, cleaned of the time phrase.
3. "priority" is low, medium or high. Default to medium unless the wording
   signals urgency ("urgent", "must", "important") or triviality.
4. "has_reminder" is true when the user asks to be reminded or alerted, or
   uses phrasing like "remind me" / "don't let me forget"; otherwise false.
5. "alarm_sound" is bell, chime or digital only when the user names one;
   otherwise the empty string.
6. "confidence" is your confidence between 0 and 1 that the parse reflects
   the request.`

func getSystemPrompt() string {
	now := time.Now()
	return fmt.Sprintf(systemPromptTemplate, now.Format("2006-01-02 15:04 (Monday)"))
}

// JSON Schema for structured output
var quickAddSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"task": {
			"type": "string",
			"description": "Short imperative description of the task"
		},
		"time": {
			"type": "string",
			"pattern": "^([01][0-9]|2[0-3]):[0-5][0-9]$",
			"description": "Task time today, 24-hour HH:MM"
		},
		"priority": {
			"type": "string",
			"enum": ["low", "medium", "high"],
			"description": "Task priority"
		},
		"has_reminder": {
			"type": "boolean",
			"description": "Whether the user asked to be reminded"
		},
		"alarm_sound": {
			"type": "string",
			"enum": ["", "bell", "chime", "digital"],
			"description": "Requested alarm sound, empty when not named"
		},
		"confidence": {
			"type": "number",
			"minimum": 0,
			"maximum": 1,
			"description": "Confidence score between 0 and 1"
		}
	},
	"required": ["task", "time", "priority", "has_reminder", "alarm_sound", "confidence"],
	"additionalProperties": false
}`)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseQuickAdd parses a free-text request into a QuickAdd. The returned
// time is validated to be a real HH:MM even if the model ignores the schema.
func (c *Client) ParseQuickAdd(ctx context.Context, userMessage string) (*QuickAdd, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: getSystemPrompt(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMessage,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "quick_add",
				Schema: quickAddSchema,
				Strict: true,
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call AI API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from AI")
	}

	content := resp.Choices[0].Message.Content
	quickAdd := &QuickAdd{RawResponse: content}

	if err := json.Unmarshal([]byte(content), quickAdd); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}
	if !hhmmPattern.MatchString(quickAdd.Time) {
		return nil, fmt.Errorf("AI returned invalid time %q", quickAdd.Time)
	}

	return quickAdd, nil
}

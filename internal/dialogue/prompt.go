package dialogue

import (
	"fmt"
	"strings"
)

// moodWord names a mood value for the prompt, mirroring how the UI
// describes NPC attitude.
func moodWord(mood float64) string {
	switch {
	case mood > 0.8:
		return "very friendly"
	case mood > 0.6:
		return "friendly"
	case mood > 0.4:
		return "neutral"
	case mood > 0.2:
		return "wary"
	default:
		return "hostile"
	}
}

// systemPrompt builds the character card the model acts from.
func systemPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a %s in a small fantasy kingdom.\n", req.NPC.Name, req.NPC.Profession)
	if req.NPC.Personality != "" {
		fmt.Fprintf(&b, "Personality: %s\n", req.NPC.Personality)
	}
	if req.NPC.Background != "" {
		fmt.Fprintf(&b, "Background: %s\n", req.NPC.Background)
	}
	fmt.Fprintf(&b, "You are speaking with %s, a level %d %s. Your current attitude toward them is %s.\n",
		req.Player.Name, req.Player.Level, req.Player.Class, moodWord(req.Mood))
	b.WriteString("Stay in character and answer in one or two short sentences.\n")
	b.WriteString(`Respond ONLY with a JSON object of the form {"message": "<what you say>", "mood": <your updated attitude from 0.0 (hostile) to 1.0 (devoted)>}.`)
	return b.String()
}

// buildMessages lays out the chat transcript for the model: the
// character card, the remembered exchanges, then the new line.
func buildMessages(req Request) []chatMessage {
	messages := make([]chatMessage, 0, 2*len(req.History)+2)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt(req)})
	for _, exchange := range req.History {
		if exchange.Player != "" {
			messages = append(messages, chatMessage{Role: "user", Content: exchange.Player})
		}
		if exchange.NPC != "" {
			messages = append(messages, chatMessage{Role: "assistant", Content: exchange.NPC})
		}
	}
	line := req.Line
	if line == "" {
		line = fmt.Sprintf("(%s approaches you for the first time. Greet them.)", req.Player.Name)
	}
	messages = append(messages, chatMessage{Role: "user", Content: line})
	return messages
}

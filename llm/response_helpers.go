package llm

import "fmt"

// FirstChoice returns resp's first choice. Gateways occasionally return an
// empty choice list (content filtering, upstream truncation), so callers
// should use this instead of indexing Choices directly.
func FirstChoice(resp *ChatResponse) (ChatChoice, error) {
	if resp == nil {
		return ChatChoice{}, fmt.Errorf("nil response")
	}
	if len(resp.Choices) == 0 {
		return ChatChoice{}, fmt.Errorf("response from %s carried no choices", resp.Provider)
	}
	return resp.Choices[0], nil
}

// MustFirstChoice is FirstChoice for callers that treat an empty choice list
// as a programming error.
func MustFirstChoice(resp *ChatResponse) ChatChoice {
	choice, err := FirstChoice(resp)
	if err != nil {
		panic(err)
	}
	return choice
}

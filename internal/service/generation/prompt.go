package generation

import "fmt"

// SystemPrompt is sent as the system message of every completion.
const SystemPrompt = "You are an expert in generating flashcards."

const promptTemplate = `Generate %d flashcards from the following text:
%s

- Each flashcard should be formatted as follows:
- Q: <question>
- A: <answer>
- Separate each flashcard with "###".

Example:
Q: What is the capital of France?
A: Paris
###
Q: Who discovered gravity?
A: Isaac Newton
###`

// BuildPrompt renders the user message asking for count cards about text.
func BuildPrompt(count int, text string) string {
	return fmt.Sprintf(promptTemplate, count, text)
}

package agent

import (
	"fmt"
	"strings"
)

// holds all the context needed to build the system prompt
type SystemPromptContext struct {
	Tool       string
	ToolResult string
}

// assembles the complete system prompt
func buildSystemPrompt(ctx SystemPromptContext) string {
	var builder strings.Builder

	builder.WriteString("═══════════════════════════════════════════════════════════\n")
	builder.WriteString("RETRIEVED INVOICE DATA\n")
	builder.WriteString("═══════════════════════════════════════════════════════════\n\n")
	builder.WriteString(fmt.Sprintf("Retrieval tool: %s\n\n", ctx.Tool))
	builder.WriteString(ctx.ToolResult)
	builder.WriteString("\n\n")

	builder.WriteString("═══════════════════════════════════════════════════════════\n")
	builder.WriteString("INSTRUCTIONS\n")
	builder.WriteString("═══════════════════════════════════════════════════════════\n\n")
	builder.WriteString(getInstructions())

	return builder.String()
}

// returns the core instructions
func getInstructions() string {
	return `You are an invoice data assistant.

	Your task is to answer the user's question using ONLY the retrieved invoice data above.

	Guidelines:
	- Answer from the RETRIEVED INVOICE DATA; never invent rows, amounts or customers
	- If the data contains an "error" field, explain that the lookup failed and relay the message plainly
	- If the data is an empty result set, say that no matching invoices were found
	- Format monetary amounts with a currency symbol and two decimals
	- When the data includes a total_relevant_count larger than the rows shown, mention how many more matches exist
	- Keep answers concise; use a short list or table when the user asked about multiple invoices

	Response format:
	- Plain prose or simple markdown, no code fences around the whole answer
	- Lead with the direct answer, then supporting rows if useful
`
}

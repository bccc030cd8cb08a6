package router

import "strings"

// The routing rubric is deterministic: SQL search is the default for
// keyword, categorical, date and aggregate questions, and vector search is
// chosen only for three shapes of question: similarity to an example,
// pattern matching on a conceptual project or order type that is not a
// column value, and abstract business concepts with no discrete column.

// similarityPhrases mark similarity-to-an-example and conceptual
// pattern-matching requests.
var similarityPhrases = []string{
	"look like",
	"looks like",
	"looking like",
	"similar to",
	"similar invoices",
	"similar sales",
	"similar orders",
	"resemble",
	"resembles",
	"resembling",
	"comparable to",
	"along the lines of",
	"reminds me of",
	"remind you of",
	"like invoice",
	"like this one",
	"like that one",
	"in the same vein",
	"same kind of",
	"same sort of",
	"same type of project",
}

// conceptPhrases mark abstract or strategic framings that no discrete
// column captures.
var conceptPhrases = []string{
	"conceptually",
	"strategic",
	"strategically",
	"in spirit",
	"broadly speaking",
	"big picture",
	"overall theme",
	"common themes",
	"patterns across",
	"what kind of customer",
	"what kinds of customers",
	"what type of project",
	"what types of projects",
}

// politePrefixes are courtesy openers that would otherwise false-positive
// the similarity rubric ("I'd like a breakdown of sales").
var politePrefixes = []string{
	"i'd like",
	"i would like",
	"we'd like",
	"we would like",
	"please",
}

// Decide applies the rubric to a question and returns the one-shot routing
// choice. Questions that legitimately fit both strategies are not flagged;
// the first matching rule wins.
func Decide(question string) Decision {
	q := strings.ToLower(strings.TrimSpace(question))

	for _, prefix := range politePrefixes {
		q = strings.TrimSpace(strings.TrimPrefix(q, prefix))
	}

	for _, phrase := range similarityPhrases {
		if strings.Contains(q, phrase) {
			return Decision{
				Tool:   ToolVectorSearch,
				Reason: "similarity framing: " + quote(phrase),
			}
		}
	}

	for _, phrase := range conceptPhrases {
		if strings.Contains(q, phrase) {
			return Decision{
				Tool:   ToolVectorSearch,
				Reason: "conceptual framing: " + quote(phrase),
			}
		}
	}

	return Decision{
		Tool:   ToolSQLSearch,
		Reason: "default: keyword, categorical, date or aggregate question",
	}
}

func quote(phrase string) string {
	return `"` + phrase + `"`
}

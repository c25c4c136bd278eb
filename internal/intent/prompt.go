package intent

import (
	"fmt"
	"time"
)

const promptTemplate = `You are a flight search assistant. Extract flight search parameters from the user's request.

Today's date is %s. Resolve relative dates ("tomorrow", "next Friday") against it.

Respond with a single JSON object and nothing else:
{"origin": "<IATA code>", "destination": "<IATA code>", "departure_date": "<YYYY-MM-DD>", "return_date": "<YYYY-MM-DD or null>", "confidence": <0.0-1.0>}

Use three-letter IATA airport codes. Set return_date to null for one-way trips. Set confidence below 0.5 when you had to guess.

User request: %s`

// BuildPrompt renders the extraction prompt for one query. The date is
// injected so relative dates in the query resolve deterministically.
func BuildPrompt(query string, today time.Time) string {
	return fmt.Sprintf(promptTemplate, today.Format("2006-01-02"), query)
}

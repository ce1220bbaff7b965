package commentary

// Kind selects which prompt template a request uses.
type Kind string

const (
	KindSummary Kind = "summary"
	KindRating  Kind = "rating"
)

// promptTemplate pairs the model persona with the user prompt. The user
// prompt embeds the lyrics through the %s verb.
type promptTemplate struct {
	system string
	user   string
}

var promptTemplates = map[Kind]promptTemplate{
	KindSummary: {
		system: "You are an expert music analyst.",
		user:   "Summarize the theme and meaning of these \"Lyrics:\" in 3-4 sentences.  Be sure to highlight any controversial, positive, or negative themes in a candid light.\n\nLyrics:\n%s",
	},
	KindRating: {
		system: "You are an expert content reviewer for song lyrics.",
		user:   "Rate the following Lyrics: using the ESRB style rating system.  Provide a concise rating with a few bullet points to support your reasoning.\n\nLyrics:\n%s",
	},
}

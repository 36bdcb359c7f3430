// Package heuristic recovers structure from loosely-formatted educational
// text. It analyzes raw extracted text, restores lost line breaks, classifies
// lines into semantic blocks, and assembles stable markup from the result.
// Every function is a pure function of its inputs.
package heuristic

// SectionKeywords is the fixed table of educational section-header phrasings.
// It drives both section-boundary detection and header classification, and is
// never mutated at runtime.
var SectionKeywords = []string{
	"Learning Objectives",
	"Objectives",
	"Introduction",
	"Overview",
	"Key Concepts",
	"Key Terms",
	"Vocabulary",
	"Materials",
	"Procedure",
	"Directions",
	"Instructions",
	"Examples",
	"Practice Problems",
	"Guided Practice",
	"Independent Practice",
	"Discussion Questions",
	"Activities",
	"Assessment",
	"Homework",
	"Warm-Up",
	"Exit Ticket",
	"Review",
	"Summary",
	"Conclusion",
}

// transitionPhrases marks discourse moves that usually open a new paragraph.
var transitionPhrases = []string{
	"For example",
	"For instance",
	"In other words",
	"In addition",
	"On the other hand",
	"As a result",
	"In conclusion",
	"To summarize",
	"However",
	"Therefore",
	"Furthermore",
	"Meanwhile",
	"Next,",
	"First,",
	"Second,",
	"Third,",
	"Finally,",
}

// questionStarters marks phrasings that open a comprehension question.
var questionStarters = []string{
	"What is",
	"What are",
	"How do",
	"How does",
	"How many",
	"Why do",
	"Why does",
	"When do",
	"Where do",
	"Which of",
	"Who can",
	"Can you",
}

// abbreviations lists tokens whose trailing period never ends a sentence.
var abbreviations = []string{
	"Mr", "Mrs", "Ms", "Dr", "Prof", "Sr", "Jr", "St",
	"vs", "etc", "e.g", "i.e", "approx", "No", "Fig", "Eq",
	"cm", "mm", "km", "kg", "lb", "oz", "ft",
	"Jan", "Feb", "Mar", "Apr", "Jun", "Jul", "Aug", "Sep", "Sept", "Oct", "Nov", "Dec",
}

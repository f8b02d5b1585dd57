package analyzer

// stopWords is the fixed English stop-word set used by the tokenizer.
// Read-only after initialization; never mutated at request time.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "up": true, "about": true,
	"into": true, "through": true, "during": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "shall": true, "can": true, "need": true,
	"dare": true, "ought": true, "used": true, "it": true, "its": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "we": true, "they": true,
	"what": true, "which": true, "who": true, "whom": true, "when": true,
	"where": true, "why": true, "how": true, "all": true, "each": true,
	"every": true, "both": true, "few": true, "more": true, "most": true,
	"other": true, "some": true, "such": true, "no": true, "not": true,
	"only": true, "same": true, "so": true, "than": true, "too": true,
	"very": true, "just": true, "as": true, "if": true, "then": true,
	"because": true, "while": true, "although": true, "though": true,
	"unless": true, "until": true, "since": true, "after": true,
	"before": true, "above": true, "below": true, "between": true,
	"under": true, "over": true, "again": true, "further": true,
	"once": true, "here": true, "there": true, "own": true, "s": true,
	"t": true, "re": true, "ve": true, "ll": true, "d": true,
}

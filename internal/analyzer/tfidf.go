package analyzer

import "math"

// termFreq computes length-normalized term frequencies for a token sequence.
// Returns an empty map for an empty document.
func termFreq(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	total := float64(len(tokens))
	tf := make(map[string]float64, len(counts))
	for tok, c := range counts {
		tf[tok] = float64(c) / total
	}
	return tf
}

// buildVocabulary returns the deduplicated union of the token sequences in
// first-seen order. First-seen ordering keeps vector layout deterministic
// across calls with the same inputs.
func buildVocabulary(docs ...[]string) []string {
	seen := make(map[string]bool)
	var vocab []string
	for _, doc := range docs {
		for _, tok := range doc {
			if !seen[tok] {
				seen[tok] = true
				vocab = append(vocab, tok)
			}
		}
	}
	return vocab
}

// inverseDocFreq computes idf(t) = ln((1+N)/(1+df(t))) + 1 for a term over a
// corpus of token sequences. The formula generalizes to any corpus size even
// though the engine only ever builds two-document corpora.
func inverseDocFreq(term string, docs [][]string) float64 {
	df := 0
	for _, doc := range docs {
		for _, tok := range doc {
			if tok == term {
				df++
				break
			}
		}
	}
	if df == 0 {
		return 0.0
	}
	return math.Log(float64(1+len(docs))/float64(1+df)) + 1.0
}

// VectorizePair builds TF-IDF vectors for two token sequences over their
// shared vocabulary. Both vectors are aligned to the same term ordering. An
// empty token sequence produces an all-zero vector.
func VectorizePair(tokensA, tokensB []string) (vecA, vecB []float64) {
	vocab := buildVocabulary(tokensA, tokensB)
	docs := [][]string{tokensA, tokensB}

	idf := make(map[string]float64, len(vocab))
	for _, term := range vocab {
		idf[term] = inverseDocFreq(term, docs)
	}

	tfA := termFreq(tokensA)
	tfB := termFreq(tokensB)

	vecA = make([]float64, len(vocab))
	vecB = make([]float64, len(vocab))
	for i, term := range vocab {
		vecA[i] = tfA[term] * idf[term]
		vecB[i] = tfB[term] * idf[term]
	}
	return vecA, vecB
}

// Cosine returns the cosine similarity between two equal-length vectors in
// [0,1]. If either vector has zero magnitude the result is 0.0, never NaN.
func Cosine(vecA, vecB []float64) float64 {
	var dot, magA, magB float64
	n := min(len(vecA), len(vecB))
	for i := 0; i < n; i++ {
		dot += vecA[i] * vecB[i]
	}
	for _, a := range vecA {
		magA += a * a
	}
	for _, b := range vecB {
		magB += b * b
	}
	if magA == 0 || magB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// similarity computes the TF-IDF cosine similarity between two token
// sequences. Either sequence being empty yields 0.0.
func similarity(tokensA, tokensB []string) float64 {
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}
	vecA, vecB := VectorizePair(tokensA, tokensB)
	return Cosine(vecA, vecB)
}

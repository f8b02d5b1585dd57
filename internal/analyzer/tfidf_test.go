package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermFreq_NormalizedByLength(t *testing.T) {
	tf := termFreq([]string{"python", "python", "flask"})

	assert.InDelta(t, 2.0/3.0, tf["python"], 1e-9)
	assert.InDelta(t, 1.0/3.0, tf["flask"], 1e-9)
}

func TestTermFreq_EmptyDocument(t *testing.T) {
	assert.Empty(t, termFreq(nil))
}

func TestBuildVocabulary_FirstSeenOrder(t *testing.T) {
	vocab := buildVocabulary(
		[]string{"python", "django", "python"},
		[]string{"django", "redis"},
	)

	assert.Equal(t, []string{"python", "django", "redis"}, vocab)
}

func TestInverseDocFreq_TwoDocCorpus(t *testing.T) {
	docs := [][]string{
		{"python", "flask"},
		{"python", "django"},
	}

	// Term in both documents: ln(3/3)+1 = 1.
	assert.InDelta(t, 1.0, inverseDocFreq("python", docs), 1e-9)
	// Term in one document: ln(3/2)+1.
	assert.InDelta(t, math.Log(1.5)+1, inverseDocFreq("flask", docs), 1e-9)
	// Term outside the corpus.
	assert.Zero(t, inverseDocFreq("rust", docs))
}

func TestVectorizePair_AlignedVectors(t *testing.T) {
	vecA, vecB := VectorizePair(
		[]string{"python", "python", "flask"},
		[]string{"python", "django"},
	)

	require.Len(t, vecA, 3)
	require.Len(t, vecB, 3)

	rareIDF := math.Log(1.5) + 1
	// Vocabulary order: python, flask, django.
	assert.InDelta(t, 2.0/3.0, vecA[0], 1e-9)
	assert.InDelta(t, 1.0/3.0*rareIDF, vecA[1], 1e-9)
	assert.Zero(t, vecA[2])
	assert.InDelta(t, 0.5, vecB[0], 1e-9)
	assert.Zero(t, vecB[1])
	assert.InDelta(t, 0.5*rareIDF, vecB[2], 1e-9)
}

func TestVectorizePair_EmptyDocumentGivesZeroVector(t *testing.T) {
	vecA, vecB := VectorizePair(nil, []string{"python", "django"})

	require.Len(t, vecA, 2)
	for _, v := range vecA {
		assert.Zero(t, v)
	}
	assert.NotZero(t, vecB[0])
}

func TestCosine_SelfSimilarityIsOne(t *testing.T) {
	v := []float64{0.3, 0.0, 0.7, 1.2}

	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_ZeroVectorIsZeroNotNaN(t *testing.T) {
	zero := []float64{0, 0, 0}
	v := []float64{1, 2, 3}

	assert.Equal(t, 0.0, Cosine(zero, v))
	assert.Equal(t, 0.0, Cosine(v, zero))
	assert.Equal(t, 0.0, Cosine(zero, zero))
	assert.False(t, math.IsNaN(Cosine(zero, zero)))
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
}

func TestSimilarity_IdenticalTextsScoreHighest(t *testing.T) {
	a := Tokenize("Python developer with Django and PostgreSQL experience")
	b := Tokenize("Rust systems programmer working on embedded firmware")

	same := similarity(a, a)
	different := similarity(a, b)

	assert.InDelta(t, 1.0, same, 1e-9)
	assert.Less(t, different, same)
}

func TestSimilarity_EmptySide(t *testing.T) {
	tokens := Tokenize("Python developer")

	assert.Zero(t, similarity(nil, tokens))
	assert.Zero(t, similarity(tokens, nil))
}

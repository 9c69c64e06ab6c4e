// Package tfidf implements term-frequency/inverse-document-frequency
// vectorization and cosine similarity over report descriptions.
//
// An Index is built once per candidate pool (including the query
// description, so idf accounts for it) and is read-only afterwards, which
// makes concurrent scoring against it safe. Reusing an index against a
// different pool is a caller error: the document frequencies would belong to
// the wrong corpus and the similarity values would be meaningless.
package tfidf

import (
	"math"
	"sort"

	"github.com/Ramsey-B/fern/pkg/normalizers"
)

// Index holds corpus statistics for one candidate pool
type Index struct {
	docFreq   map[string]int
	totalDocs int
}

// Build constructs an index from a corpus of documents. Documents are
// normalized and tokenized with the shared match-text normalization, so
// callers can pass raw descriptions.
func Build(docs []string) *Index {
	ix := &Index{
		docFreq:   make(map[string]int),
		totalDocs: len(docs),
	}

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range normalizers.Tokenize(doc) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			ix.docFreq[tok]++
		}
	}

	return ix
}

// TotalDocs returns the number of documents the index was built from
func (ix *Index) TotalDocs() int {
	return ix.totalDocs
}

// DocFreq returns the number of indexed documents containing the term
func (ix *Index) DocFreq(term string) int {
	return ix.docFreq[term]
}

// IDF returns the smoothed inverse document frequency for a term:
// log((1+N)/(1+df)) + 1. The smoothing avoids division by zero for unseen
// terms and keeps idf ≥ 1 even for terms present in every document.
func (ix *Index) IDF(term string) float64 {
	df := ix.docFreq[term]
	return math.Log(float64(1+ix.totalDocs)/float64(1+df)) + 1
}

// Vector is a sparse tf-idf document vector keyed by term
type Vector map[string]float64

// Vector builds the L2-normalized tf-idf vector for a document. Empty text
// yields an empty vector.
func (ix *Index) Vector(text string) Vector {
	counts := make(map[string]int)
	for _, tok := range normalizers.Tokenize(text) {
		counts[tok]++
	}
	if len(counts) == 0 {
		return Vector{}
	}

	// sum in sorted term order so identical inputs always produce
	// bit-identical norms
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vec := make(Vector, len(counts))
	var sumSquares float64
	for _, term := range terms {
		w := float64(counts[term]) * ix.IDF(term)
		vec[term] = w
		sumSquares += w * w
	}

	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return Vector{}
	}
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

// Similarity computes the cosine similarity of two documents against this
// index, clamped to [0, 1]. Empty or vocabulary-disjoint documents score 0.
func (ix *Index) Similarity(a, b string) float64 {
	return Cosine(ix.Vector(a), ix.Vector(b))
}

// Cosine computes the dot product of two L2-normalized vectors, clamped to
// [0, 1]. Weights are non-negative so negative products cannot occur, but
// the clamp guards the bound regardless.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// iterate the smaller vector
	if len(b) < len(a) {
		a, b = b, a
	}
	// sum in sorted term order so identical inputs always produce
	// bit-identical dot products
	terms := make([]string, 0, len(a))
	for term := range a {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var dot float64
	for _, term := range terms {
		if wb, ok := b[term]; ok {
			dot += a[term] * wb
		}
	}
	if math.IsNaN(dot) {
		return 0
	}
	return math.Min(1, math.Max(0, dot))
}

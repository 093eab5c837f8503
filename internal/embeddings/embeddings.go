package embeddings

import (
	"context"
	"strconv"
	"strings"
)

// Vector is the ordered sequence of floats returned for one input text.
type Vector []float64

// String renders the vector as "[v1 v2 ...]" using the shortest
// representation that round-trips each component. This is the exact form
// written to stdout.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

// Embedder defines the embedding interface.
type Embedder interface {
	Embed(ctx context.Context, text string) (Vector, error)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"embed-probe/internal/app"
)

// embedText is the single fixed string submitted for embedding.
const embedText = "Mountains are beautiful in the fall."

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	deps.Log = deps.Log.With("run_id", uuid.NewString())

	if err := run(context.Background(), deps, os.Stdout); err != nil {
		deps.Log.Error("embedding request failed", "err", err)
		os.Exit(1)
	}
}

// run performs the single configure, request, extract, print sequence. The
// vector's textual form is the only thing written to out.
func run(ctx context.Context, deps app.Deps, out io.Writer) error {
	deps.Log.Info("requesting embedding", "deployment", deps.Config.Deployment, "text_len", len(embedText))
	vec, err := deps.Embedder.Embed(ctx, embedText)
	if err != nil {
		return err
	}
	deps.Log.Info("embedding received", "dimensions", len(vec))
	if _, err := fmt.Fprintln(out, vec.String()); err != nil {
		return fmt.Errorf("write vector: %w", err)
	}
	return nil
}

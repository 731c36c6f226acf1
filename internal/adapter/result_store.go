package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

const (
	resultPrefix      = "bruteforce"
	containerExt      = ".hqx"
	summaryFileName   = "bruteforce_summary.yaml"
	unnamedResultName = "unnamed"
	resultPerm        = 0o644
)

// ResultStore persists the artifacts of successful combinations.
type ResultStore interface {
	// SaveSuccess writes the mutated container and the decoded payload of the
	// index-th success. The two writes are independent: a failure of one is
	// reported in the joined error and does not prevent the other.
	SaveSuccess(ctx context.Context, dir m.Path, index uint64, name string, container, payload []byte) (m.Artifacts, error)

	// SaveSummary writes the run summary as YAML and returns its path.
	SaveSummary(ctx context.Context, dir m.Path, summary m.RunSummary) (m.Path, error)
}

type resultStore struct {
	files FileAdapter
}

// NewResultStore constructs a ResultStore writing through files.
func NewResultStore(files FileAdapter) ResultStore {
	return &resultStore{files: files}
}

// ResultNames returns the container and payload paths for the index-th
// success of a file whose embedded name is name.
func ResultNames(dir m.Path, index uint64, name string) (m.Path, m.Path) {
	base := fmt.Sprintf("%s_%d_%s", resultPrefix, index, sanitizeName(name))
	payload := filepath.Join(string(dir), base)

	return m.Path(payload + containerExt), m.Path(payload)
}

func sanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}

		return r
	}, name)

	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return unnamedResultName
	}

	return cleaned
}

func (s *resultStore) SaveSuccess(ctx context.Context, dir m.Path, index uint64, name string, container, payload []byte) (m.Artifacts, error) {
	containerPath, payloadPath := ResultNames(dir, index, name)

	var (
		artifacts m.Artifacts
		errs      []error
	)

	if err := s.files.WriteFileAtomic(ctx, containerPath, container, resultPerm); err != nil {
		slog.Error("Failed to write result container", "path", containerPath, "error", err)
		errs = append(errs, fmt.Errorf("write %s: %w", containerPath, err))
	} else {
		artifacts.Container = containerPath
	}

	if err := s.files.WriteFileAtomic(ctx, payloadPath, payload, resultPerm); err != nil {
		slog.Error("Failed to write decoded payload", "path", payloadPath, "error", err)
		errs = append(errs, fmt.Errorf("write %s: %w", payloadPath, err))
	} else {
		artifacts.Payload = payloadPath
	}

	return artifacts, errors.Join(errs...)
}

func (s *resultStore) SaveSummary(ctx context.Context, dir m.Path, summary m.RunSummary) (m.Path, error) {
	content, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	path := m.Path(filepath.Join(string(dir), summaryFileName))
	if err := s.files.WriteFileAtomic(ctx, path, content, resultPerm); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	return path, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package translate

import (
	"fmt"

	"go.uber.org/zap"
)

// Resolver looks a record name up in the namespace of available schemas.
// A qualified "package/Name" selects exactly that record; a bare name must
// match exactly one record across all packages.
type Resolver interface {
	Resolve(name string) (*RecordSchema, error)
}

// Failure records one requested or discovered name that could not be
// generated.
type Failure struct {
	Name string
	Err  error
}

// Report summarizes one generator run.
type Report struct {
	// Generated lists successfully persisted names in completion order.
	Generated []string
	// Artifacts maps each generated name to its module text.
	Artifacts map[string][]byte
	// Failures lists names that failed to resolve, translate, or persist.
	Failures []Failure
}

// Generator drives translation across the transitive closure of referenced
// records. Each distinct name is translated at most once; cycles in the
// dependency graph are processed once per node.
type Generator struct {
	Resolver   Resolver
	Translator Translator
	Sink       Sink
	Logger     *zap.Logger
}

// Run translates the requested records and every record they transitively
// reference. A name that fails does not stop the rest of the run; it is
// recorded in the report's Failures instead.
func (g *Generator) Run(names []string) *Report {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &Report{Artifacts: make(map[string][]byte)}

	// enqueued tracks every name ever appended to pending, so a name already
	// pending or already processed is never re-enqueued.
	enqueued := make(map[string]bool)
	pending := make([]string, 0, len(names))
	for _, name := range names {
		if !enqueued[name] {
			pending = append(pending, name)
			enqueued[name] = true
		}
	}

	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]

		record, err := g.Resolver.Resolve(name)
		if err != nil {
			logger.Error("failed to resolve message", zap.String("name", name), zap.Error(err))
			report.Failures = append(report.Failures, Failure{Name: name, Err: err})
			continue
		}
		logger.Debug("resolved message",
			zap.String("name", name),
			zap.String("package", record.Package),
			zap.Int("fields", len(record.Fields)))

		result, err := g.Translator.Translate(record)
		if err != nil {
			logger.Error("failed to translate message", zap.String("name", name), zap.Error(err))
			report.Failures = append(report.Failures, Failure{Name: name, Err: fmt.Errorf("translate %s: %w", name, err)})
			continue
		}

		if err := g.Sink.Persist(name, result.Text); err != nil {
			logger.Error("failed to persist message", zap.String("name", name), zap.Error(err))
			report.Failures = append(report.Failures, Failure{Name: name, Err: err})
			continue
		}

		report.Generated = append(report.Generated, name)
		report.Artifacts[name] = result.Text

		for _, dep := range result.Deps {
			if !enqueued[dep] {
				logger.Debug("queueing dependency", zap.String("name", dep), zap.String("of", name))
				pending = append(pending, dep)
				enqueued[dep] = true
			}
		}
	}

	return report
}

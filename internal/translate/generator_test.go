// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package translate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver serves records from a fixed map.
type fakeResolver struct {
	records map[string]*RecordSchema
	calls   []string
}

func (r *fakeResolver) Resolve(name string) (*RecordSchema, error) {
	r.calls = append(r.calls, name)
	record, ok := r.records[name]
	if !ok {
		return nil, fmt.Errorf("couldn't find the message %q", name)
	}
	return record, nil
}

// fakeTranslator emits a placeholder module and the dependencies configured
// per record name.
type fakeTranslator struct {
	deps map[string][]string
	fail map[string]bool
}

func (t *fakeTranslator) Name() string          { return "fake" }
func (t *fakeTranslator) FileExtension() string { return ".out" }

func (t *fakeTranslator) Translate(record *RecordSchema) (*Result, error) {
	name := record.FullName()
	if t.fail[name] {
		return nil, fmt.Errorf("boom")
	}
	return &Result{
		Text: []byte("module " + name),
		Deps: t.deps[name],
	}, nil
}

// memSink collects persisted artifacts in memory.
type memSink struct {
	artifacts map[string][]byte
}

func (s *memSink) Persist(name string, data []byte) error {
	if s.artifacts == nil {
		s.artifacts = make(map[string][]byte)
	}
	s.artifacts[name] = data
	return nil
}

func record(pkg, name string) *RecordSchema {
	return &RecordSchema{Package: pkg, Name: name}
}

func TestGenerator_Run_TransitiveClosure(t *testing.T) {
	resolver := &fakeResolver{records: map[string]*RecordSchema{
		"nav_msgs/Odometry":   record("nav_msgs", "Odometry"),
		"geometry_msgs/Pose":  record("geometry_msgs", "Pose"),
		"geometry_msgs/Point": record("geometry_msgs", "Point"),
	}}
	translator := &fakeTranslator{deps: map[string][]string{
		"nav_msgs/Odometry":  {"geometry_msgs/Pose"},
		"geometry_msgs/Pose": {"geometry_msgs/Point"},
	}}
	sink := &memSink{}

	gen := &Generator{Resolver: resolver, Translator: translator, Sink: sink}
	report := gen.Run([]string{"nav_msgs/Odometry"})

	assert.Empty(t, report.Failures)
	assert.Equal(t, []string{"nav_msgs/Odometry", "geometry_msgs/Pose", "geometry_msgs/Point"}, report.Generated)
	assert.Len(t, sink.artifacts, 3)
	assert.Equal(t, []byte("module geometry_msgs/Pose"), report.Artifacts["geometry_msgs/Pose"])
}

func TestGenerator_Run_CycleTerminates(t *testing.T) {
	resolver := &fakeResolver{records: map[string]*RecordSchema{
		"a/A": record("a", "A"),
		"b/B": record("b", "B"),
	}}
	translator := &fakeTranslator{deps: map[string][]string{
		"a/A": {"b/B"},
		"b/B": {"a/A"},
	}}
	sink := &memSink{}

	gen := &Generator{Resolver: resolver, Translator: translator, Sink: sink}
	report := gen.Run([]string{"a/A"})

	assert.Empty(t, report.Failures)
	assert.ElementsMatch(t, []string{"a/A", "b/B"}, report.Generated)
	// Each node of the cycle is resolved exactly once.
	assert.Equal(t, []string{"a/A", "b/B"}, resolver.calls)
}

func TestGenerator_Run_DuplicateRequests(t *testing.T) {
	resolver := &fakeResolver{records: map[string]*RecordSchema{
		"a/A": record("a", "A"),
	}}
	sink := &memSink{}

	gen := &Generator{Resolver: resolver, Translator: &fakeTranslator{}, Sink: sink}
	report := gen.Run([]string{"a/A", "a/A", "a/A"})

	assert.Equal(t, []string{"a/A"}, report.Generated)
	assert.Equal(t, []string{"a/A"}, resolver.calls)
}

func TestGenerator_Run_FailureIsolation(t *testing.T) {
	resolver := &fakeResolver{records: map[string]*RecordSchema{
		"a/A": record("a", "A"),
		"c/C": record("c", "C"),
	}}
	sink := &memSink{}

	gen := &Generator{Resolver: resolver, Translator: &fakeTranslator{}, Sink: sink}
	report := gen.Run([]string{"a/A", "missing/B", "c/C"})

	// The failed name does not stop the names queued after it.
	assert.Equal(t, []string{"a/A", "c/C"}, report.Generated)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "missing/B", report.Failures[0].Name)
	assert.Error(t, report.Failures[0].Err)
}

func TestGenerator_Run_TranslateFailureIsolation(t *testing.T) {
	resolver := &fakeResolver{records: map[string]*RecordSchema{
		"a/A": record("a", "A"),
		"b/B": record("b", "B"),
	}}
	translator := &fakeTranslator{fail: map[string]bool{"a/A": true}}
	sink := &memSink{}

	gen := &Generator{Resolver: resolver, Translator: translator, Sink: sink}
	report := gen.Run([]string{"a/A", "b/B"})

	assert.Equal(t, []string{"b/B"}, report.Generated)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "a/A", report.Failures[0].Name)
}

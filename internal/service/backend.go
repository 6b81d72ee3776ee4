package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"opencog_dashboard/internal/models"
)

// ServerInfo is what a successful connect reports about the server.
type ServerInfo struct {
	Version string `json:"version"`
}

// Backend is the OpenCog server as seen by the dashboard.
type Backend interface {
	Connect(ctx context.Context, url string) (ServerInfo, error)
	Evaluate(ctx context.Context, command string) (string, error)
	FetchAtoms(ctx context.Context) ([]models.Atom, error)
	ClearAtoms(ctx context.Context) error
}

// ----------- Simulation constants -----------
const (
	SimulatedVersion = "6.0.0"
	AtomSpaceHandle  = "#<AtomSpace@0x12345678>"
	EmptyList        = "()"
	AllAtomsLiteral  = `((ConceptNode "cat") (ConceptNode "animal") (InheritanceLink (ConceptNode "cat") (ConceptNode "animal")))`
	HelpText         = `Available commands:
- (cog-atomspace) - Get current atomspace
- (ConceptNode "name") - Create concept node
- (cog-get-atoms 'ConceptNode) - Get all concept nodes
- (cog-incoming atom) - Get incoming links
- (help) - Show this help`
)

// MockLatency is the artificial delay of each simulated call.
type MockLatency struct {
	Connect    time.Duration
	Evaluate   time.Duration
	FetchAtoms time.Duration
	ClearAtoms time.Duration
}

// DefaultMockLatency holds the simulated round-trip times used in production.
func DefaultMockLatency() MockLatency {
	return MockLatency{
		Connect:    1000 * time.Millisecond,
		Evaluate:   300 * time.Millisecond,
		FetchAtoms: 800 * time.Millisecond,
		ClearAtoms: 500 * time.Millisecond,
	}
}

// MockBackend answers every call with canned data after a fixed delay.
// It never fails on its own; only a cancelled context ends a call early.
type MockBackend struct {
	latency MockLatency
}

func NewMockBackend(latency MockLatency) *MockBackend {
	return &MockBackend{latency: latency}
}

// Ensure implementation of Backend interface at compile time.
var _ Backend = (*MockBackend)(nil)

func (b *MockBackend) Connect(ctx context.Context, url string) (ServerInfo, error) {
	if err := sleep(ctx, b.latency.Connect); err != nil {
		return ServerInfo{}, err
	}
	return ServerInfo{Version: SimulatedVersion}, nil
}

// Evaluate applies the first matching rule to command.
func (b *MockBackend) Evaluate(ctx context.Context, command string) (string, error) {
	if err := sleep(ctx, b.latency.Evaluate); err != nil {
		return "", err
	}
	return evaluateRules(command), nil
}

// FetchAtoms always returns the same three records.
func (b *MockBackend) FetchAtoms(ctx context.Context) ([]models.Atom, error) {
	if err := sleep(ctx, b.latency.FetchAtoms); err != nil {
		return nil, err
	}
	return FixedSnapshot(), nil
}

// ClearAtoms only waits; the snapshot served by FetchAtoms is untouched.
func (b *MockBackend) ClearAtoms(ctx context.Context) error {
	return sleep(ctx, b.latency.ClearAtoms)
}

// FixedSnapshot returns a fresh copy of the simulated AtomSpace contents.
func FixedSnapshot() []models.Atom {
	return []models.Atom{
		{Type: "ConceptNode", Name: "cat", TV: models.TruthValue{Strength: 1.0, Confidence: 0.9}},
		{Type: "ConceptNode", Name: "animal", TV: models.TruthValue{Strength: 1.0, Confidence: 0.8}},
		{Type: "InheritanceLink", Outgoing: []string{"cat", "animal"}, TV: models.TruthValue{Strength: 0.9, Confidence: 0.95}},
	}
}

var conceptNodeArg = regexp.MustCompile(`ConceptNode\s+"([^"]+)"`)

// evalRule pairs a substring trigger with its canned answer. Order matters.
type evalRule struct {
	contains string
	answer   func(command string) string
}

var evalRules = []evalRule{
	{"cog-atomspace", func(string) string { return AtomSpaceHandle }},
	{"ConceptNode", func(command string) string {
		concept := "unknown"
		if m := conceptNodeArg.FindStringSubmatch(command); m != nil {
			concept = m[1]
		}
		return `(ConceptNode "` + concept + `")`
	}},
	{"cog-incoming", func(string) string { return EmptyList }},
	{"cog-get-atoms", func(string) string { return AllAtomsLiteral }},
	{"help", func(string) string { return HelpText }},
}

func evaluateRules(command string) string {
	for _, r := range evalRules {
		if strings.Contains(command, r.contains) {
			return r.answer(command)
		}
	}
	return "Result: " + command + " executed successfully"
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

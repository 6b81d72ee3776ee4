package ui

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"opencog_dashboard/internal/models"
)

func initialView() models.DashboardView {
	return models.DashboardView{
		Active:    true,
		Status:    models.StatusIndicator{Class: models.IndicatorOffline, Text: "Disconnected"},
		Controls:  models.DisconnectedControls(),
		Fields:    models.Fields{ServerURL: "http://localhost:17020"},
		AtomPanel: models.AtomPanel{Kind: models.PanelPlaceholder},
	}
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestPage_InitialMarkup(t *testing.T) {
	r := newRenderer(t)
	var sb strings.Builder
	if err := r.Page(&sb, initialView()); err != nil {
		t.Fatalf("Page: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		"🧠 OpenCog Dashboard",
		`<span class="status-indicator offline"></span>`,
		`value="http://localhost:17020"`,
		`<button id="connect-btn" class="btn primary">Connect</button>`,
		`<button id="disconnect-btn" class="btn secondary" disabled>Disconnect</button>`,
		`<button id="execute-btn" class="btn primary" disabled>Execute</button>`,
		`<button id="refresh-atomspace" class="btn secondary" disabled>Refresh</button>`,
		`<button id="clear-atomspace" class="btn danger" disabled>Clear AtomSpace</button>`,
		"Welcome to OpenCog Dashboard! Connect to an OpenCog server to begin.",
		"Connect to view AtomSpace contents",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestFragments_AtomPanelKinds(t *testing.T) {
	r := newRenderer(t)
	atoms := []models.Atom{
		{Type: "ConceptNode", Name: "cat", TV: models.TruthValue{Strength: 1, Confidence: 0.9}},
		{Type: "ConceptNode", Name: "animal", TV: models.TruthValue{Strength: 1, Confidence: 0.8}},
		{Type: "InheritanceLink", Outgoing: []string{"cat", "animal"}, TV: models.TruthValue{Strength: 0.9, Confidence: 0.95}},
	}
	cases := []struct {
		name  string
		panel models.AtomPanel
		want  []string
	}{
		{"placeholder", models.AtomPanel{Kind: models.PanelPlaceholder}, []string{"Connect to view AtomSpace contents"}},
		{"loading", models.AtomPanel{Kind: models.PanelLoading}, []string{"Loading AtomSpace..."}},
		{"error", models.AtomPanel{Kind: models.PanelError, Error: "Error loading AtomSpace: boom"}, []string{`<div class="error">Error loading AtomSpace: boom</div>`}},
		{"empty", models.AtomPanel{Kind: models.PanelEmpty}, []string{"Total atoms: 0", "AtomSpace is empty"}},
		{"atoms", models.AtomPanel{Kind: models.PanelAtoms, Atoms: atoms, Summary: models.Summarize(atoms)}, []string{
			`<span class="atom-name">&#34;cat&#34;</span>`,
			`<span class="atom-name">cat → animal</span>`,
			`<span class="atom-tv">[0.9, 0.95]</span>`,
			"Total atoms: 3",
			"Nodes: 2, Links: 1",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := initialView()
			v.AtomPanel = tc.panel
			frags, err := r.Fragments(v)
			if err != nil {
				t.Fatalf("Fragments: %v", err)
			}
			got := frags[FragmentAtomSpace]
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Fatalf("fragment %q missing %q", got, w)
				}
			}
		})
	}
}

func TestFragments_OutputAndStatus(t *testing.T) {
	r := newRenderer(t)
	v := initialView()
	v.Status = models.StatusIndicator{Class: models.IndicatorOnline, Text: "Connected"}
	at := time.Date(2025, 3, 1, 9, 5, 7, 0, time.Local)
	v.Output = []models.OutputLogEntry{
		{Seq: 1, OccurredAt: at, Message: "> (cog-atomspace)"},
		{Seq: 2, OccurredAt: at, Message: "#<AtomSpace@0x12345678>"},
	}

	frags, err := r.Fragments(v)
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	if !strings.Contains(frags[FragmentStatus], `status-indicator online`) || !strings.Contains(frags[FragmentStatus], "Connected") {
		t.Fatalf("status=%q", frags[FragmentStatus])
	}
	out := frags[FragmentOutput]
	if !strings.Contains(out, `[09:05:07]</span> &gt; (cog-atomspace)`) {
		t.Fatalf("output not escaped or timestamped: %q", out)
	}
	if strings.Index(out, "Welcome") > strings.Index(out, "AtomSpace@") {
		t.Fatalf("welcome message must stay first")
	}
	if strings.Index(out, "cog-atomspace") > strings.Index(out, "AtomSpace@") {
		t.Fatalf("entries out of order")
	}
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"dashboard.js", "dashboard.css"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

package constraints

import (
	"reflect"
	"testing"

	"github.com/lumennet/pathfinder/pkg/topology"
)

func TestCombinations_SizeAndOrder(t *testing.T) {
	got := Combinations([]string{"delay", "bandwidth", "reliability"}, 2)
	want := [][]string{
		{"bandwidth", "delay"},
		{"bandwidth", "reliability"},
		{"delay", "reliability"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Combinations = %v, want %v", got, want)
	}
}

func TestCombinations_FullSet(t *testing.T) {
	got := Combinations([]string{"b", "a"}, 2)
	if len(got) != 1 || !reflect.DeepEqual(got[0], []string{"a", "b"}) {
		t.Errorf("k=n should yield exactly the full sorted set, got %v", got)
	}
}

func TestCombinations_OutOfRange(t *testing.T) {
	if got := Combinations([]string{"a", "b"}, 3); got != nil {
		t.Errorf("k>n should yield nil, got %v", got)
	}
	if got := Combinations([]string{"a"}, 0); got != nil {
		t.Errorf("k<1 should yield nil, got %v", got)
	}
}

func TestCombinations_CountMatchesBinomial(t *testing.T) {
	// C(5,2) = 10
	names := []string{"a", "b", "c", "d", "e"}
	if got := len(Combinations(names, 2)); got != 10 {
		t.Errorf("C(5,2) = %d, want 10", got)
	}
}

// twoPathGraph builds S-X-D (bandwidth 300) and S-Z-D (delay 100)
func twoPathGraph(t *testing.T) *topology.Graph {
	t.Helper()
	g, err := topology.NewBuilder().
		AddLink(topology.Interface{Node: "S", Port: "1"}, topology.Interface{Node: "X", Port: "1"},
			topology.Attributes{Bandwidth: floatPtr(300)}).
		AddLink(topology.Interface{Node: "X", Port: "2"}, topology.Interface{Node: "D", Port: "1"},
			topology.Attributes{Bandwidth: floatPtr(300)}).
		AddLink(topology.Interface{Node: "S", Port: "2"}, topology.Interface{Node: "Z", Port: "1"},
			topology.Attributes{Delay: floatPtr(100)}).
		AddLink(topology.Interface{Node: "Z", Port: "2"}, topology.Interface{Node: "D", Port: "2"},
			topology.Attributes{Delay: floatPtr(100)}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestBuildSubgraphs_MandatoryOnly(t *testing.T) {
	g := twoPathGraph(t)
	subs := BuildSubgraphs(g, Filter{
		Mandatory: Constraints{topology.AttrBandwidth: Num(200)},
	})

	if len(subs) != 1 {
		t.Fatalf("Expected 1 subgraph, got %d", len(subs))
	}
	// The delay-only links lack bandwidth and pass; all 4 links survive
	if subs[0].NumAllowed() != 4 {
		t.Errorf("Allowed links = %d, want 4", subs[0].NumAllowed())
	}
	if subs[0].Subset != nil {
		t.Errorf("Mandatory-only subgraph should carry no subset, got %v", subs[0].Subset)
	}
}

func TestBuildSubgraphs_FlexibleCombinations(t *testing.T) {
	g := twoPathGraph(t)
	subs := BuildSubgraphs(g, Filter{
		Flexible: Constraints{
			topology.AttrBandwidth: Num(200),
			topology.AttrDelay:     Num(250),
		},
		MinHits: 1,
	})

	if len(subs) != 2 {
		t.Fatalf("Expected C(2,1)=2 subgraphs, got %d", len(subs))
	}
	// Lexicographic: bandwidth first, then delay
	if subs[0].Subset[0] != topology.AttrBandwidth || subs[1].Subset[0] != topology.AttrDelay {
		t.Errorf("Subset order = %v, %v; want bandwidth then delay", subs[0].Subset, subs[1].Subset)
	}
	// Either subgraph keeps all links: absence passes. Both have 4.
	for i, sg := range subs {
		if sg.NumAllowed() != 4 {
			t.Errorf("Subgraph %d allowed = %d, want 4", i, sg.NumAllowed())
		}
	}
}

func TestBuildSubgraphs_FlexibleExcludesViolators(t *testing.T) {
	// One link violates delay outright: delay present and above threshold
	g, err := topology.NewBuilder().
		AddLink(topology.Interface{Node: "S", Port: "1"}, topology.Interface{Node: "D", Port: "1"},
			topology.Attributes{Delay: floatPtr(500)}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	subs := BuildSubgraphs(g, Filter{
		Flexible: Constraints{topology.AttrDelay: Num(250)},
		MinHits:  1,
	})
	if len(subs) != 1 {
		t.Fatalf("Expected 1 subgraph, got %d", len(subs))
	}
	if subs[0].NumAllowed() != 0 {
		t.Errorf("Violating link should be excluded, allowed = %d", subs[0].NumAllowed())
	}
}

func TestBuildSubgraphs_DesiredAndUndesiredLinks(t *testing.T) {
	g := twoPathGraph(t)
	all := g.Links()

	// Undesired drops one link
	subs := BuildSubgraphs(g, Filter{UndesiredLinks: []string{all[0].ID()}})
	if subs[0].Allowed(all[0].ID()) {
		t.Error("Undesired link should be excluded")
	}
	if subs[0].NumAllowed() != 3 {
		t.Errorf("Allowed = %d, want 3", subs[0].NumAllowed())
	}

	// Desired restricts to exactly the listed links
	subs = BuildSubgraphs(g, Filter{DesiredLinks: []string{all[0].ID(), all[1].ID()}})
	if subs[0].NumAllowed() != 2 {
		t.Errorf("Allowed = %d, want 2", subs[0].NumAllowed())
	}
}

func TestBuildSubgraphs_DisabledLinksExcluded(t *testing.T) {
	g, err := topology.NewBuilder().
		AddDisabledLink(topology.Interface{Node: "S", Port: "1"}, topology.Interface{Node: "D", Port: "1"},
			topology.Attributes{}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	subs := BuildSubgraphs(g, Filter{})
	if subs[0].NumAllowed() != 0 {
		t.Errorf("Disabled link should be excluded, allowed = %d", subs[0].NumAllowed())
	}
}

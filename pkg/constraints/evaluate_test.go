package constraints

import (
	"testing"

	"github.com/lumennet/pathfinder/pkg/topology"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// testLink builds a single-link graph and returns the link
func testLink(t *testing.T, attrs topology.Attributes) *topology.Link {
	t.Helper()
	g, err := topology.NewBuilder().
		AddLink(topology.Interface{Node: "a", Port: "1"}, topology.Interface{Node: "b", Port: "1"}, attrs).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g.Links()[0]
}

func TestPass_MinimumSemantics(t *testing.T) {
	link := testLink(t, topology.Attributes{Bandwidth: floatPtr(100)})

	if !Pass(link, topology.AttrBandwidth, Num(100)) {
		t.Error("bandwidth 100 should pass threshold 100")
	}
	if !Pass(link, topology.AttrBandwidth, Num(50)) {
		t.Error("bandwidth 100 should pass threshold 50")
	}
	if Pass(link, topology.AttrBandwidth, Num(200)) {
		t.Error("bandwidth 100 should fail threshold 200")
	}
}

func TestPass_MaximumSemantics(t *testing.T) {
	link := testLink(t, topology.Attributes{Delay: floatPtr(30), Priority: intPtr(5)})

	if !Pass(link, topology.AttrDelay, Num(30)) {
		t.Error("delay 30 should pass threshold 30")
	}
	if Pass(link, topology.AttrDelay, Num(10)) {
		t.Error("delay 30 should fail threshold 10")
	}
	if !Pass(link, topology.AttrPriority, Num(5)) {
		t.Error("priority 5 should pass threshold 5")
	}
	if Pass(link, topology.AttrPriority, Num(4)) {
		t.Error("priority 5 should fail threshold 4")
	}
}

func TestPass_Ownership(t *testing.T) {
	link := testLink(t, topology.Attributes{Ownership: []topology.Owner{{Name: "blue"}}})

	if !Pass(link, topology.AttrOwnership, Own("blue")) {
		t.Error("owner blue should pass")
	}
	if Pass(link, topology.AttrOwnership, Own("red")) {
		t.Error("owner red should fail")
	}
}

// TestPass_AbsentAttributeAlwaysPasses covers the contract that absence
// means unconstrained, never exclusion
func TestPass_AbsentAttributeAlwaysPasses(t *testing.T) {
	link := testLink(t, topology.Attributes{})

	for _, name := range Names() {
		th := Num(1)
		if name == topology.AttrOwnership {
			th = Own("anyone")
		}
		if !Pass(link, name, th) {
			t.Errorf("link without %s should pass its constraint", name)
		}
	}
}

func TestPass_UnknownAttributeFails(t *testing.T) {
	link := testLink(t, topology.Attributes{})
	if Pass(link, "jitter", Num(1)) {
		t.Error("unrecognized attribute should not pass")
	}
}

func TestEvaluateMandatory(t *testing.T) {
	link := testLink(t, topology.Attributes{
		Bandwidth: floatPtr(100),
		Delay:     floatPtr(20),
	})

	pass := Constraints{
		topology.AttrBandwidth: Num(50),
		topology.AttrDelay:     Num(50),
	}
	if !EvaluateMandatory(link, pass) {
		t.Error("link should pass both constraints")
	}

	fail := Constraints{
		topology.AttrBandwidth: Num(50),
		topology.AttrDelay:     Num(10),
	}
	if EvaluateMandatory(link, fail) {
		t.Error("link should fail when any constraint fails")
	}
}

func TestEvaluateSet_RestrictsToSubset(t *testing.T) {
	link := testLink(t, topology.Attributes{
		Bandwidth: floatPtr(100),
		Delay:     floatPtr(500),
	})
	cons := Constraints{
		topology.AttrBandwidth: Num(50),
		topology.AttrDelay:     Num(250), // link violates this
	}

	if !EvaluateSet(link, []string{topology.AttrBandwidth}, cons) {
		t.Error("bandwidth-only subset should pass")
	}
	if EvaluateSet(link, []string{topology.AttrDelay}, cons) {
		t.Error("delay-only subset should fail")
	}
	if EvaluateSet(link, []string{topology.AttrBandwidth, topology.AttrDelay}, cons) {
		t.Error("full subset should fail")
	}
}

func TestValidateThreshold(t *testing.T) {
	tests := []struct {
		name    string
		attr    string
		th      Threshold
		wantErr bool
	}{
		{"bandwidth ok", topology.AttrBandwidth, Num(100), false},
		{"bandwidth negative", topology.AttrBandwidth, Num(-1), true},
		{"reliability in range", topology.AttrReliability, Num(99.5), false},
		{"reliability above 100", topology.AttrReliability, Num(101), true},
		{"utilization below 0", topology.AttrUtilization, Num(-0.1), true},
		{"priority integer", topology.AttrPriority, Num(3), false},
		{"priority fractional", topology.AttrPriority, Num(3.5), true},
		{"ownership string", topology.AttrOwnership, Own("blue"), false},
		{"ownership missing owner", topology.AttrOwnership, Num(1), true},
		{"numeric attr given owner", topology.AttrDelay, Own("blue"), true},
		{"unknown attribute", "jitter", Num(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThreshold(tt.attr, tt.th)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThreshold(%s, %+v) error = %v, wantErr %v", tt.attr, tt.th, err, tt.wantErr)
			}
		})
	}
}

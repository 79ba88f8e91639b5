package generate

import (
	"reflect"
	"testing"

	"github.com/matzehuels/treefixture/pkg/errors"
	"github.com/matzehuels/treefixture/pkg/tree"
)

var twoLevels = []LevelSpec{
	{Count: 2, Title: "Node {i}", Type: "folder"},
	{Count: 2, Title: "Node {prefix}", Type: "article"},
}

func titles(nodes []*tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Title
	}
	return out
}

func TestBuildTwoLevels(t *testing.T) {
	tr, err := Build(twoLevels)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := titles(tr.Children); !reflect.DeepEqual(got, []string{"Node 1", "Node 2"}) {
		t.Errorf("root children = %v", got)
	}
	for _, n := range tr.Children {
		if n.Type != "folder" {
			t.Errorf("%s type = %q, want folder", n.Title, n.Type)
		}
		for _, c := range n.Children {
			if c.Type != "article" {
				t.Errorf("%s type = %q, want article", c.Title, c.Type)
			}
			if !c.IsLeaf() {
				t.Errorf("%s has %d children, want leaf", c.Title, len(c.Children))
			}
		}
	}

	if got := titles(tr.Children[0].Children); !reflect.DeepEqual(got, []string{"Node 1.1", "Node 1.2"}) {
		t.Errorf("Node 1 children = %v", got)
	}
	if got := titles(tr.Children[1].Children); !reflect.DeepEqual(got, []string{"Node 2.1", "Node 2.2"}) {
		t.Errorf("Node 2 children = %v", got)
	}
}

func TestBuildLevelSizes(t *testing.T) {
	tests := []struct {
		name  string
		specs []LevelSpec
		want  []int
	}{
		{"single level", []LevelSpec{{Count: 5, Title: "{i}"}}, []int{5}},
		{"two levels", twoLevels, []int{2, 4}},
		{"three levels", []LevelSpec{
			{Count: 3, Title: "{i}"},
			{Count: 1, Title: "{prefix}"},
			{Count: 4, Title: "{prefix}"},
		}, []int{3, 3, 12}},
		{"zero count ends branch", []LevelSpec{
			{Count: 2, Title: "{i}"},
			{Count: 0, Title: "{prefix}"},
			{Count: 3, Title: "{prefix}"},
		}, []int{2}},
		{"negative count", []LevelSpec{{Count: -1, Title: "{i}"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Build(tt.specs)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := tr.LevelSizes(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LevelSizes() = %v, want %v", got, tt.want)
			}
			if got, want := tr.Len(), Count(tt.specs); got != want {
				t.Errorf("Len() = %d, Count() = %d", got, want)
			}
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	tr, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil) error = %v", err)
	}
	if len(tr.Children) != 0 {
		t.Errorf("Build(nil) has %d children, want 0", len(tr.Children))
	}
}

func TestBuildPathsUnique(t *testing.T) {
	tr, err := Build([]LevelSpec{
		{Count: 3, Title: "{i}"},
		{Count: 11, Title: "{i}"},
		{Count: 2, Title: "{i}"},
	})
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	_ = tr.Walk(func(n *tree.Node, _ int) error {
		if seen[n.Path] {
			t.Errorf("duplicate path %s", n.Path)
		}
		seen[n.Path] = true
		return nil
	})
	if len(seen) != 3+33+66 {
		t.Errorf("saw %d paths, want %d", len(seen), 3+33+66)
	}
	if tr.Find("3.11.2") == nil {
		t.Error("path 3.11.2 missing")
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(twoLevels)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(twoLevels)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two builds of the same specs differ")
	}
}

func TestBuildDoesNotModifySpecs(t *testing.T) {
	specs := append([]LevelSpec(nil), twoLevels...)
	if _, err := Build(specs); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(specs, twoLevels) {
		t.Errorf("specs modified: %v", specs)
	}
}

func TestBuildTemplateError(t *testing.T) {
	_, err := Build([]LevelSpec{
		{Count: 2, Title: "Node {i}"},
		{Count: 2, Title: "Node {missing}"},
	})
	if err == nil {
		t.Fatal("Build() error = nil, want template error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidTemplate) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidTemplate)
	}
}

func TestBuildUnreachableTemplateNotChecked(t *testing.T) {
	_, err := Build([]LevelSpec{
		{Count: 0, Title: "{i}"},
		{Count: 2, Title: "{bad"},
	})
	if err != nil {
		t.Errorf("Build() error = %v, want nil for unreachable level", err)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		specs []LevelSpec
		want  int
	}{
		{nil, 0},
		{[]LevelSpec{{Count: 10}, {Count: 10}}, 110},
		{[]LevelSpec{{Count: 2}, {Count: 0}, {Count: 5}}, 2},
		{[]LevelSpec{{Count: 0}}, 0},
	}
	for _, tt := range tests {
		if got := Count(tt.specs); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.specs, got, tt.want)
		}
	}
}

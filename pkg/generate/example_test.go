package generate_test

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/treefixture/pkg/generate"
)

func ExampleBuild() {
	t, err := generate.Build([]generate.LevelSpec{
		{Count: 2, Title: "Node {i}", Type: "folder"},
		{Count: 2, Title: "Node {prefix}", Type: "article"},
	})
	if err != nil {
		panic(err)
	}

	for _, n := range t.Children {
		fmt.Println(n.Title, n.Type)
		for _, c := range n.Children {
			fmt.Println(" ", c.Title, c.Type)
		}
	}
	// Output:
	// Node 1 folder
	//   Node 1.1 article
	//   Node 1.2 article
	// Node 2 folder
	//   Node 2.1 article
	//   Node 2.2 article
}

func ExampleBuild_serialize() {
	t, _ := generate.Build([]generate.LevelSpec{
		{Count: 1, Title: "Node {i}", Type: "folder"},
		{Count: 1, Title: "Node {prefix}", Type: "article"},
	})

	b, _ := json.Marshal(t.Serialize(nil))
	fmt.Println(string(b))
	// Output:
	// [{"children":[{"title":"Node 1.1","type":"article"}],"title":"Node 1","type":"folder"}]
}

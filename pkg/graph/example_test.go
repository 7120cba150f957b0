package graph_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/holomap/pkg/graph"
)

func ExampleWriteGraph() {
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "character-1", Type: graph.NodeCharacter, Position: graph.Position{X: 400, Y: 300},
				Data: graph.NodeData{EntityID: 1, Label: "Luke Skywalker", ImageKey: "characters/1"}},
		},
	}

	if err := graph.WriteGraph(g, os.Stdout); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// {
	//   "nodes": [
	//     {
	//       "id": "character-1",
	//       "type": "character",
	//       "position": {
	//         "x": 400,
	//         "y": 300
	//       },
	//       "data": {
	//         "entity_id": 1,
	//         "label": "Luke Skywalker",
	//         "image_key": "characters/1"
	//       }
	//     }
	//   ],
	//   "edges": []
	// }
}

func ExampleReadGraph() {
	input := `{
		"nodes": [
			{"id": "character-1", "type": "character"},
			{"id": "film-1", "type": "film"}
		],
		"edges": [
			{"id": "character-1:character-film:film-1", "source": "character-1", "target": "film-1", "type": "character-film"}
		]
	}`

	g, err := graph.ReadGraph(strings.NewReader(input))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Nodes:", len(g.Nodes))
	fmt.Println("Edges:", len(g.Edges))
	fmt.Println("Children of character-1:", g.Children("character-1"))
	// Output:
	// Nodes: 2
	// Edges: 1
	// Children of character-1: [film-1]
}

func ExampleEdgeID() {
	fmt.Println(graph.EdgeID(graph.FilmID(4), graph.EdgeFilmStarship, graph.ScopedStarshipID(4, 10)))
	// Output: film-4:film-starship:film-4-starship-10
}

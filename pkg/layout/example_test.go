package layout_test

import (
	"fmt"

	"github.com/matzehuels/holomap/pkg/catalog"
	"github.com/matzehuels/holomap/pkg/layout"
)

func ExampleGenerate() {
	ch := catalog.Character{ID: 5, Name: "Pilot", Films: []int{10, 20}}
	films := []catalog.Film{{ID: 10, Title: "First"}, {ID: 20, Title: "Second"}}
	ships := []catalog.Starship{
		{ID: 100, Name: "X", Films: []int{10}},
		{ID: 101, Name: "Y", Films: []int{10, 20}},
	}

	g := layout.Generate(ch, films, ships)
	for _, n := range g.Nodes {
		fmt.Printf("%-8s %-22s (%4.0f, %4.0f)\n", n.Type, n.ID, n.Position.X, n.Position.Y)
	}
	fmt.Println(len(g.Edges), "edges")
	// Output:
	// character character-5            ( 400,  300)
	// film     film-10                ( 400,  -50)
	// starship film-10-starship-100   (  94, -439)
	// starship film-10-starship-101   ( 706, -439)
	// film     film-20                ( 400,  650)
	// starship film-20-starship-101   ( 400, 1100)
	// 5 edges
}

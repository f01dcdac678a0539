package transit_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/transitnet/transit"
)

// ExampleNetwork_Plan compares the plan kinds between Belén and Tres Rios
// on the built-in network.
func ExampleNetwork_Plan() {
	n, err := transit.NewDefault()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, kind := range transit.PlanKinds {
		p, err := n.Plan(context.Background(), kind, 1, 10)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%-11s %v weight=%d\n", kind, p.Stops, p.Weight)
	}
	// Output:
	// shortest    [1 2 3 4 5 6 7 8 9 10] weight=45
	// longest     [1 2 3 4 5 18 19 9 10] weight=46
	// established [1 2 3 4 5 6 7 8 9 10] weight=45
	// fewest      [1 2 3 4 5 18 19 9 10] weight=46
}

// ExampleNetwork_AddRoute builds a tiny network by hand.
func ExampleNetwork_AddRoute() {
	n := transit.NewNetwork()
	for _, name := range []string{"Depot", "Market", "Harbour"} {
		if _, err := n.AddStop(name, 0, 0); err != nil {
			fmt.Println(err)
			return
		}
	}
	r, _ := n.AddRoute("Harbour line", transit.Green, []int{1, 2, 3})
	_, _ = n.AddSchedule(r.ID, "6:45")

	for _, row := range n.RouteTable() {
		fmt.Println(row.Name, row.Start, "->", row.End, row.Times)
	}
	p, _ := n.Plan(context.Background(), transit.Established, 1, 3)
	fmt.Println(p)
	// Output:
	// Harbour line Depot -> Harbour [06:45]
	// Depot -> Market -> Harbour (10 min)
}

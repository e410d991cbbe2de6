package clusterkit_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/clusterkit"
)

func Example() {
	points := []clusterkit.Point{
		{X: 1, Y: 1}, {X: 1.5, Y: 2},
		{X: 8, Y: 8}, {X: 9, Y: 8},
	}

	eng, err := clusterkit.New(2, points)
	if err != nil {
		panic(err)
	}

	res, err := eng.ClusterData(context.Background(), []clusterkit.Point{{X: 0, Y: 0}, {X: 10, Y: 10}})
	if err != nil {
		panic(err)
	}

	fmt.Println(res.State, res.Iterations)
	for k, c := range res.Centroids {
		fmt.Println(k, c, len(res.Clusters[k]))
	}
	// Output:
	// converged 2
	// 0 [1.25,1.5] 2
	// 1 [8.5,8] 2
}

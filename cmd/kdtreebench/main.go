// Command kdtreebench builds a random point or box index, reports how long
// the build took (build subcommand), and runs a single range or nearest
// query against it, printing how many elements matched; the query itself
// is not timed. It exists purely to give the core a
// runnable demonstration harness; the index construction and query
// algorithms it exercises live in the root kdtree package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkern/kdtree"
	"github.com/dkern/kdtree/bench"
)

var (
	numElements int
	extent      float64
	maxSize     float64
	maxPerNode  int
	seed        int64
	useBoxes    bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kdtreebench",
		Short: "Build a random box/point index and run queries against it",
	}
	root.PersistentFlags().IntVar(&numElements, "elements", 100000, "number of elements to index")
	root.PersistentFlags().Float64Var(&extent, "extent", 1000, "side length of the sampling area")
	root.PersistentFlags().Float64Var(&maxSize, "max-size", 5, "max box side length (boxes only)")
	root.PersistentFlags().IntVar(&maxPerNode, "max-per-node", kdtree.DefaultMaxElementsPerNode, "max elements per leaf")
	root.PersistentFlags().Int64Var(&seed, "seed", 1, "random seed")
	root.PersistentFlags().BoolVar(&useBoxes, "boxes", false, "index boxes instead of points")

	root.AddCommand(buildCmd(), rangeCmd(), nearestCmd())
	return root
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the index once and report how long it took",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, elapsed, err := build()
			if err != nil {
				return err
			}
			fmt.Printf("built %d elements in %s\n", numElements, elapsed)
			return nil
		},
	}
}

func rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range",
		Short: "Run a single range query covering a quarter of the sampling area",
		RunE: func(cmd *cobra.Command, args []string) error {
			if useBoxes {
				_, tr, _, err := build()
				if err != nil {
					return err
				}
				return runBoxRange(tr)
			}
			tr, _, _, err := build()
			if err != nil {
				return err
			}
			return runPointRange(tr)
		},
	}
}

func nearestCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Run a single nearest-neighbor query",
		RunE: func(cmd *cobra.Command, args []string) error {
			if useBoxes {
				_, tr, _, err := build()
				if err != nil {
					return err
				}
				return runBoxNearest(tr, k)
			}
			tr, _, _, err := build()
			if err != nil {
				return err
			}
			return runPointNearest(tr, k)
		},
	}
	cmd.Flags().IntVar(&k, "k", 10, "number of neighbors to find")
	return cmd
}

// build constructs either a point or box tree depending on --boxes, timing
// it with bench.Timed so construction cost is isolated from workload setup.
func build() (pointTree *kdtree.Tree[bench.Point], boxTree *kdtree.Tree[bench.Rect], elapsed interface {
	String() string
}, err error) {
	if useBoxes {
		elements := bench.RandomRects(numElements, extent, maxSize, seed)
		var buildErr error
		dur := bench.Timed(func() {
			boxTree, buildErr = kdtree.New(elements, bench.RectKey, maxPerNode)
		})
		return nil, boxTree, dur, buildErr
	}
	elements := bench.RandomPoints(numElements, extent, seed)
	var buildErr error
	dur := bench.Timed(func() {
		pointTree, buildErr = kdtree.New(elements, bench.PointKey, maxPerNode)
	})
	return pointTree, nil, dur, buildErr
}

func runPointRange(tr *kdtree.Tree[bench.Point]) error {
	q := kdtree.Box{Min: kdtree.Vector{}, Max: kdtree.Vector{X: extent / 2, Y: extent / 2}}
	it, err := tr.RangeQuery(q)
	if err != nil {
		return err
	}
	count := 0
	for {
		if _, _, ok := it.Next(); !ok {
			break
		}
		count++
	}
	fmt.Printf("range query matched %d of %d points\n", count, tr.ElementCount())
	return nil
}

func runBoxRange(tr *kdtree.Tree[bench.Rect]) error {
	q := kdtree.Box{Min: kdtree.Vector{}, Max: kdtree.Vector{X: extent / 2, Y: extent / 2}}
	it, err := tr.RangeQuery(q)
	if err != nil {
		return err
	}
	count := 0
	for {
		if _, _, ok := it.Next(); !ok {
			break
		}
		count++
	}
	fmt.Printf("range query matched %d of %d boxes\n", count, tr.ElementCount())
	return nil
}

func runPointNearest(tr *kdtree.Tree[bench.Point], k int) error {
	target := kdtree.Vector{X: extent / 2, Y: extent / 2}
	results, err := tr.NearestQuery(target, k, 0)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("found 0 nearest points")
		return nil
	}
	fmt.Printf("found %d nearest points, closest at d^2=%.4f\n", len(results), results[0].SquaredDistance)
	return nil
}

func runBoxNearest(tr *kdtree.Tree[bench.Rect], k int) error {
	target := kdtree.Vector{X: extent / 2, Y: extent / 2}
	results, err := tr.NearestQuery(target, k, 0)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("found 0 nearest boxes")
		return nil
	}
	fmt.Printf("found %d nearest boxes, closest at d^2=%.4f\n", len(results), results[0].SquaredDistance)
	return nil
}

package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/render/nodelink"
)

func ExampleToDOT() {
	steps := flow.Segment("Start the process. Check if ready. End.")
	dot := nodelink.ToDOT(steps, nodelink.Options{})

	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// "step-0" -> "step-1";
	// "step-1" -> "step-2";
}

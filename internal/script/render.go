package script

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"
)

type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

func entryProps(e Entry) []string {
	var props []string
	if e.Err != nil {
		props = append(props, fmt.Sprintf("error: %v", e.Err))
	} else if e.Result != "" {
		props = append(props, fmt.Sprintf("result: %s", e.Result))
	}
	return append(props,
		fmt.Sprintf("len: %d", e.Len),
		fmt.Sprintf("cap: %d", e.Cap),
		fmt.Sprintf("version: %d", e.Version),
		fmt.Sprintf("items: %v", e.Items),
	)
}

func convertToTree(t *Trace) treeNode {
	root := treeNode{
		Label: "script",
		Props: []string{
			fmt.Sprintf("steps: %d", len(t.Entries)),
			fmt.Sprintf("failed: %d", t.Failed()),
			fmt.Sprintf("reallocations: %d", t.Metrics.Reallocations),
			fmt.Sprintf("utilization: %.2f", t.Metrics.Utilization),
		},
	}
	if t.Slab != nil {
		root.Props = append(root.Props,
			fmt.Sprintf("slab: %d/%d slots in %d chunks", t.Slab.SizeInUse, t.Slab.Capacity, t.Slab.NumChunks))
	}
	for i, e := range t.Entries {
		root.Children = append(root.Children, treeNode{
			Label: fmt.Sprintf("#%d %s", i+1, e.Step),
			Props: entryProps(e),
		})
	}
	return root
}

// RenderTree writes the trace as a fancy ascii tree.
func RenderTree(w io.Writer, t *Trace) error {
	_, err := fmt.Fprintln(w, asciitree.RenderFancy(convertToTree(t)))
	return err
}

// RenderText writes one line per step.
func RenderText(w io.Writer, t *Trace) error {
	for i, e := range t.Entries {
		outcome := e.Result
		if e.Err != nil {
			outcome = "error: " + e.Err.Error()
		}
		if _, err := fmt.Fprintf(w, "%3d %-32s len=%d cap=%d version=%d items=%v %s\n",
			i+1, e.Step, e.Len, e.Cap, e.Version, e.Items, outcome); err != nil {
			return err
		}
	}
	return nil
}

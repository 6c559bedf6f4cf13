// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package inspect

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes a flat, human-readable table of the leaves of an
// introspection result. Rows appear in traversal order; nested positions are
// shown as paths like "model.layers[3]".
func Render(w io.Writer, res Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PATH", "TYPE", "SHAPE", "SIZE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	appendRows(table, res.Tree, "")

	if res.TotalSizeMB > 0 {
		table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%.2fMB", res.TotalSizeMB)})
		table.SetFooterAlignment(tablewriter.ALIGN_LEFT)
	}
	table.Render()
}

func appendRows(table *tablewriter.Table, v Value, path string) {
	switch node := v.(type) {
	case Leaf:
		table.Append(leafRow(node.X, path))
	case Sequence:
		for i, child := range node {
			appendRows(table, child, fmt.Sprintf("%s[%d]", path, i))
		}
	case *Mapping:
		node.Range(func(key string, child Value) bool {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			appendRows(table, child, childPath)
			return true
		})
	}
}

func leafRow(x any, path string) []string {
	if path == "" {
		path = "."
	}
	if desc, ok := x.(Descriptor); ok {
		tag := desc.DType
		if tag == "" {
			tag = desc.Type
		}
		return []string{path, tag, fmt.Sprintf("%v", desc.Shape), desc.Size}
	}
	return []string{path, fmt.Sprintf("%T", x), "", ""}
}

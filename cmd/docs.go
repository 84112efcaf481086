package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildPage = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// pageType codes whether the command is a grandchild, child, etc
type pageType int

const (
	root pageType = iota
	child
	childParent
	grandchild
)

// page is for describing the position/info for a command doc page
type page struct {
	pageType    pageType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// map from the base Markdown file name to its build page
var pages = map[string]page{
	"genomatch":               {root, "genomatch", 0, "", ""},
	"genomatch_index":         {child, "index", 0, "genomatch", ""},
	"genomatch_find":          {childParent, "find", 1, "genomatch", ""},
	"genomatch_find_fragment": {grandchild, "fragment", 0, "find", "genomatch"},
	"genomatch_find_related":  {grandchild, "related", 1, "find", "genomatch"},
}

// docsCmd writes Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for the commands",
	Args:   cobra.MaximumNArgs(1),
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "docs"
		if len(args) > 0 {
			dir = args[0]
		}
		return makeDocs(dir)
	},
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %v", dir, err)
	}
	return doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	p, ok := pages[pageName(filename)]
	if !ok {
		return ""
	}

	switch p.pageType {
	case root:
		return fmt.Sprintf(rootPage, p.title, p.navOrder)
	case child:
		return fmt.Sprintf(childPage, p.title, p.parent, p.navOrder)
	case childParent:
		return fmt.Sprintf(childParentPage, p.title, p.parent, p.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildPage, p.title, p.parent, p.grandParent, p.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := pageName(filename)
	if base == "genomatch" {
		return "/"
	}
	return base
}

// pageName strips the directory and extension from a doc file name
func pageName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

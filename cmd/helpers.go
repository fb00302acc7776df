package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vedux98/UX-Audit/internal/audit"
	"github.com/vedux98/UX-Audit/internal/figma"
	"github.com/vedux98/UX-Audit/internal/store"
)

// openStore returns the settings store, honoring --settings-file when the
// command defines it.
func openStore(cmd *cobra.Command) (*store.FileStore, error) {
	if f := cmd.Flags().Lookup("settings-file"); f != nil && f.Value.String() != "" {
		return store.NewFileStore(f.Value.String()), nil
	}
	path, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}
	return store.NewFileStore(path), nil
}

// loadSettings layers configuration: defaults, then the persisted snapshot,
// then the UXAUDIT_API_KEY environment variable when the snapshot has no
// key of its own.
func loadSettings(cmd *cobra.Command) (audit.Settings, error) {
	st, err := openStore(cmd)
	if err != nil {
		return audit.DefaultSettings(), err
	}
	settings, err := store.LoadSettings(st)
	if err != nil {
		return audit.DefaultSettings(), err
	}
	if settings.APIKey == "" {
		settings.APIKey = os.Getenv("UXAUDIT_API_KEY")
	}
	return settings, nil
}

// resolveSelection picks the audit roots from a parsed document using the
// shared selection flags: --node, --page, --name. With no flags it selects
// every top-level frame of the first page.
func resolveSelection(cmd *cobra.Command, doc *figma.Document) ([]*figma.Node, error) {
	nodeID, _ := cmd.Flags().GetString("node")
	pageName, _ := cmd.Flags().GetString("page")
	nameFilter, _ := cmd.Flags().GetString("name")

	if nodeID != "" {
		n := doc.Node(nodeID)
		if n == nil {
			return nil, fmt.Errorf("no node with id %q", nodeID)
		}
		return []*figma.Node{n}, nil
	}

	if nameFilter != "" {
		var selection []*figma.Node
		for _, n := range doc.FindByName(nameFilter) {
			if figma.IsAuditRoot(n) {
				selection = append(selection, n)
			}
		}
		if len(selection) == 0 {
			return nil, fmt.Errorf("no auditable node named like %q", nameFilter)
		}
		return selection, nil
	}

	var page *figma.Node
	if pageName != "" {
		page = doc.Page(pageName)
		if page == nil {
			return nil, fmt.Errorf("no page named %q", pageName)
		}
	} else {
		pages := doc.Pages()
		if len(pages) == 0 {
			return nil, fmt.Errorf("document has no pages")
		}
		page = pages[0]
	}

	selection := figma.FrameRoots(page)
	if len(selection) == 0 {
		return nil, fmt.Errorf("page %q has no auditable frames", page.Name)
	}
	return selection, nil
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().String("node", "", "Audit the node with this ID")
	cmd.Flags().String("page", "", "Audit every frame of the page with this name")
	cmd.Flags().String("name", "", "Audit nodes whose name contains this text")
}

// MCP tool handlers receive loosely-typed argument maps; these helpers pull
// values out with defaults.

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// displayNames joins the selection names for report headings.
func displayNames(selection []*figma.Node) string {
	names := make([]string, len(selection))
	for i, n := range selection {
		names[i] = n.Name
	}
	return strings.Join(names, ", ")
}

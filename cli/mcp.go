package cli

import (
	"github.com/ajikko/aji/mcp"
)

func init() {
	rootCmd.AddCommand(mcp.Command())
}

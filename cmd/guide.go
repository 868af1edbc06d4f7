// guide.go implements "pathoracle guide" for documentation access.
//
// Design: Guides are embedded in the binary via the guide package. Terminal
// output gets glamour rendering for readability; pipe/redirect gets raw
// markdown.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/pathoracle/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Show the pathoracle guide",
	Long: `Outputs the pathoracle guide.

  pathoracle guide            # main guide
  pathoracle guide dialects   # how each library behaves
  pathoracle guide check      # writing and checking suites`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		content, err := guide.Get(name)
		if err != nil {
			available, listErr := guide.List()
			if listErr != nil {
				return listErr
			}
			return PrintJSONError(c, fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
		}

		if JSON() {
			return PrintJSON(map[string]string{"topic": name, "content": content})
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			rendered, err := glamour.Render(content, "dark")
			if err == nil {
				fmt.Fprint(Out(), rendered)
				return nil
			}
		}

		fmt.Fprint(Out(), content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

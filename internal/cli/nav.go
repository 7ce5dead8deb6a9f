package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/navigate"
)

var navCmd = &cobra.Command{
	Use:   "nav [query]",
	Short: "Quick-navigation URL store",
	Long: `List stored URLs as a script-filter item list, optionally
filtered by a query against their descriptions. Stored URLs may carry
{var:domain} and {var:id} placeholders filled in at invocation time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		items, err := store.Filter(query)
		if err != nil {
			return err
		}
		return emitItems(alfred.ItemList{Items: items})
	},
}

var navAddCmd = &cobra.Command{
	Use:   "add <url> <description>...",
	Short: "Store a URL",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		url := args[0]
		desc := strings.Join(args[1:], " ")
		count, err := store.Add(url, desc)
		if err != nil {
			return err
		}
		return emit(alfred.NewEnvelope(url, "added "+desc, pathCountTitle(count)))
	},
}

var navDeleteCmd = &cobra.Command{
	Use:   "delete [url]",
	Short: "Remove a stored URL",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		url := storedURL(args)
		if url == "" {
			return fmt.Errorf("no url given")
		}
		count, err := store.Delete(url)
		if err != nil {
			return err
		}
		return emit(alfred.NewEnvelope("", "deleted "+url, pathCountTitle(count)))
	},
}

var navUpdateCmd = &cobra.Command{
	Use:   "update <url> <description>...",
	Short: "Replace the description of a stored URL",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		url := args[0]
		desc := strings.Join(args[1:], " ")
		count, err := store.Update(url, desc)
		if err != nil {
			return err
		}
		return emit(alfred.NewEnvelope(url, "updated "+desc, pathCountTitle(count)))
	},
}

var navDescCmd = &cobra.Command{
	Use:   "desc [url]",
	Short: "Show the description of a stored URL",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		url := storedURL(args)
		if url == "" {
			return fmt.Errorf("no url given")
		}
		desc, err := store.Description(url)
		if err != nil {
			return err
		}
		return emit(alfred.NewEnvelope(desc, desc, url))
	},
}

var navURLCmd = &cobra.Command{
	Use:   "url [stored] [browser]",
	Short: "Fill a stored URL's domain placeholder",
	Long: `Fill the {var:domain} placeholder of a stored URL from the
frontmost browser tab's URL. WordPress admin URLs resolve the site
domain behind wp-admin and wp-login.php.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stored := os.Getenv("url")
		browser := os.Getenv("browser_url")
		if len(args) > 0 {
			stored = args[0]
		}
		if len(args) > 1 {
			browser = args[1]
		}

		domain := navigate.Domain(browser)
		if strings.Contains(browser, "wp-") {
			if d := navigate.WordpressDomain(browser); d != "" {
				domain = d
			}
		}

		filled := navigate.FillDomain(stored, domain)
		return emit(alfred.NewEnvelope(filled, filled, "Opening"))
	},
}

var navTemplateCmd = &cobra.Command{
	Use:   "template [browser]",
	Short: "Turn the current page URL into a store template",
	Long: `Replace the domain of the browser URL with {var:domain} and
upgrade http to https, producing a URL ready to store.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		browser := os.Getenv("browser_url")
		if len(args) > 0 {
			browser = args[0]
		}
		template, domain := navigate.ScriptFilterURL(browser)
		env := alfred.NewEnvelope(template, template, "Template").
			Var("domain", domain)
		return emit(env)
	},
}

var navIDCmd = &cobra.Command{
	Use:   "id <id>",
	Short: "Fill a stored URL's id placeholder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stored := os.Getenv("url")
		filled := navigate.FillID(stored, args[0])
		return emit(alfred.NewEnvelope(filled, filled, "Opening"))
	},
}

var navCheckIDCmd = &cobra.Command{
	Use:   "check-id",
	Short: "Report whether the selected URL needs an id",
	RunE: func(cmd *cobra.Command, args []string) error {
		stored := storedURL(args)
		arg := "N"
		if navigate.HasVarID(stored) {
			arg = "Y"
		}
		return emit(alfred.NewEnvelope(arg, "", ""))
	},
}

var navImportCmd = &cobra.Command{
	Use:   "import <paths.json>",
	Short: "Import URLs from a legacy paths.json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		imported, err := store.ImportJSON(f)
		if err != nil {
			return err
		}
		count, err := store.Count()
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("imported %d path(s)", imported)
		return emit(alfred.NewEnvelope("", msg, pathCountTitle(count)))
	},
}

func openStore() (*navigate.Store, error) {
	if cfg.Store == "" {
		return nil, fmt.Errorf("store path must be configured")
	}
	return navigate.Open(cfg.Store)
}

// storedURL resolves the URL a nav action targets: the url workflow
// variable from the selected script-filter item, or the first argument.
func storedURL(args []string) string {
	if v := os.Getenv("url"); v != "" {
		return v
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func pathCountTitle(count int) string {
	return fmt.Sprintf("%d paths", count)
}

func init() {
	navCmd.AddCommand(navAddCmd)
	navCmd.AddCommand(navDeleteCmd)
	navCmd.AddCommand(navUpdateCmd)
	navCmd.AddCommand(navDescCmd)
	navCmd.AddCommand(navURLCmd)
	navCmd.AddCommand(navTemplateCmd)
	navCmd.AddCommand(navIDCmd)
	navCmd.AddCommand(navCheckIDCmd)
	navCmd.AddCommand(navImportCmd)
	rootCmd.AddCommand(navCmd)
}

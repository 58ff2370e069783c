package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/logger"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the careers suggestions are chosen from",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}
		defer logger.Sync()

		c, err := loadCatalog(logger)
		if err != nil {
			logger.Fatal("loading catalog", zap.Error(err))
		}

		output, _ := cmd.Flags().GetString("output")
		if err := printCatalog(cmd.OutOrStdout(), c, output); err != nil {
			logger.Fatal("printing catalog", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
}

func printCatalog(out io.Writer, c *catalog.Catalog, format string) error {
	switch format {
	case outputJSON:
		pretty, err := json.MarshalIndent(c.Items, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(pretty))
		return err
	case outputText:
		for _, item := range c.Items {
			if _, err := fmt.Fprintf(out, "%s [%s]\n  skills: %s\n  timeline: %s\n",
				item.Title, item.ID, strings.Join(item.SkillsNeeded, ", "), item.Timeline,
			); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

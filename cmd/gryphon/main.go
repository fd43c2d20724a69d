package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/akopachev/gryphon/pkg/uci"
	"github.com/akopachev/gryphon/pkg/variant"
)

const name = "Gryphon"

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var root = &cobra.Command{
		Use:           "gryphon",
		Short:         "variant catalog tool for the Gryphon engine",
		Version:       fmt.Sprintf("%v %v %v %v", versionName, buildDate, gitRevision, runtime.Version()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(listCmd(), loadCmd(), checkCmd(), optionsCmd())
	return root
}

func newLogger() *zap.SugaredLogger {
	var cfg = zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	var logger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

func listCmd() *cobra.Command {
	var variantsFile string
	var cmd = &cobra.Command{
		Use:   "list",
		Short: "print the variant catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var log = newLogger()
			defer log.Sync()

			var store = variant.NewStore()
			defer store.ClearAll()
			store.Init()
			if variantsFile != "" {
				if err := store.LoadFile(variantsFile, log); err != nil {
					return err
				}
			}
			printKeys(cmd, store)
			return nil
		},
	}
	cmd.Flags().StringVar(&variantsFile, "variants-file", "", "additional variant configuration file")
	return cmd
}

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>...",
		Short: "load variant configuration files and print the resulting catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var log = newLogger()
			defer log.Sync()

			var store = variant.NewStore()
			defer store.ClearAll()
			store.Init()
			// Files apply in argument order, so later files may extend
			// templates defined by earlier ones.
			for _, path := range args {
				if err := store.LoadFile(path, log.With("file", path)); err != nil {
					return err
				}
			}
			printKeys(cmd, store)
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "validate variant configuration files without registering anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var log = newLogger()
			defer log.Sync()

			// Each file is checked against its own store seeded with the
			// built-ins, so files cannot see each other's templates.
			var g errgroup.Group
			for _, path := range args {
				var path = path
				g.Go(func() error {
					var store = variant.NewStore()
					defer store.ClearAll()
					store.Init()
					return store.CheckFile(path, log.With("file", path))
				})
			}
			return g.Wait()
		},
	}
}

func optionsCmd() *cobra.Command {
	var variantsFile string
	var cmd = &cobra.Command{
		Use:   "options",
		Short: "print the UCI option declarations for the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var log = newLogger()
			defer log.Sync()

			var store = variant.NewStore()
			defer store.ClearAll()
			store.Init()
			if variantsFile != "" {
				if err := store.LoadFile(variantsFile, log); err != nil {
					return err
				}
			}
			var settings = uci.NewSettings()
			settings.VariantPath = variantsFile
			for _, line := range uci.EngineOptions(store, &settings).UciStrings() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variantsFile, "variants-file", "", "additional variant configuration file")
	return cmd
}

func printKeys(cmd *cobra.Command, store *variant.Store) {
	for _, name := range store.GetKeys() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
}

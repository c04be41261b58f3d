package cli

import (
	"fmt"

	"github.com/arthur-debert/stampstore/internal/commands"
	"github.com/arthur-debert/stampstore/internal/version"
	"github.com/arthur-debert/stampstore/pkg/config"
	"github.com/arthur-debert/stampstore/pkg/filesystem"
	"github.com/arthur-debert/stampstore/pkg/logging"
	"github.com/arthur-debert/stampstore/pkg/paths"
	"github.com/arthur-debert/stampstore/pkg/store"
	"github.com/arthur-debert/stampstore/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// annotationStandalone marks commands that run without config or a store
const annotationStandalone = "stampstore/standalone"

// app carries the global flags and the store built from them
type app struct {
	verbosity  int
	rootFlag   string
	configFlag string
	memory     bool

	store *store.Store
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "stampstore",
		Short: commands.MsgRootShort,
		Long: `stampstore keeps one record per 14-character timestamp key on the local
filesystem. A key such as 20241120093015 is stored at
<root>/20241120/093015; directories appear with their first record and go
away with their last.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationStandalone] == "true" {
				logging.SetupLogger(a.verbosity)
				return nil
			}
			if err := a.open(); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Str("root", a.store.Root()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.rootFlag, "root", "", commands.MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&a.configFlag, "config", "", commands.MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.memory, "memory", false, commands.MsgFlagMemory)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newKeyCmd())
	rootCmd.AddCommand(newPutCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newExistsCmd(a))
	rootCmd.AddCommand(newClearCmd(a))
	rootCmd.AddCommand(newDiaryCmd(a))

	return rootCmd
}

// open resolves paths and configuration, sets up logging and opens the store.
// The storage root comes from --root, then storage.root, then
// STAMPSTORE_ROOT, then the XDG data directory.
func (a *app) open() error {
	p, err := paths.New(a.rootFlag)
	if err != nil {
		return fmt.Errorf(commands.MsgErrInitPaths, err)
	}

	cfgFile, required := a.configFlag, true
	if cfgFile == "" {
		cfgFile, required = p.ConfigFilePath(), false
	}
	cfg, err := config.Load(cfgFile, required)
	if err != nil {
		return fmt.Errorf(commands.MsgErrLoadConfig, err)
	}

	if a.rootFlag == "" && cfg.Storage.Root != "" {
		if p, err = paths.New(cfg.Storage.Root); err != nil {
			return fmt.Errorf(commands.MsgErrInitPaths, err)
		}
	}

	logging.SetupLoggerWithFile(max(a.verbosity, logging.ParseLevel(cfg.Logging.Level)), p.LogFilePath())

	c, err := cfg.Codec()
	if err != nil {
		return fmt.Errorf(commands.MsgErrLoadConfig, err)
	}

	var fsys types.FS = filesystem.NewOS()
	if a.memory {
		fsys = filesystem.NewMemory()
	}

	a.store = store.New(fsys, p.StorageRoot(),
		store.WithCodec(c),
		store.WithPermissions(cfg.Storage.DirPerm, cfg.Storage.FilePerm),
		store.WithWorkers(cfg.Workers.Size),
		store.WithLogger(logging.GetLogger("store")),
	)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       commands.MsgVersionShort,
		Long:        commands.MsgVersionLong,
		Annotations: map[string]string{annotationStandalone: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, commands.MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, commands.MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, commands.MsgBuiltFormat, version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "genconfig",
		Short:       commands.MsgGenConfigShort,
		Annotations: map[string]string{annotationStandalone: "true"},
		Args:        cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
		},
	}
}

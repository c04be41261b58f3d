package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/stampstore/internal/commands"
	"github.com/arthur-debert/stampstore/internal/styles"
	"github.com/arthur-debert/stampstore/pkg/codec"
	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/arthur-debert/stampstore/pkg/key"
	"github.com/arthur-debert/stampstore/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newPutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put KEY [FILE|-]",
		Short: commands.MsgPutShort,
		Long: `Put stores a JSON document under KEY, replacing any record already there.
The document is read from FILE, or from standard input when FILE is "-" or
omitted. It is re-encoded with the configured codec before it is written.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.put")
			defer logging.LogOperationStart(logger, "put")()

			src := "-"
			if len(args) == 2 {
				src = args[1]
			}
			data, err := readInput(cmd, src)
			if err != nil {
				return fmt.Errorf(commands.MsgErrReadInput, err)
			}
			if !json.Valid(data) {
				return errors.New(errors.ErrInvalidInput, commands.MsgErrInvalidJSON).
					WithDetail("source", src)
			}

			record, err := recordFromJSON(data, a.store.Codec())
			if err != nil {
				return err
			}
			if err := a.store.Write(cmd.Context(), args[0], record); err != nil {
				return err
			}

			logger.Info().Str("key", args[0]).Int("bytes", len(data)).Msg("Record stored")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), commands.MsgStoredFormat, styles.Render("Key", args[0]))
			a.printMemoryNotice(cmd)
			return nil
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: commands.MsgGetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var record any
			if err := a.store.Read(cmd.Context(), args[0], &record); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("pretty") {
				pretty = isTerminal(out)
			}

			var (
				data []byte
				err  error
			)
			if pretty {
				data, err = json.MarshalIndent(record, "", "  ")
			} else {
				data, err = json.Marshal(record)
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrRead, "record cannot be shown as JSON").
					WithDetail("key", args[0])
			}
			_, _ = fmt.Fprintln(out, string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, commands.MsgFlagPretty)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: commands.MsgDeleteShort,
		Long: `Delete removes the record stored under KEY. Deleting a key with no record
succeeds. When the record was the last one in its directory, the directory is
removed as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), commands.MsgDeletedFormat, styles.Render("Key", args[0]))
			return nil
		},
	}
}

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists KEY",
		Short: commands.MsgExistsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.store.Exists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: commands.MsgClearShort,
		Long: `Clear deletes every record under the storage root. Entries whose names
start with "." are left alone. Without --yes it asks for confirmation, and it
refuses to run when there is no terminal to ask on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := a.store.Root()
			if !yes {
				if !isTerminal(cmd.InOrStdin()) {
					return errors.New(errors.ErrInvalidInput, commands.MsgErrClearNeedYes)
				}
				confirmed, err := pterm.DefaultInteractiveConfirm.
					WithDefaultValue(false).
					Show(fmt.Sprintf(commands.MsgClearConfirm, root))
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.Render("Muted", commands.MsgClearAborted))
					return nil
				}
			}

			if err := a.store.DeleteAll(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), commands.MsgClearedFormat, styles.Render("Success", root))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, commands.MsgFlagYes)
	return cmd
}

func newKeyCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:         "key",
		Short:       commands.MsgKeyShort,
		Annotations: map[string]string{annotationStandalone: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseAt(at)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), key.FromTime(t))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", commands.MsgFlagAt)
	return cmd
}

// parseAt parses an --at value; empty means now
func parseAt(at string) (time.Time, error) {
	if at == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, errors.ErrInvalidInput, commands.MsgErrParseTime, at)
	}
	return t, nil
}

// readInput reads src, where "-" is the command's standard input
func readInput(cmd *cobra.Command, src string) ([]byte, error) {
	if src == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(src)
}

// recordFromJSON prepares a validated JSON document for c. JSON codecs get
// the document as is; other codecs get its decoded value.
func recordFromJSON(data []byte, c codec.Codec) (any, error) {
	if strings.HasPrefix(c.Name(), codec.NameJSON) {
		return json.RawMessage(bytes.TrimSpace(data)), nil
	}
	var record any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, commands.MsgErrInvalidJSON)
	}
	return record, nil
}

func (a *app) printMemoryNotice(cmd *cobra.Command) {
	if a.memory {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), styles.Render("Muted", commands.MsgMemoryNotice))
	}
}

// isTerminal reports whether v is a file attached to a terminal
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/stampstore/internal/commands"
	"github.com/arthur-debert/stampstore/internal/styles"
	"github.com/arthur-debert/stampstore/pkg/diary"
	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/spf13/cobra"
)

func newDiaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: commands.MsgDiaryShort,
	}
	cmd.AddCommand(newDiaryAddCmd(a))
	cmd.AddCommand(newDiaryShowCmd(a))
	return cmd
}

func newDiaryAddCmd(a *app) *cobra.Command {
	var emotion, summary, transcript, at string

	cmd := &cobra.Command{
		Use:   "add",
		Short: commands.MsgDiaryAddShort,
		Long: fmt.Sprintf(`Add stores a diary entry keyed by its creation time. Adding a second entry
within the same second replaces the first.

Emotions: %s`, emotionList()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := diary.Entry{
				Emotion:    diary.Emotion(emotion),
				Summary:    diary.Summary{Text: summary},
				Transcript: transcript,
			}
			if at != "" {
				t, err := parseAt(at)
				if err != nil {
					return err
				}
				entry.CreatedAt = t
			}

			k, _, err := diary.NewRepository(a.store).Save(cmd.Context(), entry)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), commands.MsgStoredFormat, styles.Render("Key", k))
			a.printMemoryNotice(cmd)
			return nil
		},
	}
	cmd.Flags().StringVar(&emotion, "emotion", string(diary.EmotionNeutral), commands.MsgFlagEmotion)
	cmd.Flags().StringVar(&summary, "summary", "", commands.MsgFlagSummary)
	cmd.Flags().StringVar(&transcript, "transcript", "", commands.MsgFlagTranscript)
	cmd.Flags().StringVar(&at, "at", "", commands.MsgFlagAt)
	_ = cmd.MarkFlagRequired("summary")
	return cmd
}

func newDiaryShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show KEY...",
		Short: commands.MsgDiaryShowShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, failed, err := diary.NewRepository(a.store).LoadMany(cmd.Context(), args)
			if err != nil {
				return err
			}

			for _, k := range args {
				if ferr, ok := failed[k]; ok {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), commands.MsgDiaryLoadWarning, k, ferr)
				}
			}
			if len(entries) == 0 {
				if len(args) == 1 {
					return failed[args[0]]
				}
				return errors.New(errors.ErrRead, commands.MsgErrNoEntries)
			}

			out := cmd.OutOrStdout()
			for _, st := range entries {
				_, _ = fmt.Fprintf(out, commands.MsgDiaryLineFormat,
					styles.Render("Key", st.Key),
					st.Entry.CalendarDate,
					st.Entry.Emotion,
					st.Entry.Summary.Text,
				)
			}
			return nil
		},
	}
}

func emotionList() string {
	names := make([]string, 0, len(diary.Emotions()))
	for _, e := range diary.Emotions() {
		names = append(names, string(e))
	}
	return strings.Join(names, ", ")
}

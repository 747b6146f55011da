package atomdoc

import (
	"fmt"
	"os"
	"strconv"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/atom"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/logging"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/manifest"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/timestamp"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/ui/styles"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/xmldoc"
	"github.com/spf13/cobra"
)

func newRenderCmd(g *globals) *cobra.Command {
	var (
		output string
		mode   string
		indent string
		offset string
		tree   bool
	)

	cmd := &cobra.Command{
		Use:     "render MANIFEST",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")
			defer logging.LogOperationStart(logger, "render")()

			// Only flags given on the command line override the config
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("mode") {
				overrides["render.mode"] = mode
			}
			if cmd.Flags().Changed("indent") {
				overrides["render.indent"] = indent
			}
			if cmd.Flags().Changed("offset") {
				overrides["time.offset"] = offset
			}
			cfg, err := g.loadConfig(overrides)
			if err != nil {
				return err
			}

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			doc, err := manifest.Build(m, manifest.BuildOptions{
				Offset: cfg.Offset(),
				Now:    timestamp.Now(),
				Generator: manifest.Generator{
					Name:    cfg.Generator.Name,
					URI:     cfg.Generator.URI,
					Version: cfg.Generator.Version,
				},
			})
			if err != nil {
				return err
			}

			if tree {
				fmt.Fprintln(cmd.OutOrStdout(), xmldoc.Tree(doc))
				return nil
			}

			rendered := doc.Render(cfg.Controller(0))
			if cfg.Check.Enabled {
				if _, err := xmldoc.Check(rendered); err != nil {
					return err
				}
			} else {
				logger.Debug().Msg(MsgCheckSkipped)
			}

			logger.Info().
				Str("manifest", args[0]).
				Int("entries", len(m.Entries)).
				Str("mode", cfg.Render.Mode).
				Msg("Rendered feed")

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return nil
			}
			if err := os.WriteFile(output, []byte(rendered+"\n"), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteOutput, output).
					WithDetail("path", output)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgWrote, styles.Render("FilePath", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&mode, "mode", "", MsgFlagMode)
	cmd.Flags().StringVar(&indent, "indent", "", MsgFlagIndent)
	cmd.Flags().StringVar(&offset, "offset", "", MsgFlagOffset)
	cmd.Flags().BoolVar(&tree, "tree", false, MsgFlagTree)

	_ = cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"terse", "normal", "verbose"}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	}

	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check FILE",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadXML, path).
					WithDetail("path", path)
			}

			doc, err := xmldoc.Check(string(data))
			if err != nil {
				return err
			}

			root := doc.Root()
			count := len(root.SelectElements("entry"))
			noun := MsgEntryPlural
			if count == 1 {
				noun = MsgEntrySingle
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgWellFormed,
				styles.Render("FilePath", path), styles.Render("Tag", root.Tag), count, noun)
			return nil
		},
	}
}

func newTimestampCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timestamp",
		Short:   MsgTimestampShort,
		Long:    MsgTimestampLong,
		Example: MsgTimestampExample,
		GroupID: "core",
	}

	var offset string
	formatCmd := &cobra.Command{
		Use:   "format SECONDS",
		Short: MsgFormatShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Newf(errors.ErrInvalidInput, MsgErrBadSeconds, args[0])
			}

			off := timestamp.ResolveOffset(offset)
			if !cmd.Flags().Changed("offset") {
				cfg, err := g.loadConfig(nil)
				if err != nil {
					return err
				}
				off = cfg.Offset()
			}
			if !timestamp.ValidOffset(off) {
				return errors.Newf(errors.ErrInvalidInput, MsgErrBadOffsetArg, offset)
			}

			fmt.Fprintln(cmd.OutOrStdout(), timestamp.Format(secs, off))
			return nil
		},
	}
	formatCmd.Flags().StringVar(&offset, "offset", "", MsgFlagOffset)

	parseCmd := &cobra.Command{
		Use:   "parse TIMESTAMP",
		Short: MsgParseShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := timestamp.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(secs, 'f', -1, 64))
			return nil
		},
	}

	cmd.AddCommand(formatCmd, parseCmd)
	return cmd
}

func newIDCmd() *cobra.Command {
	var uri, at string

	cmd := &cobra.Command{
		Use:     "id DOMAIN",
		Short:   MsgIDShort,
		Long:    MsgIDLong,
		Example: MsgIDExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs := timestamp.Now()
			if at != "" {
				v, err := timestamp.Parse(at)
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, MsgErrBadInstant)
				}
				secs = v
			}
			fmt.Fprintln(cmd.OutOrStdout(), atom.NewTagID(timestamp.ToTime(secs), args[0], uri))
			return nil
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", MsgFlagURI)
	cmd.Flags().StringVar(&at, "at", "", MsgFlagAt)
	return cmd
}

// querygen - render a query intent document as Lucene/Solr query text
//
// Reads a YAML intent document from the named file, or stdin when the file
// is "-" or missing, and prints the query text:
//
//	$ cat shoes.yaml
//	clauses:
//	  - value: adidas
//	    modifier: {wildcarded: true}
//	$ querygen shoes.yaml
//	("adidas"^2 adidas*)
//
// With --bleve the text is wrapped in a bleve query string query and
// dumped as json instead, eg for piping through jq.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bcampbell/qsgen"
	"github.com/spf13/cobra"
)

type options struct {
	bleve   bool
	verbose bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "querygen [file|-]",
		Short:         "Render a query intent document as Lucene/Solr query text",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			if err := run(name, stdin, stdout, opts, logger); err != nil {
				logger.Error("querygen failed", "input", name, "err", err)
				return err
			}
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVar(&opts.bleve, "bleve", false, "dump a bleve query string query as json")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

func run(name string, stdin io.Reader, stdout io.Writer, opts options, logger *slog.Logger) error {
	data, err := readInput(name, stdin)
	if err != nil {
		return err
	}

	in, err := qsgen.ParseIntent(data)
	if err != nil {
		return err
	}
	q, err := in.Query()
	if err != nil {
		return err
	}
	logger.Debug("rendered intent", "input", name, "clauses", len(in.Clauses), "bytes", q.Len())

	if !opts.bleve {
		_, err = fmt.Fprintln(stdout, q.String())
		return err
	}
	enc, err := json.Marshal(q.ToBleve())
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(enc))
	return err
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"ads-board/internal/client"
)

type options struct {
	baseURL string
	timeout time.Duration
	out     io.Writer
}

func (o *options) client() *client.Client {
	return client.New(o.baseURL, o.timeout)
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{out: out}

	cmd := &cobra.Command{
		Use:           "ads-client",
		Short:         "Command-line client for the ads board API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&opts.baseURL, "url", client.BaseURLFromEnv(), "API base URL (env ADS_API_URL)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", client.HTTPTimeoutFromEnv(), "HTTP timeout (env ADS_HTTP_TIMEOUT)")

	cmd.AddCommand(
		newCreateCmd(opts),
		newGetCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newPingCmd(opts),
		newDemoCmd(opts),
	)
	return cmd
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ad id %q", arg)
	}
	return id, nil
}

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/axelarnetwork/polls/x/poll/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(newRuntime RuntimeFactory) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       sdkclient.ValidateCmd,
	}

	queryCmd.AddCommand(
		GetCmdPoll(newRuntime),
		GetCmdConfig(newRuntime),
		GetCmdPolls(newRuntime),
	)

	return queryCmd
}

// GetCmdPoll returns the query for a poll by its question
func GetCmdPoll(newRuntime RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [question]", types.QueryPoll),
		Short: "Returns the poll for the given question, or null if it does not exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, newRuntime, types.QueryPoll, args[0])
		},
	}
}

// GetCmdConfig returns the query for the module configuration
func GetCmdConfig(newRuntime RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   types.QueryConfig,
		Short: "Returns the admin recorded at instantiation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, newRuntime, types.QueryConfig)
		},
	}
}

// GetCmdPolls returns the query for all polls
func GetCmdPolls(newRuntime RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   types.QueryPolls,
		Short: "Returns all polls ordered by question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, newRuntime, types.QueryPolls)
		},
	}
}

func runQuery(cmd *cobra.Command, newRuntime RuntimeFactory, path ...string) (err error) {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(); err == nil {
			err = closeErr
		}
	}()

	bz, err := rt.Query(path...)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, bz, "", "  "); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return err
}

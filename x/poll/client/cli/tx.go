package cli

import (
	"encoding/json"
	"fmt"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/stoewer/go-strcase"

	"github.com/axelarnetwork/polls/x/poll/client"
	"github.com/axelarnetwork/polls/x/poll/types"
)

// RuntimeFactory opens the runtime a command operates on
type RuntimeFactory func(cmd *cobra.Command) (client.Runtime, error)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(newRuntime RuntimeFactory) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        "tx",
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       sdkclient.ValidateCmd,
	}

	txCmd.AddCommand(
		GetCmdInstantiate(newRuntime),
		GetCmdCreatePoll(newRuntime),
		GetCmdVote(newRuntime),
	)

	return txCmd
}

// GetCmdInstantiate returns the cli command to record the admin of the poll module
func GetCmdInstantiate(newRuntime RuntimeFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [admin address]", strcase.KebabCase(types.AttributeValueInstantiate)),
		Short: "Record the admin address. Succeeds only once",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTx(cmd, newRuntime, func(sender sdk.AccAddress) types.Msg {
			return types.NewInstantiateRequest(sender, args[0])
		})
	}

	addTxFlags(cmd)
	return cmd
}

// GetCmdCreatePoll returns the cli command to create a poll
func GetCmdCreatePoll(newRuntime RuntimeFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [question]", strcase.KebabCase(types.AttributeValueCreatePoll)),
		Short: "Create a poll for the given question with zero votes",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTx(cmd, newRuntime, func(sender sdk.AccAddress) types.Msg {
			return types.NewCreatePollRequest(sender, args[0])
		})
	}

	addTxFlags(cmd)
	return cmd
}

// GetCmdVote returns the cli command to vote on a poll
func GetCmdVote(newRuntime RuntimeFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [question] [yes|no]", strcase.KebabCase(types.AttributeValueVote)),
		Short: "Vote yes or no on an existing poll",
		Args:  cobra.ExactArgs(2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTx(cmd, newRuntime, func(sender sdk.AccAddress) types.Msg {
			return types.NewVoteRequest(sender, args[0], args[1])
		})
	}

	addTxFlags(cmd)
	return cmd
}

func addTxFlags(cmd *cobra.Command) {
	cmd.Flags().String(flags.FlagFrom, "", "address of the sender")
	cmd.Flags().Bool(flags.FlagGenerateOnly, false, "print the message instead of executing it")
	_ = cmd.MarkFlagRequired(flags.FlagFrom)
}

func runTx(cmd *cobra.Command, newRuntime RuntimeFactory, newMsg func(sender sdk.AccAddress) types.Msg) (err error) {
	from, err := cmd.Flags().GetString(flags.FlagFrom)
	if err != nil {
		return err
	}

	generateOnly, err := cmd.Flags().GetBool(flags.FlagGenerateOnly)
	if err != nil {
		return err
	}

	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(); err == nil {
			err = closeErr
		}
	}()

	sender, err := rt.Addresses().Validate(from)
	if err != nil {
		return err
	}

	msg := newMsg(sender)
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	if generateOnly {
		bz, err := types.ModuleCdc.MarshalJSONIndent(msg, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
		return err
	}

	res, err := rt.Execute(msg)
	if err != nil {
		return err
	}

	return printJSON(cmd, res)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

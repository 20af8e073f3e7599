package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axelarnetwork/polls/x/poll/types"
)

const flagOutput = "output-document"

// NewGenesisCmd returns the commands to move the application state in and out of genesis files
func NewGenesisCmd(srvCtx *serverContext) *cobra.Command {
	genesisCmd := &cobra.Command{
		Use:   "genesis",
		Short: "Export, import and validate the application state",
	}

	genesisCmd.AddCommand(
		newExportCmd(srvCtx),
		newImportCmd(srvCtx),
		newValidateCmd(),
	)

	return genesisCmd
}

func newExportCmd(srvCtx *serverContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the latest committed state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := srvCtx.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			bz, err := types.ModuleCdc.MarshalJSONIndent(a.ExportGenesis(), "", "  ")
			if err != nil {
				return err
			}

			output, err := cmd.Flags().GetString(flagOutput)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
				return err
			}

			return os.WriteFile(output, bz, 0o600)
		},
	}

	cmd.Flags().String(flagOutput, "", "write the exported state to this file instead of stdout")
	return cmd
}

func newImportCmd(srvCtx *serverContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import [genesis file]",
		Short: "Import a genesis file into an empty store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			genState, err := readGenesis(args[0])
			if err != nil {
				return err
			}

			a, err := srvCtx.openApp()
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := a.Close(); err == nil {
					err = closeErr
				}
			}()

			if err := a.InitGenesis(genState); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d polls at height %d\n", len(genState.Polls), a.LastBlockHeight())
			return err
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [genesis file]",
		Short: "Validate a genesis file without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genState, err := readGenesis(args[0])
			if err != nil {
				return err
			}

			if err := genState.Validate(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "File at %s is a valid genesis file\n", args[0])
			return err
		},
	}
}

func readGenesis(path string) (*types.GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var genState types.GenesisState
	if err := types.ModuleCdc.UnmarshalJSON(bz, &genState); err != nil {
		return nil, fmt.Errorf("failed to parse genesis file %s: %w", path, err)
	}

	if genState.Polls == nil {
		genState.Polls = []types.Poll{}
	}

	return &genState, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readInput reads the named file, or stdin for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return readFile(args[0])
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readFlagFile treats an empty path as empty content.
func readFlagFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return readFile(path)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "Parse a dash list template into proposals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			proposals := proposal.ParseList(template)
			logger.Debug("parsed list", zap.Int("proposals", len(proposals)))
			return printJSON(cmd, proposals)
		},
	}
}

func newBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks [file]",
		Short: "Parse a placeholder template into text, input and break blocks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			blocks := proposal.ParsePlaceholders(template)
			logger.Debug("parsed blocks", zap.Int("blocks", len(blocks)), zap.Strings("fields", proposal.InputNames(blocks)))
			return printJSON(cmd, blocks)
		},
	}
}

func newSelectionCmd() *cobra.Command {
	var encode bool
	cmd := &cobra.Command{
		Use:   "selection <value>",
		Short: "Decode a stored selection into a vector, or encode indices with --encode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !encode {
				return printJSON(cmd, proposal.DecodeSelection(args[0]))
			}

			var indices []int
			for _, part := range strings.Split(args[0], ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				var index int
				if _, err := fmt.Sscan(part, &index); err != nil {
					return fmt.Errorf("invalid index %q", part)
				}
				indices = append(indices, index)
			}
			return printJSON(cmd, proposal.EncodeSelection(indices))
		},
	}
	cmd.Flags().BoolVar(&encode, "encode", false, "Encode comma separated indices instead of decoding")
	return cmd
}

func newFieldsCmd() *cobra.Command {
	var declared []string
	cmd := &cobra.Command{
		Use:   "fields [file]",
		Short: "Decode a stored multi-field answer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fields, err := proposal.DecodeFields(strings.TrimSuffix(raw, "\n"), declared)
			if err != nil {
				return err
			}
			return printJSON(cmd, fields)
		},
	}
	cmd.Flags().StringSliceVar(&declared, "declared", nil, "Declared fields, used for abandoned answers")
	return cmd
}

type solutionEntry struct {
	Field    string   `json:"field"`
	Variants []string `json:"variants"`
}

func newSolutionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solution [file]",
		Short: "Decode a solution block into accepted variants per field",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			solution, err := proposal.DecodeSolution(raw)
			if err != nil {
				return err
			}
			entries := make([]solutionEntry, 0, len(solution.Fields()))
			for _, field := range solution.Fields() {
				entries = append(entries, solutionEntry{Field: field, Variants: solution.Variants(field)})
			}
			return printJSON(cmd, entries)
		},
	}
}

func newReviewCmd() *cobra.Command {
	var kindCode, templatePath, answerPath, solutionPath, correctnessPath string
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Assemble the comparison records of a stored answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := proposal.ParseKind(kindCode)
			if err != nil {
				return err
			}

			var stored proposal.Stored
			for _, input := range []struct {
				path string
				dest *string
			}{
				{templatePath, &stored.Template},
				{answerPath, &stored.Answer},
				{solutionPath, &stored.Solution},
			} {
				content, err := readFlagFile(input.path)
				if err != nil {
					return err
				}
				*input.dest = strings.TrimSuffix(content, "\n")
			}

			rawCorrectness, err := readFlagFile(correctnessPath)
			if err != nil {
				return err
			}
			if stored.Correctness, err = proposal.DecodeCorrectness(strings.TrimSpace(rawCorrectness)); err != nil {
				return err
			}

			logger.Debug("assembling review", zap.Stringer("kind", kind), zap.Int("correctness", len(stored.Correctness)))
			comparisons, err := proposal.Assemble(kind, stored)
			if err != nil {
				return err
			}
			return printJSON(cmd, comparisons)
		},
	}
	cmd.Flags().StringVar(&kindCode, "kind", "", "Challenge type code (QCU, QCM, QROC, QROCM, QCU_CONFIRM)")
	cmd.Flags().StringVar(&templatePath, "template", "", "Proposal template file")
	cmd.Flags().StringVar(&answerPath, "answer", "", "Stored answer file")
	cmd.Flags().StringVar(&solutionPath, "solution", "", "Solution file")
	cmd.Flags().StringVar(&correctnessPath, "correctness", "", "Correctness map file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

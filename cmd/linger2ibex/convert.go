package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kristina2018/linger2ibex/ibex"
	"github.com/kristina2018/linger2ibex/linger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert <bank.txt> [stimulus-type]",
	Short: "Convert a linger stimulus bank",
	Long:  "Parse a linger-format stimulus bank and write the ibex items fragment to standard output. The optional second argument overrides the stimulus type name (default DashedSentence).",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().Bool("dry-run", false, "Parse and validate only, do not emit output")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	bankFile := args[0]
	stimType := ibex.DefaultStimType
	if len(args) == 2 {
		stimType = args[1]
	}
	verbose := viper.GetBool("verbose")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	src, err := os.ReadFile(bankFile)
	if err != nil {
		return fmt.Errorf("reading stimulus bank: %w", err)
	}

	if dryRun {
		return validateBank(bankFile, src)
	}

	doc, err := ibex.Write(stimType, linger.Parse(src))
	if err != nil {
		return fmt.Errorf("converting %s: %w", bankFile, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Converted %s: %d stimuli, %d conditions\n",
			bankFile, doc.StimCount, len(doc.Conditions))
	}

	fmt.Println(doc.Text)
	return nil
}

// validateBank parses the bank without emitting output, draining every lazy
// question sequence so question-level errors surface too.
func validateBank(bankFile string, src []byte) error {
	stims := linger.Parse(src)
	var stimCount, questionCount int
	seen := make(map[string]bool)
	var conditions []string
	for {
		stim, err := stims.Next()
		if err != nil {
			return fmt.Errorf("validating %s: %w", bankFile, err)
		}
		if stim == nil {
			break
		}
		stimCount++
		if label := stim.Spec.ConditionLabel(); !seen[label] {
			seen[label] = true
			conditions = append(conditions, label)
		}
		for {
			q, err := stim.Questions.Next()
			if err != nil {
				return fmt.Errorf("validating %s: %w", bankFile, err)
			}
			if q == nil {
				break
			}
			questionCount++
		}
	}

	fmt.Fprintf(os.Stderr, "Dry run: stimulus bank %q parsed successfully\n", bankFile)
	fmt.Fprintf(os.Stderr, "  Stimuli: %d\n", stimCount)
	fmt.Fprintf(os.Stderr, "  Questions: %d\n", questionCount)
	fmt.Fprintf(os.Stderr, "  Conditions: %s\n", strings.Join(conditions, ", "))
	return nil
}

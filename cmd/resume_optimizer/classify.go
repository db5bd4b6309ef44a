package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/taxonomy"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [skills...]",
	Short: "Classify skill tokens into taxonomy categories",
	Long:  `Classifies skill tokens into categories (languages, frameworks, databases, cloud, tools, practices) and prints the grouped result. Pass tokens as arguments, or use --resume to classify every skill in a resume.`,
	RunE:  runClassifyCmd,
}

var classifyResume string

func init() {
	classifyCmd.Flags().StringVarP(&classifyResume, "resume", "r", "", "Path to resume file; classifies its skill entries instead of arguments")

	rootCmd.AddCommand(classifyCmd)
}

func runClassifyCmd(_ *cobra.Command, args []string) error {
	tokens := args
	if classifyResume != "" {
		doc, err := parsing.LoadResumeFile(classifyResume)
		if err != nil {
			return fmt.Errorf("loading resume failed: %w", err)
		}
		tokens = nil
		for _, group := range doc.Skills {
			tokens = append(tokens, group.Skills...)
		}
	}

	if len(tokens) == 0 {
		return fmt.Errorf("no skills to classify: pass tokens as arguments or use --resume")
	}

	classifier := taxonomy.NewClassifier(nil)
	groups := classifier.Categorize(tokens)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSkillGroups(groups)
	return nil
}

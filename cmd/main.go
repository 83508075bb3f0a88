package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"course-catalog/cmd/config"
	"course-catalog/internal/catalog"
	"course-catalog/internal/exporter"
	"course-catalog/internal/model"
	"course-catalog/internal/parser"
	"course-catalog/internal/report"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func openFile(filename string) (*os.File, error) {
	f, err := os.Open(filepath.Clean(filename))
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("file does not exist: %s", filename)
	case errors.Is(err, os.ErrPermission):
		return nil, fmt.Errorf("not enough permissions to open file: %s", filename)
	default:
		return nil, fmt.Errorf("could not open file: %s", err)
	}

	return f, nil
}

func writeFile(filename string, data []byte) (err error) {
	f, err := os.Create(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

func readCourses(filename string) (*catalog.CourseCollection, error) {
	parserConfig, err := config.NewParserConfig()
	if err != nil {
		return nil, fmt.Errorf("checkout configuration: %w", err)
	}

	f, err := openFile(filename)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err = f.Close(); err != nil {
			log.Println("failed to close file:", err)
		}
	}()

	return parser.NewFileParser(bufio.NewScanner(f), parserConfig).ReadCourses()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Inspect and export a course catalog file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newListCmd(), newShowCmd(), newMeetsCmd(), newExportCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List all courses ordered by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := readCourses(args[0])
			if err != nil {
				return err
			}

			return renderCourses(cmd, courses.Courses())
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file> <code>",
		Short: "Show a single course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := readCourses(args[0])
			if err != nil {
				return err
			}

			course, err := courses.Get(args[1])
			if err != nil {
				return err
			}

			return renderCourses(cmd, []*model.Course{course})
		},
	}
}

func newMeetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meets <file> <day>",
		Short: "List courses meeting on a weekday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := model.ParseWeekday(args[1])
			if err != nil {
				return fmt.Errorf("%s: %q", err, args[1])
			}

			courses, err := readCourses(args[0])
			if err != nil {
				return err
			}

			meeting := courses.MeetingOn(day)
			if len(meeting) == 0 {
				_, _ = color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "no courses meet on %s\n", day)
				return nil
			}

			return renderCourses(cmd, meeting)
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export courses with meeting days to an ICS calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			fromStr, _ := cmd.Flags().GetString("from")

			from := time.Now()
			if fromStr != "" {
				var err error
				if from, err = time.Parse(dateLayout, fromStr); err != nil {
					return fmt.Errorf("invalid --from date, expected %s: %w", dateLayout, err)
				}
			}

			exporterConfig, err := config.NewExporterConfig()
			if err != nil {
				return fmt.Errorf("checkout configuration: %w", err)
			}

			courses, err := readCourses(args[0])
			if err != nil {
				return err
			}

			// the file is only created once the calendar is complete,
			// so a bad location or course list leaves nothing behind
			var calendar bytes.Buffer
			exported, err := exporter.GenerateICS(courses.Courses(), from, exporterConfig, &calendar)
			if err != nil {
				return fmt.Errorf("failed to generate ICS: %w", err)
			}

			if err = writeFile(output, calendar.Bytes()); err != nil {
				return err
			}

			_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "exported %d of %d courses to %s\n", exported, courses.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "courses.ics", "Output file path")
	cmd.Flags().String("from", "", "First day of the term (YYYY-MM-DD), defaults to today")
	return cmd
}

func renderCourses(cmd *cobra.Command, courses []*model.Course) error {
	parserConfig, err := config.NewParserConfig()
	if err != nil {
		return fmt.Errorf("checkout configuration: %w", err)
	}

	report.RenderCourses(cmd.OutOrStdout(), courses, parserConfig.TimeFormat)
	return nil
}

func main() {
	log.SetFlags(0)

	if err := config.LoadDotEnv(); err != nil {
		log.Println("failed to load .env:", err)
		return
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Println(color.RedString(err.Error()))
		os.Exit(1)
	}
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"course-catalog/internal/apierror"
)

const catalogFile = `# code;title;instructor;days;start;end
CS101;Intro to Computer Science;Ada Lovelace;Mon,Wed;09:00;10:15
MATH200;Linear Algebra;Emmy Noether;Tue,Thu;11:00;12:30
SEM900;Seminar;Grace Hopper;;18:00;20:00
`

func writeCatalog(t *testing.T) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "courses.txt")
	if err := os.WriteFile(filename, []byte(catalogFile), 0o600); err != nil {
		t.Fatal(err)
	}

	return filename
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	filename := writeCatalog(t)

	testCases := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
		isErrExp    bool
	}{
		{
			name:     "list",
			args:     []string{"list", filename},
			contains: []string{"CS101", "MATH200", "SEM900", "Mon, Wed"},
		},
		{
			name:        "show existing",
			args:        []string{"show", filename, "MATH200"},
			contains:    []string{"Linear Algebra", "Tue, Thu", "12:30"},
			notContains: []string{"CS101"},
		},
		{
			name:     "show missing",
			args:     []string{"show", filename, "CS999"},
			isErrExp: true,
		},
		{
			name:        "meets",
			args:        []string{"meets", filename, "wednesday"},
			contains:    []string{"CS101"},
			notContains: []string{"MATH200", "SEM900"},
		},
		{
			name:     "meets nobody",
			args:     []string{"meets", filename, "Sun"},
			contains: []string{"no courses meet on Sunday"},
		},
		{
			name:     "meets unknown day",
			args:     []string{"meets", filename, "Caturday"},
			isErrExp: true,
		},
		{
			name:     "no file arg",
			args:     []string{"list"},
			isErrExp: true,
		},
		{
			name:     "file does not exist",
			args:     []string{"list", filepath.Join(t.TempDir(), "missing.txt")},
			isErrExp: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(tc.args...)
			if (err != nil) != tc.isErrExp {
				t.Fatalf("unexpected error state: %v", err)
			}

			for _, s := range tc.contains {
				if !strings.Contains(out, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, out)
				}
			}

			for _, s := range tc.notContains {
				if strings.Contains(out, s) {
					t.Errorf("expected output not to contain %q, got:\n%s", s, out)
				}
			}
		})
	}
}

func TestShowMissingIsNotFound(t *testing.T) {
	_, err := execute("show", writeCatalog(t), "CS999")
	if !errors.Is(err, apierror.ErrCourseNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestExport(t *testing.T) {
	output := filepath.Join(t.TempDir(), "courses.ics")

	out, err := execute("export", writeCatalog(t), "-o", output, "--from", "2026-10-19")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !strings.Contains(out, "exported 2 of 3 courses") {
		t.Errorf("unexpected output: %s", out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), "DTSTART:20261019T090000Z") {
		t.Errorf("expected CS101 to start on the first monday, got:\n%s", data)
	}
}

func TestExportInvalidFrom(t *testing.T) {
	output := filepath.Join(t.TempDir(), "courses.ics")

	if _, err := execute("export", writeCatalog(t), "-o", output, "--from", "19.10.2026"); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestExportBadLocationLeavesNoFile(t *testing.T) {
	t.Setenv("CALENDAR_LOCATION", "Nowhere/Atlantis")
	output := filepath.Join(t.TempDir(), "courses.ics")

	if _, err := execute("export", writeCatalog(t), "-o", output, "--from", "2026-10-19"); err == nil {
		t.Fatal("expected error for unknown location")
	}

	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no output file, got stat error %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.ics")
	if err := writeFile(filename, []byte("BEGIN:VCALENDAR")); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "BEGIN:VCALENDAR" {
		t.Errorf("unexpected content %q", data)
	}

	if err = writeFile(filepath.Join(t.TempDir(), "missing", "out.ics"), nil); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestOpenFile(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		isErrExp bool
	}{
		{
			name:     "existing file",
			filename: writeCatalog(t),
		},
		{
			name:     "missing file",
			filename: filepath.Join(t.TempDir(), "nope"),
			isErrExp: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := openFile(tc.filename)
			if err != nil && !tc.isErrExp {
				t.Errorf("unexpected error: %s", err)
			}

			if err == nil {
				if tc.isErrExp {
					t.Error("expected error")
				}
				_ = f.Close()
			}
		})
	}
}

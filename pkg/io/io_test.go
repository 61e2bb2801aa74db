package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/paraflow/pkg/flow"
)

func TestFromMarkdown(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{"empty", "", ""},
		{"paragraph kept", "Start the build. Then stop.", "Start the build. Then stop."},
		{
			name: "heading and list",
			md:   "# Deploy\n\n- Build the image\n- Check if the tests pass\n- Push the image!\n",
			want: "Deploy. Build the image. Check if the tests pass. Push the image!",
		},
		{
			name: "soft breaks joined",
			md:   "Read the\nconfiguration file\n",
			want: "Read the configuration file.",
		},
		{
			name: "emphasis flattened",
			md:   "Print **all** the `results`",
			want: "Print all the results.",
		},
		{
			name: "code blocks skipped",
			md:   "Start.\n\n```sh\nmake all\n```\n\nEnd.",
			want: "Start. End.",
		},
		{
			name: "ordered loose list",
			md:   "1. Begin here\n\n2. Finish there\n",
			want: "Begin here. Finish there.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMarkdown([]byte(tt.md)); got != tt.want {
				t.Errorf("FromMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromMarkdownSegmentsPerBullet(t *testing.T) {
	text := FromMarkdown([]byte("- Start the job\n- Read the input\n- Check if it is empty\n- End the job\n"))
	steps := flow.Segment(text)
	want := []flow.Category{flow.Terminal, flow.IO, flow.Decision, flow.Terminal}
	got := flow.Categories(steps)
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "process.txt")
	md := filepath.Join(dir, "process.md")
	os.WriteFile(plain, []byte("- not a list\n"), 0o644)
	os.WriteFile(md, []byte("- a list\n"), 0o644)

	if got, err := ReadText(plain); err != nil || got != "- not a list\n" {
		t.Errorf("ReadText(txt) = %q, %v", got, err)
	}
	if got, err := ReadText(md); err != nil || got != "a list." {
		t.Errorf("ReadText(md) = %q, %v", got, err)
	}
	if _, err := ReadText(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadTextStdin(t *testing.T) {
	old := stdin
	defer func() { stdin = old }()
	stdin = strings.NewReader("Start. End.")

	got, err := ReadText(Stdin)
	if err != nil || got != "Start. End." {
		t.Errorf("ReadText(-) = %q, %v", got, err)
	}
}

func TestIsMarkdown(t *testing.T) {
	for path, want := range map[string]bool{
		"a.md":       true,
		"A.MARKDOWN": true,
		"a.txt":      false,
		"-":          false,
		"md":         false,
	} {
		if got := IsMarkdown(path); got != want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWriteFileCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "charts", "flowchart.png")
	if err := WriteFile(path, []byte("png")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "png" {
		t.Errorf("read back %q, %v", data, err)
	}
}

func TestStepsRoundTrip(t *testing.T) {
	steps := flow.Segment("Start. Check if x is set. Otherwise log it. End.")

	var buf bytes.Buffer
	if err := WriteSteps(steps, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"category": "decision"`) {
		t.Errorf("categories should be written by name:\n%s", buf.String())
	}

	got, err := ReadSteps(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(steps) {
		t.Fatalf("len = %d, want %d", len(got), len(steps))
	}
	for i := range steps {
		if got[i] != steps[i] {
			t.Errorf("step %d = %+v, want %+v", i, got[i], steps[i])
		}
	}
}

func TestWriteStepsNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSteps(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"steps": []`) {
		t.Errorf("nil steps = %s", buf.String())
	}
}

package service

import (
	"strings"
	"testing"
	"time"
)

func TestResultFileName(t *testing.T) {
	day := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		memberName string
		typeTitle  string
		want       string
	}{
		{"basic", "John Doe", "Blood Test", "John_Doe_Blood_Test_2024-03-05.pdf"},
		{"special chars", "O'Brien/Jr.", "CBC (full)", "O_Brien_Jr__CBC__full__2024-03-05.pdf"},
		{"empty member", "", "Blood Test", "unknown_Blood_Test_2024-03-05.pdf"},
		{"empty both", "", "", "unknown_unknown_2024-03-05.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResultFileName(tt.memberName, tt.typeTitle, day)
			if got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestResultFileNameDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	a := ResultFileName("Jane", "Lipid Panel", day)
	b := ResultFileName("Jane", "Lipid Panel", day)
	if a != b {
		t.Fatalf("not deterministic: %q vs %q", a, b)
	}
}

func TestResultFileNameNoPathSeparators(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	got := ResultFileName("../../etc/passwd", "a/b\\c", day)
	if strings.ContainsAny(got, "/\\") {
		t.Fatalf("contains path separator: %q", got)
	}
}

func TestResultFileNameLengthCap(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	long := strings.Repeat("x", 500)
	got := ResultFileName(long, long, day)
	if len(got) > maxFileNameLen {
		t.Fatalf("len=%d exceeds cap %d", len(got), maxFileNameLen)
	}
	if !strings.HasSuffix(got, "_2024-03-05.pdf") {
		t.Fatalf("date/extension trimmed: %q", got)
	}
}

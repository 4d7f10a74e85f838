package normalizer

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNormalize(t *testing.T) {
	mapping := Mapping{
		FilerRoot:      `\\fileserver\share`,
		LocalFilerPath: "/mnt/share",
	}

	tests := []struct {
		name        string
		mapping     Mapping
		input       string
		wantPath    string
		wantMatched bool
	}{
		{
			name:        "root present is substituted then slash-converted",
			mapping:     mapping,
			input:       `\\fileserver\share\projects\data.csv`,
			wantPath:    "/mnt/share/projects/data.csv",
			wantMatched: true,
		},
		{
			name:        "root absent converts slashes only",
			mapping:     mapping,
			input:       `\\otherserver\other\x.txt`,
			wantPath:    "/otherserver/other/x.txt",
			wantMatched: false,
		},
		{
			name:        "root alone maps to the bare mount point",
			mapping:     mapping,
			input:       `\\fileserver\share`,
			wantPath:    "/mnt/share",
			wantMatched: true,
		},
		{
			name:        "only first occurrence is replaced",
			mapping:     Mapping{FilerRoot: `\\f\s`, LocalFilerPath: "/m"},
			input:       `\\f\s\copy of \\f\s\a`,
			wantPath:    `/m/copy of //f/s/a`,
			wantMatched: true,
		},
		{
			name:        "empty input",
			mapping:     mapping,
			input:       "",
			wantPath:    "",
			wantMatched: false,
		},
		{
			name:        "empty filer root performs no substitution",
			mapping:     Mapping{FilerRoot: "", LocalFilerPath: "/mnt/share"},
			input:       `\\fileserver\share\a`,
			wantPath:    "/fileserver/share/a",
			wantMatched: false,
		},
		{
			name:        "backslashes in the local path are converted too",
			mapping:     Mapping{FilerRoot: `\\srv\data`, LocalFilerPath: `D:\mounts\data`},
			input:       `\\srv\data\q1\report.xlsx`,
			wantPath:    "D:/mounts/data/q1/report.xlsx",
			wantMatched: true,
		},
		{
			name:        "root occurring mid-string is still replaced",
			mapping:     mapping,
			input:       `copy of \\fileserver\share\a.txt`,
			wantPath:    "copy of /mnt/share/a.txt",
			wantMatched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.mapping, tt.input)
			if got.Path != tt.wantPath {
				t.Errorf("Normalize(%q) path = %q, want %q", tt.input, got.Path, tt.wantPath)
			}
			if got.Matched != tt.wantMatched {
				t.Errorf("Normalize(%q) matched = %v, want %v", tt.input, got.Matched, tt.wantMatched)
			}
		})
	}
}

// genPathSegment generates non-empty alphabetic path segments
func genPathSegment() gopter.Gen {
	return gen.AlphaString().SuchThat(func(s string) bool {
		return len(s) > 0
	})
}

// genUNCRoot generates a UNC-style root like `\\server\share`
func genUNCRoot() gopter.Gen {
	return gopter.CombineGens(
		genPathSegment(),
		genPathSegment(),
	).Map(func(vals []interface{}) string {
		return `\\` + vals[0].(string) + `\` + vals[1].(string)
	})
}

// genRemainder generates a backslash-delimited tail like `\a\b`
func genRemainder() gopter.Gen {
	return gen.SliceOfN(2, genPathSegment()).Map(func(segs []string) string {
		return `\` + strings.Join(segs, `\`)
	})
}

func TestNormalizationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Output never contains a backslash", prop.ForAll(
		func(root string, local string, input string) bool {
			got := Normalize(Mapping{FilerRoot: root, LocalFilerPath: local}, input)
			return !strings.Contains(got.Path, `\`)
		},
		genUNCRoot(),
		genPathSegment().Map(func(s string) string { return "/mnt/" + s }),
		genRemainder(),
	))

	properties.Property("Slash conversion is idempotent", prop.ForAll(
		func(root string, local string, remainder string) bool {
			m := Mapping{FilerRoot: root, LocalFilerPath: local}
			once := Normalize(m, root+remainder)
			twice := Normalize(Mapping{}, once.Path)
			return once.Path == twice.Path
		},
		genUNCRoot(),
		genPathSegment().Map(func(s string) string { return "/mnt/" + s }),
		genRemainder(),
	))

	properties.Property("Root with literal backslashes is matched and replaced", prop.ForAll(
		func(root string, local string, remainder string) bool {
			got := Normalize(Mapping{FilerRoot: root, LocalFilerPath: local}, root+remainder)
			if !got.Matched {
				return false
			}
			expected := strings.ReplaceAll(local+remainder, `\`, "/")
			return got.Path == expected
		},
		genUNCRoot(),
		genPathSegment().Map(func(s string) string { return "/mnt/" + s }),
		genRemainder(),
	))

	properties.Property("Input without the root is only slash-converted", prop.ForAll(
		func(root string, local string, input string) bool {
			if strings.Contains(input, root) {
				return true
			}
			got := Normalize(Mapping{FilerRoot: root, LocalFilerPath: local}, input)
			if got.Matched {
				return false
			}
			return got.Path == strings.ReplaceAll(input, `\`, "/")
		},
		genUNCRoot(),
		genPathSegment().Map(func(s string) string { return "/mnt/" + s }),
		genRemainder(),
	))

	properties.TestingRun(t)
}

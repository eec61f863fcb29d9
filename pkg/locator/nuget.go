package locator

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"ilweld/pkg/types"
)

// PinnedVersions parses packages.config in workDir into a map of
// package id (lowercased) to version. A missing or malformed file
// yields an empty map, pinning is best-effort.
func PinnedVersions(fsys types.FS, workDir string) map[string]string {
	pinned := make(map[string]string)

	data, err := fsys.ReadFile(filepath.Join(workDir, "packages.config"))
	if err != nil {
		return pinned
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return pinned
	}

	for _, pkg := range doc.FindElements("//package") {
		id := pkg.SelectAttrValue("id", "")
		version := pkg.SelectAttrValue("version", "")
		if id != "" && version != "" {
			pinned[strings.ToLower(id)] = version
		}
	}

	return pinned
}

// compareVersions orders dotted version strings: segments compare
// numerically when both are numbers, lexically otherwise, and missing
// segments count as zero. Good enough to pick the newest versioned
// package folder; this is not a full semver comparison.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		av, bv := "0", "0"
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}

		an, aerr := strconv.Atoi(av)
		bn, berr := strconv.Atoi(bv)

		if aerr == nil && berr == nil {
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			continue
		}

		if c := strings.Compare(av, bv); c != 0 {
			return c
		}
	}

	return 0
}

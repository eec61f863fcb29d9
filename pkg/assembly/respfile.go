package assembly

import (
	"strings"

	"ilweld/pkg/errors"
	"ilweld/pkg/types"
)

// ExpandArgs resolves response-file references in an argument list.
// An argument of the form @file is replaced by the lines of that file,
// one assembly path per line, with blank lines and lines starting with
// "#" dropped. Other arguments pass through unchanged, order preserved.
func ExpandArgs(fsys types.FS, args []string) ([]string, error) {
	var out []string

	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") {
			out = append(out, arg)
			continue
		}

		path := strings.TrimPrefix(arg, "@")
		if path == "" {
			return nil, errors.New(errors.ErrResponseFile, "empty response file reference")
		}

		data, err := fsys.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrResponseFile,
				"failed to read response file %s", path)
		}

		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			out = append(out, line)
		}
	}

	return out, nil
}

package engine

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/leakscan/leakscan/internal/rules"
	"github.com/leakscan/leakscan/internal/types"
	"go.uber.org/zap"
)

// ScanFile matches every line of the file at path against every rule in the
// set, in rule-table order. Line numbers are 1-based and the reported text is
// the line trimmed of surrounding whitespace. Each (rule, line) pair yields at
// most one finding; one line may yield findings for several rules.
//
// A file that cannot be read, or whose content is not UTF-8 text, is logged
// at error level and contributes zero findings.
func ScanFile(path string, set rules.Set, log *zap.SugaredLogger) []types.Finding {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Errorf("file not found: %s", path)
		} else {
			log.Errorf("error reading file %s: %v", path, err)
		}
		return nil
	}
	if looksBinary(data) || !utf8.Valid(data) {
		log.Errorf("error reading file %s: content is not UTF-8 text", path)
		return nil
	}

	active := set.Rules()
	var out []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	line := 0
	for sc.Scan() {
		line++
		txt := sc.Text()
		for _, r := range active {
			if r.Regexp.MatchString(txt) {
				out = append(out, types.Finding{
					Path:       path,
					Rule:       r.Name,
					Line:       strings.TrimSpace(txt),
					LineNumber: line,
				})
			}
		}
	}
	return out
}

// looksBinary reports whether the content has a NUL byte in its leading
// bytes, the same cheap sniff used to keep images and archives out of the
// matcher.
func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phishscan/internal/testutil"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	root := NewRootCommand(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-02"})
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return runResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

type checkRecord struct {
	Index  int    `json:"index"`
	URL    string `json:"url"`
	Result *struct {
		Prediction  string   `json:"prediction"`
		RiskScore   int      `json:"risk_score"`
		RiskFactors []string `json:"risk_factors"`
	} `json:"result"`
	Error     string `json:"error"`
	ErrorKind string `json:"error_kind"`
}

func decodeRecords(t *testing.T, data string) []checkRecord {
	t.Helper()
	var recs []checkRecord
	if err := json.Unmarshal([]byte(data), &recs); err != nil {
		t.Fatalf("decode output: %v\n%s", err, data)
	}
	return recs
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(BuildInfo{})
	testutil.AssertEqual(t, root.Use, "phishscan", "use")

	want := map[string]bool{"check": false, "serve": false, "config": false, "version": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		testutil.AssertTrue(t, found, name+" registered")
	}
	testutil.AssertContains(t, root.Long, "PHISHSCAN_WORKERS", "env help in long description")
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	testutil.AssertNoError(t, res.err, "version")
	testutil.AssertContains(t, res.stdout, "phishscan 1.2.3", "version line")
	testutil.AssertContains(t, res.stdout, "abc123", "commit")
}

func TestCheck_JSON(t *testing.T) {
	res := run(t, "", "check", "-f", "json", "--ui", "quiet",
		"https://www.google.com",
		"http://192.168.1.1/login",
		"https://paypal.com.verify-account.tk/login?redirect=1",
	)
	testutil.AssertNoError(t, res.err, "check")

	recs := decodeRecords(t, res.stdout)
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}

	want := []struct {
		prediction string
		score      int
	}{
		{"legitimate", 0},
		{"suspicious", 9},
		{"phishing", 14},
	}
	for i, w := range want {
		testutil.AssertEqual(t, recs[i].Index, i, "index")
		if recs[i].Result == nil {
			t.Fatalf("record %d has no result: %+v", i, recs[i])
		}
		testutil.AssertEqual(t, recs[i].Result.Prediction, w.prediction, "prediction")
		testutil.AssertEqual(t, recs[i].Result.RiskScore, w.score, "score")
	}
}

func TestCheck_FailuresExitNonZero(t *testing.T) {
	res := run(t, "", "check", "-f", "json", "--ui", "quiet", "https://a.com", "ftp://a.com")
	testutil.AssertError(t, res.err, "a rejected URL fails the run")
	testutil.AssertContains(t, res.err.Error(), "1 of 2 URLs could not be classified", "error")

	recs := decodeRecords(t, res.stdout)
	testutil.AssertEqual(t, recs[1].Error, "URL must start with http:// or https://", "message")
	testutil.AssertEqual(t, recs[1].ErrorKind, "bad_scheme", "kind")
}

func TestCheck_FailOn(t *testing.T) {
	tests := []struct {
		failOn  string
		url     string
		wantErr bool
	}{
		{"none", "https://paypal.com.verify-account.tk/login?redirect=1", false},
		{"phishing", "http://192.168.1.1/login", false},
		{"phishing", "https://paypal.com.verify-account.tk/login?redirect=1", true},
		{"suspicious", "http://192.168.1.1/login", true},
		{"suspicious", "https://www.google.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.failOn+" "+tt.url, func(t *testing.T) {
			res := run(t, "", "check", "--ui", "quiet", "--fail-on", tt.failOn, tt.url)
			if tt.wantErr {
				testutil.AssertError(t, res.err, "threshold reached")
			} else {
				testutil.AssertNoError(t, res.err, "threshold not reached")
			}
		})
	}

	res := run(t, "", "check", "--fail-on", "sometimes", "https://a.com")
	testutil.AssertError(t, res.err, "unknown --fail-on value")
}

func TestCheck_Stdin(t *testing.T) {
	stdin := "# list\nhttps://www.google.com\n\n  http://192.168.1.1/login  \n"
	res := run(t, stdin, "check", "-f", "json", "--ui", "quiet")
	testutil.AssertNoError(t, res.err, "check")

	recs := decodeRecords(t, res.stdout)
	testutil.AssertEqual(t, len(recs), 2, "comments and blanks skipped")
	testutil.AssertEqual(t, recs[1].URL, "http://192.168.1.1/login", "trimmed")
}

func TestCheck_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("https://www.google.com\nhttps://bit.ly/x\n"), 0o644), "write")

	res := run(t, "", "check", "-f", "json", "--ui", "quiet", "--file", path, "http://192.168.1.1/login")
	testutil.AssertNoError(t, res.err, "check")

	recs := decodeRecords(t, res.stdout)
	testutil.AssertEqual(t, len(recs), 3, "args then file")
	testutil.AssertEqual(t, recs[0].URL, "http://192.168.1.1/login", "args first")
	testutil.AssertEqual(t, recs[2].URL, "https://bit.ly/x", "file order")

	res = run(t, "", "check", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	testutil.AssertError(t, res.err, "missing file")
}

func TestCheck_NoURLs(t *testing.T) {
	res := run(t, "", "check", "--ui", "quiet")
	testutil.AssertError(t, res.err, "no input")
	testutil.AssertContains(t, res.err.Error(), "no URLs given", "message")
}

func TestCheck_UnknownFormat(t *testing.T) {
	res := run(t, "", "check", "-f", "xml", "https://a.com")
	testutil.AssertError(t, res.err, "unknown format")
}

func TestCheck_TableAndRawPresenter(t *testing.T) {
	res := run(t, "", "check", "--no-color", "--banner", "http://192.168.1.1/login")
	testutil.AssertNoError(t, res.err, "check")

	testutil.AssertContains(t, res.stdout, "suspicious", "table prediction")
	testutil.AssertContains(t, res.stdout, "9/35", "table score")

	// stderr is not a terminal, so the raw presenter is used.
	testutil.AssertContains(t, res.stderr, "suspicious", "raw result line")
}

func TestCheck_OutputDir(t *testing.T) {
	dir := t.TempDir()
	res := run(t, "", "check", "-f", "yaml", "--ui", "quiet", "-o", dir, "https://www.google.com")
	testutil.AssertNoError(t, res.err, "check")
	testutil.AssertEqual(t, res.stdout, "", "nothing on stdout")

	matches, err := filepath.Glob(filepath.Join(dir, "phishscan_*.yaml"))
	testutil.AssertNoError(t, err, "glob")
	testutil.AssertEqual(t, len(matches), 1, "one results file")

	data, err := os.ReadFile(matches[0])
	testutil.AssertNoError(t, err, "read results")
	testutil.AssertContains(t, string(data), "prediction: legitimate", "yaml content")
}

func TestCheck_ConfigFileAndFlagsLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phishscan.yaml")
	cfg := "check:\n  format: json\n  workers: 3\n"
	testutil.AssertNoError(t, os.WriteFile(path, []byte(cfg), 0o644), "write config")

	res := run(t, "", "config", "--config", path, "--workers", "7")
	testutil.AssertNoError(t, res.err, "config")
	testutil.AssertContains(t, res.stdout, "format: json", "file value")
	testutil.AssertContains(t, res.stdout, "workers: 7", "flag overrides file")

	res = run(t, "", "config", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	testutil.AssertError(t, res.err, "missing config file")
}

func TestCollectURLs(t *testing.T) {
	urls, err := collectURLs([]string{"https://a.com"}, "", strings.NewReader("https://ignored.com\n"))
	testutil.AssertNoError(t, err, "collect")
	testutil.AssertDeepEqual(t, urls, []string{"https://a.com"}, "stdin ignored when args are given")

	urls, err = collectURLs([]string{"https://a.com"}, "-", strings.NewReader("https://b.com\n"))
	testutil.AssertNoError(t, err, "collect")
	testutil.AssertDeepEqual(t, urls, []string{"https://a.com", "https://b.com"}, "explicit stdin")
}

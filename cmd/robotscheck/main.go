// Command robotscheck reports whether a user-agent is allowed to fetch a
// URL according to a local robots.txt file, mirroring Google's robots_main
// reference tool.
//
// Usage:
//
//	robotscheck <robots-file> <user-agent> <url>
//	robotscheck --batch queries.yaml <robots-file> <user-agent-ignored> <url-ignored>
//
// Exit status is 0 after printing a verdict (the verdict itself is carried
// in the printed text, not the exit code), and nonzero on a bad argument
// count or a file that can't be read.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/fatih/color"
	"golang.org/x/net/idna"

	"github.com/distilbyte/robotsmatch"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet(argv[0], flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		batchPath  string
		configPath string
		noColor    bool
		verbose    bool
	)
	fs.StringVar(&batchPath, "batch", "", "YAML file of {agents,url} entries to check against one robots.txt")
	fs.StringVar(&configPath, "config", "", "TOML file of persisted defaults (user_agent, color)")
	fs.BoolVar(&noColor, "no-color", false, "disable colorized verdict output")
	fs.BoolVar(&verbose, "v", false, "print the IDNA-normalized host as a diagnostic")

	if err := fs.Parse(argv[1:]); err != nil {
		return 2
	}

	args := fs.Args()
	if len(args) == 1 && isHelpFlag(args[0]) {
		showHelp(stderr, argv[0])
		return 2
	}
	if len(args) != 3 {
		fmt.Fprint(stderr, "Invalid amount of arguments. Showing help.\n\n")
		showHelp(stderr, argv[0])
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read config %q: %v\n", configPath, err)
		return 2
	}
	if noColor {
		cfg.Color = false
	}

	filename, userAgent, rawURL := args[0], args[1], args[2]
	if userAgent == "" {
		userAgent = cfg.UserAgent
	}

	body, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read file %q\n", filename)
		return 2
	}
	robotsContent := string(body)

	if verbose {
		printHostDiagnostic(stderr, rawURL)
	}

	if batchPath != "" {
		return runBatch(stdout, stderr, robotsContent, batchPath, cfg)
	}

	allowed := robotsmatch.OneAgentAllowedByRobots(robotsContent, userAgent, rawURL)
	printVerdict(stdout, userAgent, rawURL, allowed, cfg.Color)

	if len(robotsContent) == 0 {
		fmt.Fprint(stdout, "notice: robots file is empty so all user-agents are allowed\n")
	}

	return 0
}

func runBatch(stdout, stderr *os.File, robotsContent, batchPath string, cfg cliConfig) int {
	queries, err := loadBatchFile(batchPath, robotsContent)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read batch file %q: %v\n", batchPath, err)
		return 2
	}

	checker := robotsmatch.NewBatchChecker()
	results := checker.Check(context.Background(), queries)

	for i, r := range results {
		q := queries[i]
		userAgent := ""
		if len(q.Agents) > 0 {
			userAgent = q.Agents[0]
		}
		printVerdict(stdout, userAgent, q.URL, r.Allowed, cfg.Color)
	}
	return 0
}

func printVerdict(w *os.File, userAgent, rawURL string, allowed bool, useColor bool) {
	verdict := "ALLOWED"
	paint := color.New(color.FgGreen)
	if !allowed {
		verdict = "DISALLOWED"
		paint = color.New(color.FgRed)
	}
	line := fmt.Sprintf("user-agent '%s' with URI '%s': ", userAgent, rawURL)
	fmt.Fprint(w, line)
	if useColor {
		paint.Fprintln(w, verdict)
	} else {
		fmt.Fprintln(w, verdict)
	}
}

func printHostDiagnostic(stderr *os.File, rawURL string) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return
	}
	host, err := idna.ToASCII(u.Host)
	if err != nil {
		return
	}
	fmt.Fprintf(stderr, "diagnostic: normalized host %q\n", host)
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "-help" || arg == "--help"
}

func showHelp(w *os.File, prog string) {
	fmt.Fprint(w, "Shows whether the given user-agent and URI combination"+
		" is allowed or disallowed by the given robots.txt file.\n\n")
	fmt.Fprint(w, "Usage:\n"+
		"  "+prog+" <robots.txt filename> <user-agent> <URI>\n\n")
	fmt.Fprint(w, "Options:\n"+
		"  --batch <file.yaml>   check many agent/url pairs against one robots.txt\n"+
		"  --config <file.toml>  load persisted defaults\n"+
		"  --no-color            disable colorized verdicts\n"+
		"  -v                    print the IDNA-normalized host as a diagnostic\n\n")
	fmt.Fprint(w, "Example:\n"+
		"  "+prog+" robots.txt FooBot http://example.com/foo\n")
}

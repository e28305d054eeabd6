/*
File    : go-lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Lox
interpreter. The REPL provides an interactive environment where users
can:
- Enter Lox code line by line
- Keep typing across lines: input that is incomplete (an unterminated
  string or an expression cut off at end-of-input) switches to a `...`
  continuation prompt and accumulates until it parses
- See the value of a trailing expression without typing `print`
- Navigate command history using arrow keys
- Toggle debug dumps and load files through `:` meta-commands

The REPL uses the readline library for enhanced line editing and
integrates the parser, resolver and evaluator to execute user input.
One evaluator lives for the whole session, so bindings persist across
inputs.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-lox/diag"
	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/file"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Command feedback and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates the visual configuration and the session state that
// survives between inputs.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Primary prompt shown to the user (e.g., ">>> ")
	More    string // Continuation prompt (e.g., "... ")

	evaluator  *eval.Evaluator // The live session evaluator
	currentSrc string          // Input accumulated across continuations
	showLex    bool            // `:lex` option: dump tokens before running
	showAst    bool            // `:ast` option: dump the tree before running
	done       bool            // Set by `:exit`; EOF leaves the loop directly
}

// NewRepl creates and initializes a new REPL instance.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the interpreter
//	author  - Author contact information
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Primary prompt string
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    line,
		License: license,
		Prompt:  prompt,
		More:    "... ",
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	// Print top separator line in blue
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print the ASCII art banner in green
	greenColor.Fprintf(writer, "%s\n", r.Banner)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print version, author, and license information in yellow
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print welcome message and usage instructions in cyan
	cyanColor.Fprintf(writer, "%s\n", "Welcome to go-lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Enter Ctrl+D or `:exit` to quit, `:help` for commands")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")

	// Print bottom separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
// This is the core function that handles the interactive session:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates the session evaluator
// 4. Enters the main read-eval-print loop
// 5. Processes user input until exit
func (r *Repl) Start(writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// Create the session evaluator; it lives for the whole session so
	// variables, functions and classes persist across inputs
	r.evaluator = eval.NewEvaluator()
	r.evaluator.SetWriter(writer)

	// Main REPL loop - continues until user exits or input ends
	for !r.done {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl+C throws away any accumulated partial input
			r.currentSrc = ""
			rl.SetPrompt(r.Prompt)
			continue
		}
		if err != nil {
			// EOF or read error
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// A `:` prefix outside a continuation is a meta-command
		trimmed := strings.TrimSpace(line)
		if r.currentSrc == "" && strings.HasPrefix(trimmed, ":") {
			r.handleCommand(writer, strings.TrimPrefix(trimmed, ":"))
			continue
		}

		// Skip empty lines outside continuations
		if r.currentSrc == "" && trimmed == "" {
			continue
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		// Accumulate the input and try to run it
		r.currentSrc += line + "\n"
		if r.runCurrent(writer) {
			// Incomplete input: keep reading under the `...` prompt
			rl.SetPrompt(r.More)
			continue
		}
		r.currentSrc = ""
		rl.SetPrompt(r.Prompt)
	}
}

// runCurrent parses and, when complete and well-formed, resolves and
// interprets the accumulated source. It returns true when the input is
// incomplete and the REPL should ask for a continuation line instead of
// resetting.
func (r *Repl) runCurrent(writer io.Writer) bool {
	par := parser.NewParser(r.currentSrc)
	par.ReplMode = true
	stmts, parseErrors := par.Parse()

	// If every error allows continuation the input is merely
	// incomplete: ask for more instead of reporting
	if parser.AllowContinuation(parseErrors) {
		return true
	}

	// Debug dumps, shown before any code runs or errors are emitted
	if r.showLex && strings.TrimSpace(r.currentSrc) != "" {
		parser.PrintScannedTokens(writer, r.currentSrc)
	}
	if r.showAst && len(stmts) > 0 {
		parser.PrintProgramTree(writer, stmts)
	}

	if len(parseErrors) > 0 {
		diag.ReportAll(writer, r.currentSrc, parseErrors)
		return false
	}

	if ok, resolveErrors := resolver.NewResolver(r.evaluator).Resolve(stmts); !ok {
		diag.ReportAll(writer, r.currentSrc, resolveErrors)
		return false
	}

	if runtimeErr := r.evaluator.Interpret(stmts); runtimeErr != nil {
		diag.Report(writer, r.currentSrc, runtimeErr)
	}
	return false
}

// handleCommand executes one `:` meta-command.
//
// Supported commands:
//   - :exit         quit the session
//   - :ast, :tree   toggle the program-tree dump
//   - :lex          toggle the token dump
//   - :load <path>  run a file against the live session
//   - :help         list the commands
func (r *Repl) handleCommand(writer io.Writer, rawCmd string) {
	cmd := strings.Fields(rawCmd)
	name := ""
	if len(cmd) > 0 {
		name = cmd[0]
	}

	switch name {
	case "exit":
		r.done = true
		writer.Write([]byte("Good Bye!\n"))
	case "ast", "tree":
		r.showAst = !r.showAst
		r.printToggle(writer, "ast", r.showAst)
	case "lex":
		r.showLex = !r.showLex
		r.printToggle(writer, "lex", r.showLex)
	case "load":
		if len(cmd) < 2 {
			redColor.Fprintln(writer, "Usage: :load <path>")
			return
		}
		if file.RunWith(cmd[1], r.evaluator) {
			greenColor.Fprintln(writer, "ok")
		}
	case "help":
		cyanColor.Fprintln(writer, ":exit | :lex | :ast | :load <path> | :help")
	default:
		redColor.Fprintln(writer, "Invalid command. Type `:help` for guidance.")
	}
}

// printToggle reports the new state of a boolean option.
func (r *Repl) printToggle(writer io.Writer, option string, value bool) {
	status := "OFF"
	if value {
		status = "ON"
	}
	yellowColor.Fprintf(writer, "Toggled `%s` option %s.\n", option, status)
}
